package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// goldenCase mirrors one entry of testdata/*.yaml: a source snippet and the
// diagnostic codes a correct run must produce (further codes alongside them
// are not checked; an empty wantCodes means no diagnostics at all). Letting new end-to-end scenarios be added as data
// rather than Go code keeps the hand-written unit tests focused on single
// invariants and pushes broad coverage into data.
type goldenCase struct {
	Name      string   `yaml:"name"`
	Source    string   `yaml:"source"`
	WantCodes []string `yaml:"wantCodes"`
}

type goldenFile struct {
	Cases []goldenCase `yaml:"cases"`
}

func loadGoldenFile(t *testing.T, path string) goldenFile {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden fixture %s: %v", path, err)
	}
	var gf goldenFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		t.Fatalf("parsing golden fixture %s: %v", path, err)
	}
	return gf
}

func TestGoldenFixtures(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no golden fixtures found under testdata/")
	}

	for _, path := range matches {
		gf := loadGoldenFile(t, path)
		for _, c := range gf.Cases {
			c := c
			t.Run(c.Name, func(t *testing.T) {
				result := TypeCheck(c.Source)
				got := map[string]bool{}
				for _, d := range result.Diagnostics {
					got[string(d.Code)] = true
				}
				for _, want := range c.WantCodes {
					if !got[want] {
						t.Errorf("expected diagnostic code %s, got diagnostics: %v", want, result.Diagnostics)
					}
				}
				if len(c.WantCodes) == 0 && len(result.Diagnostics) > 0 {
					t.Errorf("expected no diagnostics, got: %v", result.Diagnostics)
				}
			})
		}
	}
}
