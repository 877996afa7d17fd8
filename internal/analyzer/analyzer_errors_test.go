package analyzer

import (
	"strings"
	"testing"

	"github.com/sourcetype/srctc/internal/diagnostics"
)

// analyzeSource lexes, parses, and type-checks input, returning every
// diagnostic (parse errors and type errors alike) as a plain error slice.
func analyzeSource(input string) []error {
	result := TypeCheck(input)
	errs := make([]error, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		errs[i] = d
	}
	return errs
}

func expectAnalyzerError(t *testing.T, input string, code diagnostics.ErrorCode) error {
	t.Helper()
	errs := analyzeSource(input)
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range errs {
		if de, ok := e.(*diagnostics.DiagnosticError); ok && de.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

func expectAnalyzerErrorContains(t *testing.T, input string, code diagnostics.ErrorCode, substr string) {
	t.Helper()
	e := expectAnalyzerError(t, input, code)
	if !strings.Contains(e.Error(), substr) {
		t.Errorf("expected error message to contain %q, got: %s", substr, e.Error())
	}
}

func expectNoAnalyzerErrors(t *testing.T, input string) {
	t.Helper()
	errs := analyzeSource(input)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
}

// ---------------------------------------------------------------------------
// InvalidArgumentTypes / DifferentAssignment
// ---------------------------------------------------------------------------

func TestAddableAcceptsMatchingStringOperands(t *testing.T) {
	input := `
function f() {
	return "hello" + "world";
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestAddableRejectsMixedOperands(t *testing.T) {
	input := `
function f() {
	return "hello" + 1;
}
`
	expectAnalyzerError(t, input, diagnostics.InvalidArgumentTypes)
}

func TestTypeMismatchReturnVsTrailingValue(t *testing.T) {
	input := `
function f() {
	if (true) {
		return 1;
	}
	"hello";
}
`
	expectAnalyzerError(t, input, diagnostics.InvalidArgumentTypes)
}

func TestDifferentAssignmentOnDeclaration(t *testing.T) {
	input := `
let x = 1;
x = "hello";
`
	expectAnalyzerError(t, input, diagnostics.DifferentAssignment)
}

func TestReassignConst(t *testing.T) {
	input := `
const x = 10;
x = 20;
`
	expectAnalyzerError(t, input, diagnostics.ReassignConst)
}

func TestUndefinedIdentifier(t *testing.T) {
	input := `
let x = y + 1;
`
	expectAnalyzerErrorContains(t, input, diagnostics.UndefinedIdentifier, "y")
}

// ---------------------------------------------------------------------------
// InvalidTestCondition / ConsequentAlternateMismatch
// ---------------------------------------------------------------------------

func TestIfConditionMustBeBoolean(t *testing.T) {
	input := `
if (1) {
	1;
}
`
	expectAnalyzerError(t, input, diagnostics.InvalidTestCondition)
}

func TestTernaryBranchMismatch(t *testing.T) {
	input := `let x = true ? 1 : "two";`
	expectAnalyzerError(t, input, diagnostics.ConsequentAlternateMismatch)
}

func TestTernaryBranchesMatchingNumberIsFine(t *testing.T) {
	expectNoAnalyzerErrors(t, `let x = true ? 1 : 2;`)
}

// ---------------------------------------------------------------------------
// DifferentNumberArguments / CyclicReference
// ---------------------------------------------------------------------------

func TestCallWrongArgumentCount(t *testing.T) {
	input := `
function add(a, b) { return a + b; }
let x = add(1);
`
	expectAnalyzerError(t, input, diagnostics.DifferentNumberArguments)
}

func TestRecursiveFunctionTypes(t *testing.T) {
	input := `
function fact(n) {
	if (n === 0) {
		return 1;
	}
	return n * fact(n - 1);
}
let x = fact(5);
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// InvalidArrayIndexType / ArrayAssignment
// ---------------------------------------------------------------------------

func TestArrayIndexMustBeNumber(t *testing.T) {
	input := `
let xs = [1, 2, 3];
let y = xs["zero"];
`
	expectAnalyzerError(t, input, diagnostics.InvalidArrayIndexType)
}

func TestArrayElementAssignmentMismatch(t *testing.T) {
	input := `
let xs = [1, 2, 3];
xs[0] = "zero";
`
	expectAnalyzerError(t, input, diagnostics.ArrayAssignment)
}

func TestArrayLiteralElementsMustShareType(t *testing.T) {
	input := `let xs = [1, "two", 3];`
	expectAnalyzerError(t, input, diagnostics.ArrayAssignment)
}

// ---------------------------------------------------------------------------
// Polymorphism / generalisation
// ---------------------------------------------------------------------------

func TestIdentityFunctionIsPolymorphic(t *testing.T) {
	input := `
function identity(x) { return x; }
let a = identity(1);
let b = identity("two");
`
	expectNoAnalyzerErrors(t, input)
}

func TestMutualRecursionAcrossSiblingDeclarations(t *testing.T) {
	input := `
function isEven(n) {
	if (n === 0) {
		return true;
	}
	return isOdd(n - 1);
}
function isOdd(n) {
	if (n === 0) {
		return false;
	}
	return isEven(n - 1);
}
let x = isEven(4);
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// Variadic builtins (math_hypot/math_max/math_min)
// ---------------------------------------------------------------------------

func TestVariadicMathBuiltinsAcceptAnyArgumentCount(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"math_max_three_args", "const m = math_max(1, 2, 3);"},
		{"math_min_one_arg", "const m = math_min(1);"},
		{"math_hypot_two_args", "const m = math_hypot(3, 4);"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expectNoAnalyzerErrors(t, tc.input)
		})
	}
}

func TestVariadicMathBuiltinRejectsNonNumberArgument(t *testing.T) {
	input := `const m = math_max(1, "two", 3);`
	expectAnalyzerError(t, input, diagnostics.InvalidArgumentTypes)
}
