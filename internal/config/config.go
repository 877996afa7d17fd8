// Package config carries the small set of process-wide toggles and builtin
// name constants the analyzer and CLI share.
package config

const SourceFileExt = ".src"

// IsTestMode suppresses the per-run RunID from cmd/srctc's success message,
// so scripted test runs can diff CLI output without a random UUID in it.
// Set once at startup by cmd/srctc. Type variable names are already
// deterministic per run regardless of this flag: Context's Counter is
// freshly constructed by TypeCheck every call, so there is no
// process-lifetime counter state to reset.
var IsTestMode = false

// Builtin function names recognised by internal/analyzer/builtins.go.
const (
	PairFuncName    = "pair"
	HeadFuncName    = "head"
	TailFuncName    = "tail"
	SetHeadFuncName = "set_head"
	SetTailFuncName = "set_tail"
	IsNullFuncName  = "is_null"
	ListFuncName    = "list"

	MathHypotFuncName = "math_hypot"
	MathMaxFuncName   = "math_max"
	MathMinFuncName   = "math_min"
)
