// Package diagnostics defines the closed set of user-facing type errors this
// checker can report, and the DiagnosticError value that carries one: an
// ErrorCode plus a NewError(code, token, msg) constructor, used throughout
// the analyzer package.
package diagnostics

import (
	"fmt"

	"github.com/sourcetype/srctc/internal/token"
)

// ErrorCode is the closed set of type-checking diagnostics this checker can
// emit.
type ErrorCode string

const (
	InvalidArgumentTypes        ErrorCode = "InvalidArgumentTypes"
	DifferentNumberArguments    ErrorCode = "DifferentNumberArguments"
	InvalidTestCondition        ErrorCode = "InvalidTestCondition"
	ConsequentAlternateMismatch ErrorCode = "ConsequentAlternateMismatch"
	CyclicReference             ErrorCode = "CyclicReference"
	ReassignConst               ErrorCode = "ReassignConst"
	DifferentAssignment         ErrorCode = "DifferentAssignment"
	ArrayAssignment             ErrorCode = "ArrayAssignment"
	InvalidArrayIndexType       ErrorCode = "InvalidArrayIndexType"
	UndefinedIdentifier         ErrorCode = "UndefinedIdentifier"
	InternalTypeError           ErrorCode = "InternalTypeError"
)

// DiagnosticError is one reported type error, always at severity warning
// (the checker never aborts a run over a single bad expression).
type DiagnosticError struct {
	Code     ErrorCode
	Severity string
	Type     string
	Line     int
	Column   int
	Message  string
}

// NewError builds a DiagnosticError at the position of tok, formatting msg
// with args the same way fmt.Sprintf would.
func NewError(code ErrorCode, tok token.Token, msg string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: "warning",
		Type:     "type",
		Line:     tok.Line,
		Column:   tok.Column,
		Message:  fmt.Sprintf(msg, args...),
	}
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
}
