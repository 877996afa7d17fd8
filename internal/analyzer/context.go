package analyzer

import (
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// Context threads the process-wide state of one TypeCheck run: the
// fresh-variable counter and the accumulated constraint store, plus the
// diagnostic sink Pass B writes to instead of returning a Go error.
type Context struct {
	Counter *typesystem.Counter
	Store   *typesystem.Store
	Errors  []*diagnostics.DiagnosticError

	// returnStack holds the enclosing function's return type variable, one
	// entry per nested function currently being walked, so ReturnStatement
	// nodes (arbitrarily deep inside ifs/whiles) can reach it without every
	// emit* function threading it through explicitly.
	returnStack []typesystem.Term
}

func (c *Context) pushReturn(t typesystem.Term) { c.returnStack = append(c.returnStack, t) }
func (c *Context) popReturn()                   { c.returnStack = c.returnStack[:len(c.returnStack)-1] }
func (c *Context) currentReturn() (typesystem.Term, bool) {
	if len(c.returnStack) == 0 {
		return nil, false
	}
	return c.returnStack[len(c.returnStack)-1], true
}

// NewContext returns a fresh, empty inference context.
func NewContext() *Context {
	return &Context{Counter: &typesystem.Counter{}, Store: typesystem.NewStore()}
}

func (c *Context) addError(err *diagnostics.DiagnosticError) {
	c.Errors = append(c.Errors, err)
}
