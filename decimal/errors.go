package decimal

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

// Specific failure classes. Errors returned by the package carry Error as
// well as one of these, so callers can test with e.g. DivisionByZero.Has.
var (
	DivisionByZero    = errs.Class("division by zero")
	ParseError        = errs.Class("parse")
	PreconditionError = errs.Class("precondition")
)
