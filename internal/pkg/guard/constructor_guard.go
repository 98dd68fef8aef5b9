// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values built with a struct literal can be
// told apart from values produced by their validating constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Example:
//
//	type GetUserOrdersQuery struct {
//	    account kernel.AccountID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewGetUserOrdersQuery(account kernel.AccountID) (GetUserOrdersQuery, error) {
//	    // validate account ...
//	    return GetUserOrdersQuery{account: account, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q GetUserOrdersQuery) Validate() error {
//	    return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
