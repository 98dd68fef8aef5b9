// Package queries contains read-only operations over the order ledger.
// Query handlers never open a unit of work; they read committed state.
package queries

import (
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery lists every order of an account. Any caller may list any
// account's orders.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(kernel.MustNewAccountID("alice.test"))
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("order %s confirmed: %t\n", o.ID, o.Status)
//	}
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	account kernel.AccountID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query listing the orders of account.
func NewGetUserOrdersQuery(account kernel.AccountID) (GetUserOrdersQuery, error) {
	if err := account.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		account: account,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// Account returns the account whose orders are listed.
func (q GetUserOrdersQuery) Account() kernel.AccountID {
	return q.account
}

// GetUserOrdersQueryResponse is one order as shown to clients. Status is false
// for placed orders and true for confirmed ones.
type GetUserOrdersQueryResponse struct {
	ID          string
	Flavor      string
	Size        string
	Crust       string
	Toppings    string
	Name        string
	Location    string
	PhoneNumber string
	Total       string
	Status      bool
}
