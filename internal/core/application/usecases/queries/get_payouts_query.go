package queries

import (
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/pkg/guard"
)

var (
	ErrGetPayoutsQueryIsNotConstructed = errors.New(
		"GetPayoutsQuery must be created via NewGetPayoutsQuery constructor",
	)
)

// GetPayoutsQuery lists the payouts issued for an account's orders.
type GetPayoutsQuery struct { //nolint:recvcheck //using for validation
	payer kernel.AccountID

	guard guard.ConstructorGuard
}

// NewGetPayoutsQuery creates a query listing the payouts paid by payer.
func NewGetPayoutsQuery(payer kernel.AccountID) (GetPayoutsQuery, error) {
	if err := payer.Validate(); err != nil {
		return GetPayoutsQuery{}, err
	}

	return GetPayoutsQuery{
		payer: payer,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPayoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetPayoutsQueryIsNotConstructed)
}

// Payer returns the account whose payouts are listed.
func (q GetPayoutsQuery) Payer() kernel.AccountID {
	return q.payer
}

// GetPayoutsQueryResponse describes one payout and its settlement state.
type GetPayoutsQueryResponse struct {
	ID            kernel.UUID
	OrderID       string
	Payer         kernel.AccountID
	Recipient     kernel.AccountID
	Amount        kernel.Amount
	Status        payout.Status
	FailureReason string
}
