package payout

import (
	"errors"
	"fmt"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

var (
	// ErrPayoutIsNotConstructed is returned when a Payout was not created through
	// NewPayout or RestorePayout.
	ErrPayoutIsNotConstructed = errors.New("Payout must be created via NewPayout constructor")

	// ErrPayoutIsAlreadyFinal is returned when settling a payout twice.
	ErrPayoutIsAlreadyFinal = errors.New("payout is already settled or failed")

	// ErrPayoutIsNotIssued is returned when claiming a payout that left Issued.
	ErrPayoutIsNotIssued = errors.New("payout is not issued")
)

// Payout is the transfer of an order's net payment to the operator.
//
// Invariants:
//   - The payer is the account that placed the order, the recipient is the operator
//   - The amount never changes
//   - The status moves from Issued through Sending to Settled or Failed once
//     and stays there
//   - Only Issued payouts can be claimed for sending
type Payout struct {
	id        kernel.UUID
	orderID   string
	payer     kernel.AccountID
	recipient kernel.AccountID
	amount    kernel.Amount
	status    Status

	// failureReason is set only on failed payouts
	failureReason string

	guard guard.ConstructorGuard
}

// NewPayout issues a payout of amount from payer to recipient for orderID.
//
// Example:
//
//	p, err := payout.NewPayout("1", alice, operator, kernel.MustParseAmount("1000000000000000000000"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Status()) // Issued
func NewPayout(orderID string, payer, recipient kernel.AccountID, amount kernel.Amount) (*Payout, error) {
	return RestorePayout(kernel.NewUUID(), orderID, payer, recipient, amount, StatusIssued, "")
}

// RestorePayout rebuilds a payout from persistence.
func RestorePayout(
	id kernel.UUID,
	orderID string,
	payer, recipient kernel.AccountID,
	amount kernel.Amount,
	status Status,
	failureReason string,
) (*Payout, error) {
	var orderErr error
	if orderID == "" {
		orderErr = errs.NewValueIsRequiredError("orderID")
	}

	if err := errors.Join(
		id.Validate(),
		orderErr,
		payer.Validate(),
		recipient.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payout{
		id:            id,
		orderID:       orderID,
		payer:         payer,
		recipient:     recipient,
		amount:        amount,
		status:        status,
		failureReason: failureReason,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payout was created through a constructor.
func (p *Payout) Validate() error {
	if p == nil {
		return ErrPayoutIsNotConstructed
	}
	return p.guard.Validate(ErrPayoutIsNotConstructed)
}

// MarkSending claims an issued payout for a settlement run. It must be
// persisted before the transfer is attempted.
func (p *Payout) MarkSending() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status != StatusIssued {
		return fmt.Errorf("send payout %s (%s): %w", p.id, p.status, ErrPayoutIsNotIssued)
	}
	p.status = StatusSending
	return nil
}

// Settle records that the ledger host accepted the transfer.
func (p *Payout) Settle() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status.IsFinal() {
		return fmt.Errorf("settle payout %s: %w", p.id, ErrPayoutIsAlreadyFinal)
	}
	p.status = StatusSettled
	return nil
}

// Fail records that the ledger host rejected the transfer.
func (p *Payout) Fail(reason string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status.IsFinal() {
		return fmt.Errorf("fail payout %s: %w", p.id, ErrPayoutIsAlreadyFinal)
	}
	p.status = StatusFailed
	p.failureReason = reason
	return nil
}

func (p *Payout) ID() kernel.UUID             { return p.id }
func (p *Payout) OrderID() string             { return p.orderID }
func (p *Payout) Payer() kernel.AccountID     { return p.payer }
func (p *Payout) Recipient() kernel.AccountID { return p.recipient }
func (p *Payout) Amount() kernel.Amount       { return p.amount }
func (p *Payout) Status() Status              { return p.status }
func (p *Payout) FailureReason() string       { return p.failureReason }

// Clone returns an independent copy of the payout.
func (p *Payout) Clone() *Payout {
	c := *p
	return &c
}
