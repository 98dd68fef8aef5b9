package services

import (
	"errors"
	"fmt"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/order"
	"orderledger/internal/core/domain/model/payout"
)

var (
	// ErrInvalidAmount is returned when the attached value differs from the
	// declared total, or when the total is not an amount at all.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientAmount is returned when the attached value does not cover
	// the storage fee.
	ErrInsufficientAmount = errors.New("insufficient amount")
)

// StorageFee is withheld from every order payment to pay for the order's
// storage: 10^21 of the smallest unit.
var StorageFee = kernel.MustParseAmount("1000000000000000000000")

// PaymentService validates order payments and computes the operator's share.
//
// Business rules:
//   - The attached value must equal the order's declared total exactly
//   - The storage fee is deducted from the attached value
//   - The remainder, possibly zero, is paid out to the operator
//   - Nothing is issued unless every check passes
//
// Example usage:
//
//	svc := services.NewPaymentService()
//	p, err := svc.Pay(o, attached, caller, operator)
//	if errors.Is(err, services.ErrInvalidAmount) {
//	    // reject the order
//	}
type PaymentService struct {
	storageFee kernel.Amount
}

// NewPaymentService creates a PaymentService charging StorageFee.
func NewPaymentService() PaymentService {
	return PaymentService{storageFee: StorageFee}
}

// StorageFee returns the fee withheld from every payment.
func (s PaymentService) StorageFee() kernel.Amount {
	return s.storageFee
}

// Net checks attached against declaredTotal and returns attached minus the
// storage fee.
//
// Returns:
//   - ErrInvalidAmount if declaredTotal does not parse or differs from attached
//   - ErrInsufficientAmount if attached is below the storage fee
func (s PaymentService) Net(attached kernel.Amount, declaredTotal string) (kernel.Amount, error) {
	total, err := kernel.ParseAmount(declaredTotal)
	if err != nil {
		return kernel.Amount{}, fmt.Errorf("%w: declared total %q: %w", ErrInvalidAmount, declaredTotal, err)
	}

	if !attached.IsEqual(total) {
		return kernel.Amount{}, fmt.Errorf("%w: attached %s, declared total %s", ErrInvalidAmount, attached, total)
	}

	net, err := attached.Sub(s.storageFee)
	if err != nil {
		return kernel.Amount{}, fmt.Errorf("%w: attached %s, storage fee %s", ErrInsufficientAmount, attached, s.storageFee)
	}

	return net, nil
}

// Pay validates the payment for o and issues the payout from payer to operator.
func (s PaymentService) Pay(o *order.Order, attached kernel.Amount, payer, operator kernel.AccountID) (*payout.Payout, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	net, err := s.Net(attached, o.Total())
	if err != nil {
		return nil, err
	}

	return payout.NewPayout(o.ID(), payer, operator, net)
}
