package queries

import (
	"context"

	"orderledger/internal/core/ports"
)

// GetPayoutsQueryHandler reads payouts by payer.
type GetPayoutsQueryHandler struct {
	payouts ports.PayoutRepository
}

// NewGetPayoutsQueryHandler creates a handler reading through payouts.
func NewGetPayoutsQueryHandler(payouts ports.PayoutRepository) GetPayoutsQueryHandler {
	return GetPayoutsQueryHandler{payouts: payouts}
}

// Handle returns the payer's payouts, oldest first.
func (h GetPayoutsQueryHandler) Handle(ctx context.Context, query GetPayoutsQuery) ([]GetPayoutsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts, err := h.payouts.GetAllByPayer(ctx, query.Payer())
	if err != nil {
		return nil, err
	}

	responses := make([]GetPayoutsQueryResponse, 0, len(payouts))
	for _, p := range payouts {
		responses = append(responses, GetPayoutsQueryResponse{
			ID:            p.ID(),
			OrderID:       p.OrderID(),
			Payer:         p.Payer(),
			Recipient:     p.Recipient(),
			Amount:        p.Amount(),
			Status:        p.Status(),
			FailureReason: p.FailureReason(),
		})
	}

	return responses, nil
}
