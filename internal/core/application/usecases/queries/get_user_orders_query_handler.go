package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"orderledger/internal/core/ports"
	"orderledger/internal/pkg/errs"
)

// GetUserOrdersQueryHandler reads an account's store.
type GetUserOrdersQueryHandler struct {
	stores ports.AccountStoreRepository
}

// NewGetUserOrdersQueryHandler creates a handler reading through stores.
func NewGetUserOrdersQueryHandler(stores ports.AccountStoreRepository) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{stores: stores}
}

// Handle returns the account's orders sorted by id. An account that never
// ordered has no orders; that is not an error.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	store, err := h.stores.Find(ctx, query.Account())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orders, nil
		}
		return nil, err
	}

	for _, o := range store.Values() {
		orders = append(orders, GetUserOrdersQueryResponse{
			ID:          o.ID(),
			Flavor:      o.Flavor(),
			Size:        o.Size(),
			Crust:       o.Crust(),
			Toppings:    o.Toppings(),
			Name:        o.Name(),
			Location:    o.Location(),
			PhoneNumber: o.PhoneNumber(),
			Total:       o.Total(),
			Status:      o.IsConfirmed(),
		})
	}

	slices.SortFunc(orders, func(a, b GetUserOrdersQueryResponse) int {
		return strings.Compare(a.ID, b.ID)
	})

	return orders, nil
}
