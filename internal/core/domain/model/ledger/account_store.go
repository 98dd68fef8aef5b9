package ledger

import (
	"errors"
	"fmt"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/order"
	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

// ErrAccountStoreIsNotConstructed is returned when an AccountStore was not
// created through NewAccountStore or RestoreAccountStore.
var ErrAccountStoreIsNotConstructed = errors.New("AccountStore must be created via NewAccountStore constructor")

// AccountStore maps order ids to the orders of a single account.
//
// Invariants:
//   - Keys are unique; Put replaces an existing order with the same id
//   - Every stored order is valid
//   - Orders are never removed
//
// Iteration order of Values is not defined.
type AccountStore struct {
	owner     kernel.AccountID
	namespace Namespace
	orders    map[string]*order.Order

	guard guard.ConstructorGuard
}

// NewAccountStore creates the empty store of owner.
func NewAccountStore(owner kernel.AccountID, namespace Namespace) (*AccountStore, error) {
	return RestoreAccountStore(owner, namespace, nil)
}

// RestoreAccountStore rebuilds a store from persisted orders.
func RestoreAccountStore(owner kernel.AccountID, namespace Namespace, orders []*order.Order) (*AccountStore, error) {
	if err := errors.Join(owner.Validate(), namespace.Validate()); err != nil {
		return nil, err
	}

	store := &AccountStore{
		owner:     owner,
		namespace: namespace,
		orders:    make(map[string]*order.Order, len(orders)),
		guard:     guard.NewConstructorGuard(),
	}

	for _, o := range orders {
		if err := store.Put(o); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Validate ensures the store was created through a constructor.
func (s *AccountStore) Validate() error {
	if s == nil {
		return ErrAccountStoreIsNotConstructed
	}
	return s.guard.Validate(ErrAccountStoreIsNotConstructed)
}

// Owner returns the account the store belongs to.
func (s *AccountStore) Owner() kernel.AccountID {
	return s.owner
}

// Namespace returns the storage prefix of the store.
func (s *AccountStore) Namespace() Namespace {
	return s.namespace
}

// Get looks an order up by id.
func (s *AccountStore) Get(orderID string) (*order.Order, bool) {
	o, ok := s.orders[orderID]
	return o, ok
}

// Put inserts o, or replaces the order already stored under o.ID().
func (s *AccountStore) Put(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("cannot store order: %w", err))
	}
	s.orders[o.ID()] = o
	return nil
}

// Values lists every order of the account in no particular order.
func (s *AccountStore) Values() []*order.Order {
	values := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		values = append(values, o)
	}
	return values
}

// Len returns the number of orders in the store.
func (s *AccountStore) Len() int {
	return len(s.orders)
}

// Clone returns a deep copy whose orders can be mutated independently.
func (s *AccountStore) Clone() *AccountStore {
	c := &AccountStore{
		owner:     s.owner,
		namespace: s.namespace,
		orders:    make(map[string]*order.Order, len(s.orders)),
		guard:     s.guard,
	}
	for id, o := range s.orders {
		c.orders[id] = o.Clone()
	}
	return c
}
