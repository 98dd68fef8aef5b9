package memory

import (
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/core/ports"
)

// tx stages the writes of one transaction. Reads see staged values first and
// fall back to the committed state. Only the holder of the storage lock may
// use a tx.
type tx struct {
	storage *Storage

	operator *kernel.AccountID
	stores   map[kernel.AccountID]*ledger.AccountStore
	payouts  map[kernel.UUID]*payout.Payout
	added    []kernel.UUID
}

func newTx(s *Storage) *tx {
	return &tx{
		storage: s,
		stores:  make(map[kernel.AccountID]*ledger.AccountStore),
		payouts: make(map[kernel.UUID]*payout.Payout),
	}
}

func (t *tx) initialized() bool {
	return t.operator != nil || t.storage.ledger != nil
}

func (t *tx) findStore(account kernel.AccountID) (*ledger.AccountStore, bool) {
	if store, ok := t.stores[account]; ok {
		return store.Clone(), true
	}
	if t.storage.ledger == nil {
		return nil, false
	}
	return t.storage.ledger.FindStore(account)
}

func (t *tx) findPayout(id kernel.UUID) (*payout.Payout, bool) {
	if p, ok := t.payouts[id]; ok {
		return p, true
	}
	p, ok := t.storage.payouts[id]
	return p, ok
}

// payoutOrder lists every payout id visible to the transaction, oldest first.
func (t *tx) payoutOrder() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(t.storage.payoutOrder)+len(t.added))
	ids = append(ids, t.storage.payoutOrder...)
	return append(ids, t.added...)
}

// apply publishes the staged writes. Every staged value was validated when it
// was staged, so apply only fails on a broken invariant.
func (t *tx) apply() error {
	s := t.storage

	target := s.ledger
	if t.operator != nil {
		l, err := ledger.NewLedger(*t.operator, s.hasher)
		if err != nil {
			return err
		}
		target = l
	}
	if target == nil && len(t.stores) > 0 {
		return ports.ErrNotInitialized
	}

	for _, store := range t.stores {
		if err := target.PutStore(store); err != nil {
			return err
		}
	}
	s.ledger = target

	for id, p := range t.payouts {
		s.payouts[id] = p
	}
	s.payoutOrder = append(s.payoutOrder, t.added...)

	return nil
}
