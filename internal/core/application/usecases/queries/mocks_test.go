package queries_test

import (
	"context"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/domain/model/payout"

	"github.com/stretchr/testify/mock"
)

type MockAccountStoreRepository struct{ mock.Mock }

func (m *MockAccountStoreRepository) GetOrCreate(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error) {
	args := m.Called(ctx, account)
	store, _ := args.Get(0).(*ledger.AccountStore)
	return store, args.Error(1)
}

func (m *MockAccountStoreRepository) Find(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error) {
	args := m.Called(ctx, account)
	store, _ := args.Get(0).(*ledger.AccountStore)
	return store, args.Error(1)
}

func (m *MockAccountStoreRepository) Put(ctx context.Context, store *ledger.AccountStore) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

type MockPayoutRepository struct{ mock.Mock }

func (m *MockPayoutRepository) Add(ctx context.Context, p *payout.Payout) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPayoutRepository) Update(ctx context.Context, p *payout.Payout) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payout.Payout)
	return p, args.Error(1)
}

func (m *MockPayoutRepository) GetAllIssued(ctx context.Context, limit int) ([]*payout.Payout, error) {
	args := m.Called(ctx, limit)
	payouts, _ := args.Get(0).([]*payout.Payout)
	return payouts, args.Error(1)
}

func (m *MockPayoutRepository) GetAllByPayer(ctx context.Context, account kernel.AccountID) ([]*payout.Payout, error) {
	args := m.Called(ctx, account)
	payouts, _ := args.Get(0).([]*payout.Payout)
	return payouts, args.Error(1)
}
