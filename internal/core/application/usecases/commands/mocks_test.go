package commands_test

import (
	"context"

	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/core/ports"

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
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPayoutRepository) Update(ctx context.Context, p *payout.Payout) error {
	args := m.Called(ctx, p)
	return args.Error(0)
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

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Init(ctx context.Context, operator kernel.AccountID) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockSettingsRepository) Operator(ctx context.Context) (kernel.AccountID, error) {
	args := m.Called(ctx)
	operator, _ := args.Get(0).(kernel.AccountID)
	return operator, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountStoreRepository() ports.AccountStoreRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountStoreRepository)
}

func (m *MockUoW) PayoutRepository() ports.PayoutRepository {
	args := m.Called()
	return args.Get(0).(ports.PayoutRepository)
}

func (m *MockUoW) LedgerSettingsRepository() ports.LedgerSettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerSettingsRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}

type MockAccountStoreUoWFactory struct{ mock.Mock }

func (m *MockAccountStoreUoWFactory) Create() commands.AccountStoreUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountStoreUoW)
}

type MockPayoutUoWFactory struct{ mock.Mock }

func (m *MockPayoutUoWFactory) Create() commands.PayoutUoW {
	args := m.Called()
	return args.Get(0).(commands.PayoutUoW)
}

type MockTransferer struct{ mock.Mock }

func (m *MockTransferer) Transfer(ctx context.Context, to kernel.AccountID, amount kernel.Amount) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}
