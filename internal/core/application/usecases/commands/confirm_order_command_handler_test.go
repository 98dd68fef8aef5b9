package commands_test

import (
	"errors"
	"testing"

	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/domain/model/order"
	"orderledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storeWithOrder(t *testing.T, owner kernel.AccountID, id string, status order.Status) *ledger.AccountStore {
	t.Helper()
	store := emptyStore(t, owner)
	o, err := order.RestoreOrder(order.Payload{ID: id, Total: "2000000000000000000000"}, status)
	require.NoError(t, err)
	require.NoError(t, store.Put(o))
	return store
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	for _, status := range []order.Status{order.Placed, order.Confirmed} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewConfirmOrderCommand("1", alice)

			stores := new(MockAccountStoreRepository)
			uow := new(MockUoW)
			var stored *ledger.AccountStore
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("AccountStoreRepository").Return(stores).Once(),
				stores.On("Find", ctx, alice).Return(storeWithOrder(t, alice, "1", status), nil).Once(),
				stores.On("Put", ctx, mock.AnythingOfType("*ledger.AccountStore")).
					Run(func(args mock.Arguments) { stored = args.Get(1).(*ledger.AccountStore) }).
					Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockAccountStoreUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewConfirmOrderCommandHandler(factory)
			require.NoError(t, h.Handle(ctx, cmd))

			o, ok := stored.Get("1")
			require.True(t, ok)
			assert.True(t, o.IsConfirmed())
			stores.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestConfirmOrderCommandHandler_Handle_NoSuchAccount(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewConfirmOrderCommand("1", alice)

	stores := new(MockAccountStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountStoreRepository").Return(stores).Once(),
		stores.On("Find", ctx, alice).Return(nil, errs.NewObjectNotFoundError("account", alice.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoSuchAccount)
	stores.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_NoSuchOrder(t *testing.T) {
	ctx := t.Context()
	// alice only holds order "2"; an order "1" placed by anyone else is invisible to alice
	cmd, _ := commands.NewConfirmOrderCommand("1", alice)

	stores := new(MockAccountStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountStoreRepository").Return(stores).Once(),
		stores.On("Find", ctx, alice).Return(storeWithOrder(t, alice, "2", order.Placed), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoSuchOrder)
	stores.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_OrderOfAnotherAccount(t *testing.T) {
	ctx := t.Context()
	bob := kernel.MustNewAccountID("bob.test")
	aliceStore := storeWithOrder(t, alice, "1", order.Placed)
	// bob has a store of his own but never placed an order "1"
	cmd, _ := commands.NewConfirmOrderCommand("1", bob)

	stores := new(MockAccountStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountStoreRepository").Return(stores).Once(),
		stores.On("Find", ctx, bob).Return(storeWithOrder(t, bob, "2", order.Placed), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoSuchOrder)
	stores.AssertNotCalled(t, "Find", ctx, alice)
	stores.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)

	o, ok := aliceStore.Get("1")
	require.True(t, ok)
	assert.False(t, o.IsConfirmed())
}

func TestConfirmOrderCommandHandler_Handle_FindError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewConfirmOrderCommand("1", alice)
	dbErr := errors.New("connection reset")

	stores := new(MockAccountStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountStoreRepository").Return(stores).Once(),
		stores.On("Find", ctx, alice).Return(nil, dbErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
	require.NotErrorIs(t, err, commands.ErrNoSuchAccount)
}

func TestConfirmOrderCommandHandler_Handle_PutError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewConfirmOrderCommand("1", alice)

	stores := new(MockAccountStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountStoreRepository").Return(stores).Once(),
		stores.On("Find", ctx, alice).Return(storeWithOrder(t, alice, "1", order.Placed), nil).Once(),
		stores.On("Put", ctx, mock.AnythingOfType("*ledger.AccountStore")).Return(errors.New("put error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", ctx)
}
