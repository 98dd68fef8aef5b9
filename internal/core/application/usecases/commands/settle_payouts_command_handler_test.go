package commands_test

import (
	"errors"
	"testing"

	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/payout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func issuedPayout(t *testing.T, orderID, amount string) *payout.Payout {
	t.Helper()
	p, err := payout.NewPayout(orderID, alice, operator, kernel.MustParseAmount(amount))
	require.NoError(t, err)
	return p
}

// statusIs matches a payout by pointer and checks the status it carries at
// the time of the call.
func statusIs(p *payout.Payout, status payout.Status) any {
	return mock.MatchedBy(func(got *payout.Payout) bool {
		return got == p && got.Status() == status
	})
}

func TestSettlePayoutsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSettlePayoutsCommand(10)

	accepted := issuedPayout(t, "1", "1000000000000000000000")
	rejected := issuedPayout(t, "2", "7")

	payouts := new(MockPayoutRepository)
	transferer := new(MockTransferer)
	claimUoW := new(MockUoW)
	acceptedUoW := new(MockUoW)
	rejectedUoW := new(MockUoW)
	mock.InOrder(
		claimUoW.On("Begin", ctx).Return(nil).Once(),
		claimUoW.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("GetAllIssued", ctx, 10).Return([]*payout.Payout{accepted, rejected}, nil).Once(),
		payouts.On("Update", ctx, statusIs(accepted, payout.StatusSending)).Return(nil).Once(),
		payouts.On("Update", ctx, statusIs(rejected, payout.StatusSending)).Return(nil).Once(),
		claimUoW.On("Commit", ctx).Return(nil).Once(),
		claimUoW.On("Rollback", ctx).Return(nil).Once(),

		transferer.On("Transfer", ctx, operator, accepted.Amount()).Return(nil).Once(),
		acceptedUoW.On("Begin", ctx).Return(nil).Once(),
		acceptedUoW.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("Update", ctx, statusIs(accepted, payout.StatusSettled)).Return(nil).Once(),
		acceptedUoW.On("Commit", ctx).Return(nil).Once(),
		acceptedUoW.On("Rollback", ctx).Return(nil).Once(),

		transferer.On("Transfer", ctx, operator, rejected.Amount()).Return(errors.New("host unavailable")).Once(),
		rejectedUoW.On("Begin", ctx).Return(nil).Once(),
		rejectedUoW.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("Update", ctx, statusIs(rejected, payout.StatusFailed)).Return(nil).Once(),
		rejectedUoW.On("Commit", ctx).Return(nil).Once(),
		rejectedUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPayoutUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(acceptedUoW).Once()
	factory.On("Create").Return(rejectedUoW).Once()

	h := commands.NewSettlePayoutsCommandHandler(factory, transferer)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.SettlePayoutsResult{Settled: 1, Failed: 1}, result)
	assert.Equal(t, payout.StatusSettled, accepted.Status())
	assert.Equal(t, payout.StatusFailed, rejected.Status())
	assert.Equal(t, "host unavailable", rejected.FailureReason())

	payouts.AssertExpectations(t)
	transferer.AssertExpectations(t)
	claimUoW.AssertExpectations(t)
	acceptedUoW.AssertExpectations(t)
	rejectedUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSettlePayoutsCommandHandler_Handle_NothingIssued(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSettlePayoutsCommand(10)

	payouts := new(MockPayoutRepository)
	transferer := new(MockTransferer)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("GetAllIssued", ctx, 10).Return([]*payout.Payout{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPayoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettlePayoutsCommandHandler(factory, transferer)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result)
	transferer.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettlePayoutsCommandHandler_Handle_ClaimError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSettlePayoutsCommand(10)
	p := issuedPayout(t, "1", "1")

	payouts := new(MockPayoutRepository)
	transferer := new(MockTransferer)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("GetAllIssued", ctx, 10).Return([]*payout.Payout{p}, nil).Once(),
		payouts.On("Update", ctx, p).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPayoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettlePayoutsCommandHandler(factory, transferer)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
	transferer.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettlePayoutsCommandHandler_Handle_RecordErrorAfterTransfer(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSettlePayoutsCommand(10)
	lost := issuedPayout(t, "1", "1")
	next := issuedPayout(t, "2", "2")

	payouts := new(MockPayoutRepository)
	transferer := new(MockTransferer)
	claimUoW := new(MockUoW)
	lostUoW := new(MockUoW)
	nextUoW := new(MockUoW)
	mock.InOrder(
		claimUoW.On("Begin", ctx).Return(nil).Once(),
		claimUoW.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("GetAllIssued", ctx, 10).Return([]*payout.Payout{lost, next}, nil).Once(),
		payouts.On("Update", ctx, statusIs(lost, payout.StatusSending)).Return(nil).Once(),
		payouts.On("Update", ctx, statusIs(next, payout.StatusSending)).Return(nil).Once(),
		claimUoW.On("Commit", ctx).Return(nil).Once(),
		claimUoW.On("Rollback", ctx).Return(nil).Once(),

		transferer.On("Transfer", ctx, operator, lost.Amount()).Return(nil).Once(),
		lostUoW.On("Begin", ctx).Return(nil).Once(),
		lostUoW.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("Update", ctx, statusIs(lost, payout.StatusSettled)).Return(errors.New("update error")).Once(),
		lostUoW.On("Rollback", ctx).Return(nil).Once(),

		transferer.On("Transfer", ctx, operator, next.Amount()).Return(nil).Once(),
		nextUoW.On("Begin", ctx).Return(nil).Once(),
		nextUoW.On("PayoutRepository").Return(payouts).Once(),
		payouts.On("Update", ctx, statusIs(next, payout.StatusSettled)).Return(nil).Once(),
		nextUoW.On("Commit", ctx).Return(nil).Once(),
		nextUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPayoutUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(lostUoW).Once()
	factory.On("Create").Return(nextUoW).Once()

	h := commands.NewSettlePayoutsCommandHandler(factory, transferer)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update error")
	assert.Equal(t, commands.SettlePayoutsResult{Settled: 1}, result)
	lostUoW.AssertNotCalled(t, "Commit", ctx)
	transferer.AssertNumberOfCalls(t, "Transfer", 2)

	payouts.AssertExpectations(t)
	transferer.AssertExpectations(t)
	claimUoW.AssertExpectations(t)
	lostUoW.AssertExpectations(t)
	nextUoW.AssertExpectations(t)
}
