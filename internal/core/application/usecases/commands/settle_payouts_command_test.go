package commands_test

import (
	"testing"

	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettlePayoutsCommand(t *testing.T) {
	cmd, err := commands.NewSettlePayoutsCommand(commands.DefaultSettlementBatchSize)
	require.NoError(t, err)
	assert.Equal(t, commands.DefaultSettlementBatchSize, cmd.BatchSize())

	_, err = commands.NewSettlePayoutsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.ErrorIs(t, commands.SettlePayoutsCommand{}.Validate(), commands.ErrSettlePayoutsCommandIsNotConstructed)
}
