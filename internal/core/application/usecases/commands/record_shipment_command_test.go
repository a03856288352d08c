package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordShipmentCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewRecordShipmentCommand(mustID(t, 99998))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 99998, cmd.OrderID().Value())
	})

	t.Run("rejects_unconstructed_order_id", func(t *testing.T) {
		_, err := commands.NewRecordShipmentCommand(kernel.ID{})

		require.Error(t, err)
	})
}

func TestRecordShipmentCommand_Validate(t *testing.T) {
	t.Run("zero_value_command_fails", func(t *testing.T) {
		cmd := commands.RecordShipmentCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrRecordShipmentCommandIsNotConstructed)
	})
}
