package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderLineCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewAddOrderLineCommand(mustID(t, 99998), mustID(t, 93), 20)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 99998, cmd.OrderID().Value())
		assert.Equal(t, 93, cmd.ProductID().Value())
		assert.Equal(t, 20, cmd.Quantity())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := commands.NewAddOrderLineCommand(mustID(t, 99998), mustID(t, 93), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := commands.NewAddOrderLineCommand(mustID(t, 99998), mustID(t, 93), -5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unconstructed_order_id", func(t *testing.T) {
		_, err := commands.NewAddOrderLineCommand(kernel.ID{}, mustID(t, 93), 20)

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_product_id", func(t *testing.T) {
		_, err := commands.NewAddOrderLineCommand(mustID(t, 99998), kernel.ID{}, 20)

		require.Error(t, err)
	})
}

func TestAddOrderLineCommand_Validate(t *testing.T) {
	t.Run("zero_value_command_fails", func(t *testing.T) {
		cmd := commands.AddOrderLineCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderLineCommandIsNotConstructed)
	})
}
