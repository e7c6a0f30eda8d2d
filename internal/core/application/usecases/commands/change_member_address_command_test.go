package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeMemberAddressCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	address := testAddress(t)

	cmd, err := commands.NewChangeMemberAddressCommand(id, address)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.MemberID())
	assert.True(t, address.IsEqual(cmd.Address()))
}

func TestNewChangeMemberAddressCommand_InvalidMemberID(t *testing.T) {
	_, err := commands.NewChangeMemberAddressCommand(kernel.UUID{}, testAddress(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeMemberAddressCommand_InvalidAddress(t *testing.T) {
	_, err := commands.NewChangeMemberAddressCommand(kernel.NewUUID(), kernel.Address{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
}
