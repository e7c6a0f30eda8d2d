package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), item.Book, "Effective Go", 25000, 100)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), item.Album, "Abbey Road", 18000, 30)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "add error")
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemCommand{} // not constructed properly

	factory := new(MockItemUoWFactory)
	handler := commands.NewAddItemCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	aggregate, err := item.NewItem(itemID, item.Book, "Effective Go", 25000, 100)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateItemCommand(itemID, "Effective Go 2nd", 28000, 50)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).Return(aggregate, nil).Once(),
		itemRepo.On("Update", ctx, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Effective Go 2nd", aggregate.Name())
	assert.Equal(t, 28000, aggregate.Price())
	assert.Equal(t, 50, aggregate.Stock())
	itemRepo.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewUpdateItemCommand(itemID, "Effective Go", 25000, 100)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	itemRepo.AssertNotCalled(t, "Update")
}
