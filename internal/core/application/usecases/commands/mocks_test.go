package commands_test

import (
	"context"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, aggregate *member.Member) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByName(ctx context.Context, name string) (*member.Member, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) GetAll(ctx context.Context) ([]*member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*member.Member), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBySearch(
	ctx context.Context, filter order.SearchFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUoW satisfies every unit of work composition used by the handlers.
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

func (m *MockUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockMemberUoWFactory struct{ mock.Mock }

func (m *MockMemberUoWFactory) Create() commands.MemberUoW {
	args := m.Called()
	return args.Get(0).(commands.MemberUoW)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
