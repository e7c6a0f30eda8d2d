package cmd

import (
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterMemberCommandHandler() commands.RegisterMemberCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeMemberAddressCommandHandler() commands.ChangeMemberAddressCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeMemberAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllMembersQueryHandler() queries.GetAllMembersQueryHandler {
	return queries.NewGetAllMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllItemsQueryHandler() queries.GetAllItemsQueryHandler {
	return queries.NewGetAllItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	// Read path only, no transaction started: the repository runs
	// against the main connection.
	return queries.NewSearchOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateSearchOrderSummariesQueryHandler() queries.SearchOrderSummariesQueryHandler {
	return queries.NewSearchOrderSummariesQueryHandler(c.gormDB)
}

type FuncMemberUoWFactory func() commands.MemberUoW

func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
