package cmd

import (
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	advisor    ports.StyleAdvisor
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, advisor ports.StyleAdvisor) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		advisor:    advisor,
	}
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) StyleAdvisor() ports.StyleAdvisor {
	return c.advisor
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStyleCommandHandler() commands.CreateStyleCommandHandler {
	var f commands.StyleUoWFactory = FuncStyleUoWFactory(func() commands.StyleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStyleCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterTailorCommandHandler() commands.RegisterTailorCommandHandler {
	var f commands.TailorUoWFactory = FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTailorCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTailorCommandHandler() commands.AssignTailorCommandHandler {
	var f commands.ProductionUoWFactory = FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTailorCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.ProductionUoWFactory = FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTailorsQueryHandler() queries.GetAllTailorsQueryHandler {
	return queries.NewGetAllTailorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncStyleUoWFactory func() commands.StyleUoW

func (f FuncStyleUoWFactory) Create() commands.StyleUoW {
	return f()
}

type FuncTailorUoWFactory func() commands.TailorUoW

func (f FuncTailorUoWFactory) Create() commands.TailorUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}
