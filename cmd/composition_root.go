package cmd

import (
	"backoffice/internal/adapters/out/geo"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/tenantrepo"
	"backoffice/internal/adapters/out/postgres/vehiclerepo"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/services/freight"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tenantRepo ports.TenantRepository
	selector   freight.Selector
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	tenantRepo := tenantrepo.NewGormTenantRepository(gormDB)
	vehicleRepo := vehiclerepo.NewGormVehicleRepository(gormDB)
	routeEstimator := geo.NewClient(config.GeoServiceHost)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tenantRepo: tenantRepo,
		selector:   freight.NewSelector(tenantRepo, vehicleRepo, routeEstimator),
	}
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.selector, c.tenantRepo)
}

func (c *CompositionRoot) CreateRecordApprovalCommandHandler() commands.RecordApprovalCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordApprovalCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeDeliveriesCommandHandler() commands.FinalizeDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderHistoryQueryHandler(uow.OrderRepository(), uow.DeliveryRepository())
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
