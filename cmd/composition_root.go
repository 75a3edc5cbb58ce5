package cmd

import (
	"log/slog"

	adapterhttp "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/auth"
	"orderdesk/internal/adapters/out/notify"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *notify.Hub
	publisher  *notify.Publisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	hub := notify.NewHub()
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        hub,
		publisher:  notify.NewPublisher(hub),
	}
}

func (c *CompositionRoot) Hub() *notify.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(
		f, c.publisher, c.config.DeliveryEstimate, c.config.SupportContact,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateSearchOrdersQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		auth.NewStaticCredentialVerifier(c.config.AdminUsername, c.config.AdminPassword),
		auth.NewTokenService(c.config.JWTSecret),
		c.hub,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderStatsQueryHandler(), c.hub, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
