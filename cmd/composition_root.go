package cmd

import (
	"artisan/internal/adapters/in/http"
	"artisan/internal/adapters/out/jwttoken"
	"artisan/internal/adapters/out/postgres"
	"artisan/internal/adapters/out/postgres/orderrepo"
	"artisan/internal/core/application/usecases/commands"
	"artisan/internal/core/application/usecases/queries"
	"artisan/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	tokenService *jwttoken.TokenService
	config       Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokenService, err := jwttoken.NewTokenService(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: tokenService,
		config:       config,
	}, nil
}

func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokenService
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() *commands.LoginCommandHandler {
	h := commands.NewLoginCommandHandler(c.config.AdminPassword, c.tokenService)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(orderrepo.NewGormOrderRepository(c.gormDB))
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) UseCases() http.UseCases {
	return http.UseCases{
		Login:             c.CreateLoginCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		SearchOrders:      c.CreateSearchOrdersQueryHandler(),
		GetOrderStats:     c.CreateGetOrderStatsQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
