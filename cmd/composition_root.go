package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orderledger/api"
	httpadapter "orderledger/internal/adapters/in/http"
	"orderledger/internal/adapters/out/host"
	"orderledger/internal/adapters/out/memory"
	"orderledger/internal/adapters/out/postgres"
	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/core/application/usecases/queries"
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/services"
	"orderledger/internal/core/ports"
	"orderledger/internal/generated/servers"
	"orderledger/internal/jobs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	transferer ports.Transferer
}

// NewCompositionRoot wires the application on the configured storage driver.
// gormDB is only used by the postgres driver.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	hasher := host.NewBlake3Hasher()

	var uowFactory ports.UnitOfWorkFactory
	switch config.StorageDriver {
	case StorageDriverPostgres:
		if gormDB == nil {
			return CompositionRoot{}, errors.New("postgres storage driver needs a database connection")
		}
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, hasher)
	default:
		uowFactory = memory.NewStorage(hasher)
	}

	var transferer ports.Transferer = host.NewLoggingTransferer(logger)
	if config.TransferEndpoint != "" {
		transferer = host.NewHTTPTransferer(config.TransferEndpoint, config.TransferTimeout, logger)
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: uowFactory,
		transferer: transferer,
	}, nil
}

func (c *CompositionRoot) CreateInitLedgerCommandHandler() commands.InitLedgerCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitLedgerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewPaymentService())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.AccountStoreUoWFactory = FuncAccountStoreUoWFactory(func() commands.AccountStoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSettlePayoutsCommandHandler() commands.SettlePayoutsCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettlePayoutsCommandHandler(f, c.transferer)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.uowFactory.Create().AccountStoreRepository())
}

func (c *CompositionRoot) CreateGetPayoutsQueryHandler() queries.GetPayoutsQueryHandler {
	return queries.NewGetPayoutsQueryHandler(c.uowFactory.Create().PayoutRepository())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetPayoutsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	job := jobs.NewPayoutSettlementJob(
		c.CreateSettlePayoutsCommandHandler(),
		c.config.SettlementSchedule,
		c.config.SettlementBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(job)
}

// Bootstrap initializes the ledger with the configured operator. A ledger
// initialized by an earlier start is kept as it is.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	logger := c.logger.With("component", "bootstrap")

	operator, err := kernel.NewAccountID(c.config.OperatorAccount)
	if err != nil {
		return fmt.Errorf("invalid operator account: %w", err)
	}

	cmd, err := commands.NewInitLedgerCommand(operator)
	if err != nil {
		return err
	}

	handler := c.CreateInitLedgerCommandHandler()
	err = handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		logger.InfoContext(ctx, "Ledger initialized", "operator", operator.String())
		return nil
	case errors.Is(err, commands.ErrAlreadyInitialized):
		current, opErr := c.uowFactory.Create().LedgerSettingsRepository().Operator(ctx)
		if opErr != nil {
			return opErr
		}
		if !current.IsEqual(operator) {
			logger.WarnContext(ctx, "Ledger already initialized with another operator",
				"operator", current.String(), "configured", operator.String())
		}
		return nil
	default:
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}
}

// NewEchoServer builds the HTTP router: the validated API, health check and swagger UI.
func NewEchoServer(root *CompositionRoot) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}

	if err := api.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	validator, err := httpadapter.NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, root.CreateServer())
	return e, nil
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncAccountStoreUoWFactory func() commands.AccountStoreUoW

func (f FuncAccountStoreUoWFactory) Create() commands.AccountStoreUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
