package app

import (
	"posservice/internal/catalog"
	"posservice/internal/httpapi"
	"posservice/internal/loyalty"
	"posservice/internal/order"
	ppostgres "posservice/internal/platform/postgres"
	"posservice/internal/report"
	"posservice/internal/review"
	"posservice/internal/staff"
	"posservice/internal/stock"
)

// ServiceFactory creates business logic services with their dependencies
type ServiceFactory struct {
	container *Container
}

// NewServiceFactory creates a new service factory
func NewServiceFactory(container *Container) *ServiceFactory {
	return &ServiceFactory{
		container: container,
	}
}

// CreateRouter wires every store, service and handler onto a gin engine
func (f *ServiceFactory) CreateRouter() *httpapi.Handlers {
	db := f.container.DB()
	logger := f.container.Logger()
	tracer := f.container.Tracer()

	orderStore := ppostgres.NewOrderStore(db)
	stockStore := ppostgres.NewStockStore(db)
	customerStore := ppostgres.NewCustomerStore(db)
	catalogStore := ppostgres.NewCatalogStore(db)
	employeeStore := ppostgres.NewEmployeeStore(db)
	reviewStore := ppostgres.NewReviewStore(db)
	reportStore := ppostgres.NewReportStore(db)

	ledger := stock.NewLedger(stockStore, logger, tracer)
	loyaltySvc := loyalty.NewService(customerStore, logger, tracer)
	workflow := order.NewWorkflow(orderStore, ledger, loyaltySvc, logger, tracer)
	catalogSvc := catalog.NewService(catalogStore, logger, tracer)
	staffSvc := staff.NewService(employeeStore, logger, tracer)
	reviewSvc := review.NewService(reviewStore, catalogStore, customerStore, logger, tracer)
	reportSvc := report.NewService(reportStore, logger, tracer)

	return httpapi.NewHandlers(workflow, ledger, catalogSvc, staffSvc, reviewSvc, reportSvc, logger)
}

// CreateServer builds the HTTP server for the wired handler set
func (f *ServiceFactory) CreateServer() *httpapi.Server {
	handlers := f.CreateRouter()
	router := httpapi.NewRouter(handlers)
	return httpapi.NewServer(f.container.Config().HTTPAddr, router)
}
