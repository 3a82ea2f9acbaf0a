// Package httpapi exposes the POS services over the JSON surface the
// storefront consumes.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"posservice/internal/catalog"
	"posservice/internal/order"
	"posservice/internal/platform/observability"
	"posservice/internal/report"
	"posservice/internal/review"
	"posservice/internal/staff"
	"posservice/internal/stock"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	orders  *order.Workflow
	ledger  *stock.Ledger
	catalog *catalog.Service
	staff   *staff.Service
	reviews *review.Service
	reports *report.Service
	logger  observability.Logger
}

// NewHandlers creates the handler set with explicit dependencies.
func NewHandlers(
	orders *order.Workflow,
	ledger *stock.Ledger,
	catalogSvc *catalog.Service,
	staffSvc *staff.Service,
	reviewSvc *review.Service,
	reportSvc *report.Service,
	logger observability.Logger,
) *Handlers {
	return &Handlers{
		orders:  orders,
		ledger:  ledger,
		catalog: catalogSvc,
		staff:   staffSvc,
		reviews: reviewSvc,
		reports: reportSvc,
		logger:  logger,
	}
}

// NewRouter wires every route onto a gin engine.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/submitorder", h.SubmitOrder)
	router.GET("/getorders", h.GetOrders)
	router.POST("/completeorder", h.CompleteOrder)
	router.POST("/updateingredientstock", h.UpdateIngredientStock)

	router.GET("/getproducts", h.GetProducts)
	router.GET("/getingredients", h.GetIngredients)

	router.GET("/getemployees", h.GetEmployees)
	router.POST("/addemployee", h.AddEmployee)
	router.PUT("/updateemployee/:id", h.UpdateEmployee)
	router.DELETE("/deleteemployee/:id", h.DeleteEmployee)

	router.GET("/getxreport", h.GetXReport)
	router.POST("/generatezreport", h.GenerateZReport)
	router.GET("/getsalesreport", h.GetSalesReport)
	router.GET("/getproductsusedchart", h.GetProductsUsedChart)
	router.GET("/getingredientsusedchart", h.GetIngredientsUsedChart)

	router.POST("/addreview", h.AddReview)
	router.POST("/deletereview", h.DeleteReview)

	return router
}

// Server owns the HTTP listener lifecycle.
type Server struct {
	srv *http.Server
}

// NewServer creates an HTTP server for the router.
func NewServer(addr string, router *gin.Engine) *Server {
	return &Server{
		srv: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Run serves until the listener closes. A graceful shutdown is not an
// error.
func (s *Server) Run() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
