// Package router assembles the gin engine: middleware chain, API routes,
// health and metrics endpoints.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tzuhao-hung/expense-tracker/internal/handler"
	"github.com/tzuhao-hung/expense-tracker/internal/middleware"
	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/service"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// New builds the full HTTP router over the given storage backend. Mode is
// a gin mode string ("debug", "release", "test").
func New(store storage.Store, mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := handler.NewUserHandler(service.NewUserService(store))
	transactions := handler.NewTransactionHandler(service.NewTransactionService(store))
	expenses := handler.NewExpenseHandler(service.NewExpenseService(store))
	balances := handler.NewBalanceHandler(service.NewBalanceService(store))
	reports := handler.NewReportHandler(service.NewReportService(store))

	api := r.Group("/api")
	{
		api.GET("/categories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"categories": models.DefaultCategories})
		})

		api.POST("/users", users.Create)
		api.GET("/users", users.List)
		api.DELETE("/users/:id", users.Delete)

		api.POST("/personal", transactions.Create)
		api.GET("/personal", transactions.List)
		api.GET("/personal/:id", transactions.Get)
		api.PUT("/personal/:id", transactions.Update)
		api.DELETE("/personal/:id", transactions.Delete)

		api.POST("/shared", expenses.Create)
		api.GET("/shared", expenses.List)
		api.GET("/shared/:id", expenses.Get)
		api.PUT("/shared/:id", expenses.Update)
		api.DELETE("/shared/:id", expenses.Delete)

		api.GET("/balances", balances.Get)
		api.GET("/reports/monthly", reports.Monthly)
	}

	return r
}
