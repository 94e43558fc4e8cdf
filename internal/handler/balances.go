package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tzuhao-hung/expense-tracker/internal/service"
)

// BalanceHandler serves /api/balances.
type BalanceHandler struct {
	balances *service.BalanceService
}

func NewBalanceHandler(balances *service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balances: balances}
}

// Get computes net balances and settlement suggestions over all shared
// expenses.
func (h *BalanceHandler) Get(c *gin.Context) {
	report, err := h.balances.SharedBalances(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}
