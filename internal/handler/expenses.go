package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/service"
)

// ExpenseHandler serves /api/shared.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type splitRequest struct {
	UserID int64   `json:"user_id" binding:"required"`
	Kind   string  `json:"split_kind" binding:"required,oneof=fixed percentage"`
	Value  float64 `json:"split_value" binding:"gte=0"`
}

type expenseRequest struct {
	Title        string         `json:"title" binding:"required"`
	TotalAmount  float64        `json:"total_amount" binding:"required,gt=0"`
	Date         string         `json:"date" binding:"required,datetime=2006-01-02"`
	PaidByUserID int64          `json:"paid_by_user_id" binding:"required"`
	Category     string         `json:"category"`
	Note         string         `json:"note"`
	Splits       []splitRequest `json:"splits" binding:"required,min=1,dive"`
}

// toModel builds the expense, adding the payer as a zero-weight percentage
// participant when the client left them out of the splits. Payers who pay
// for others without consuming a share are common enough that the API
// accepts the shorthand; the engine itself still requires the payer row.
func (r *expenseRequest) toModel(id int64) *models.SharedExpense {
	splits := make([]models.SplitDeclaration, 0, len(r.Splits)+1)
	payerIncluded := false
	for _, s := range r.Splits {
		if s.UserID == r.PaidByUserID {
			payerIncluded = true
		}
		splits = append(splits, models.SplitDeclaration{
			UserID: s.UserID,
			Kind:   s.Kind,
			Value:  s.Value,
		})
	}
	if !payerIncluded {
		splits = append(splits, models.SplitDeclaration{
			UserID: r.PaidByUserID,
			Kind:   models.SplitPercentage,
			Value:  0,
		})
	}

	return &models.SharedExpense{
		ID:           id,
		Title:        r.Title,
		TotalAmount:  r.TotalAmount,
		Date:         r.Date,
		PaidByUserID: r.PaidByUserID,
		Category:     r.Category,
		Note:         r.Note,
		Splits:       splits,
	}
}

// Create records a shared expense and returns it with computed shares.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	detail, err := h.expenses.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, detail)
}

// Get returns one shared expense with computed shares.
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	detail, err := h.expenses.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail)
}

// Update replaces a shared expense and its splits.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	detail, err := h.expenses.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail)
}

// Delete removes a shared expense and its splits.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}

// List returns all shared expenses, oldest first.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, expenses)
}
