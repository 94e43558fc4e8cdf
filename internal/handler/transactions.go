package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/service"
)

// TransactionHandler serves /api/personal.
type TransactionHandler struct {
	transactions *service.TransactionService
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type transactionRequest struct {
	UserID   int64   `json:"user_id" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=income expense"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
}

func (r *transactionRequest) toModel(id int64) *models.PersonalTransaction {
	return &models.PersonalTransaction{
		ID:       id,
		UserID:   r.UserID,
		Type:     r.Type,
		Amount:   r.Amount,
		Category: r.Category,
		Note:     r.Note,
		Date:     r.Date,
	}
}

// Create records a personal income or expense.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	tx := req.toModel(0)
	if err := h.transactions.Create(c.Request.Context(), tx); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, tx)
}

// Get returns one personal transaction.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	tx, err := h.transactions.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tx)
}

// Update replaces a personal transaction's fields.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	tx := req.toModel(id)
	if err := h.transactions.Update(c.Request.Context(), tx); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tx)
}

// Delete removes a personal transaction.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}

// List returns a user's transactions, optionally filtered by an inclusive
// date range (?user_id=1&start=2026-01-01&end=2026-01-31).
func (h *TransactionHandler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	txs, err := h.transactions.List(c.Request.Context(), userID, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, txs)
}
