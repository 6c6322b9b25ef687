package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type transactionHandler struct {
	transactionService ports.TransactionSvc
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService ports.TransactionSvc) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listOwnTransactions)
		transactions.GET("/all", h.listAllTransactions)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/:id/request-delete", h.requestDeletion)
		transactions.POST("/:id/approve-delete", h.approveDeletion)
		transactions.POST("/:id/reject-delete", h.rejectDeletion)
	}
	rg.GET("/approval-requests", h.listPendingDeletion)
	rg.GET("/dashboard/summary", h.dashboardSummary)
}

// createTransaction godoc
// @Summary Record a sale or expense
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.Wrap(txn))
}

// listOwnTransactions godoc
// @Summary List the caller's transactions
// @Tags transactions
// @Produce json
// @Param date query string false "Filter to one day (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listOwnTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	txns, err := h.transactionService.ListOwnTransactions(c.Request.Context(), user, date)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(txns))
}

// listAllTransactions godoc
// @Summary List every user's transactions
// @Description Admin view joined with the owning user's email.
// @Tags transactions
// @Produce json
// @Param date query string false "Filter to one day (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/all [get]
func (h *transactionHandler) listAllTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	txns, err := h.transactionService.ListAllTransactions(c.Request.Context(), user, date)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(txns))
}

// listPendingDeletion godoc
// @Summary List transactions awaiting deletion approval
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /approval-requests [get]
func (h *transactionHandler) listPendingDeletion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	txns, err := h.transactionService.ListPendingDeletion(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list approval requests")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(txns))
}

// requestDeletion godoc
// @Summary Request deletion of an owned transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/request-delete [post]
func (h *transactionHandler) requestDeletion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.transactionService.RequestDeletion(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to request deletion")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deletion requested"})
}

// approveDeletion godoc
// @Summary Approve a pending deletion
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/approve-delete [post]
func (h *transactionHandler) approveDeletion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.transactionService.ApproveDeletion(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to approve deletion")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// rejectDeletion godoc
// @Summary Reject a pending deletion and restore the transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/reject-delete [post]
func (h *transactionHandler) rejectDeletion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.transactionService.RejectDeletion(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to reject deletion")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction restored"})
}

// updateTransaction godoc
// @Summary Edit a transaction with a mandatory reason
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "New field values plus reason"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), user, id, req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction directly
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// dashboardSummary godoc
// @Summary Daily sales and expense totals
// @Description Totals for the requested day and the day before it.
// @Tags reports
// @Produce json
// @Param date query string false "Reference day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *transactionHandler) dashboardSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	ref := time.Now()
	if date != nil {
		ref = *date
	}
	summary, err := h.transactionService.DashboardSummary(c.Request.Context(), user, ref)
	if err != nil {
		respondError(c, err, "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(summary))
}
