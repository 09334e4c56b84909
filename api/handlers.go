package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fintrack/models"
	"fintrack/query"
	"fintrack/service"
)

type Handler struct {
	svc *service.TransactionService
}

func NewHandler(svc *service.TransactionService) *Handler {
	return &Handler{svc: svc}
}

// Register wires the transaction routes onto the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/transactions", h.GetTransactions)
	r.POST("/transactions", h.CreateTransaction)
	r.PUT("/transactions", h.UpdateTransaction)
	r.DELETE("/transactions", h.DeleteTransaction)
	r.GET("/categories", h.GetCategories)
}

// GetCategories godoc
// @Summary      List the recommended categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

// GetTransactions godoc
// @Summary      List transactions or fetch one by id
// @Description  With id set, returns that single transaction. Otherwise returns a filtered, paginated listing.
// @Tags         transactions
// @Produce      json
// @Param        id         query  string  false  "Transaction id"
// @Param        category   query  string  false  "Exact category match"
// @Param        startDate  query  string  false  "Range start (YYYY-MM-DD, needs endDate)"
// @Param        endDate    query  string  false  "Range end (YYYY-MM-DD, needs startDate)"
// @Param        page       query  int     false  "Page number"     default(1)
// @Param        limit      query  int     false  "Page size"       default(10)
// @Success      200  {object}  models.TransactionsPage
// @Failure      404  {object}  models.ErrorResponse
// @Router       /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		t, err := h.svc.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Transaction not found"})
			return
		}
		c.JSON(http.StatusOK, t)
		return
	}

	page := h.svc.List(query.Filter{
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      intQuery(c, "page", query.DefaultPage),
		Limit:     intQuery(c, "limit", query.DefaultLimit),
	})
	c.JSON(http.StatusOK, page)
}

// CreateTransaction godoc
// @Summary      Create a transaction
// @Description  Missing fields get defaults: empty description, zero amount, category "Other", today's date.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body  models.CreateTransaction  true  "New transaction"
// @Success      200  {object}  models.Transaction
// @Failure      500  {object}  models.ErrorResponse
// @Router       /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var in models.CreateTransaction
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create transaction"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Create(in))
}

// UpdateTransaction godoc
// @Summary      Update a transaction
// @Description  Merges the supplied fields over the existing record; absent fields stay unchanged.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body  models.UpdateTransaction  true  "Fields to change, id required"
// @Success      200  {object}  models.Transaction
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /transactions [put]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	var in models.UpdateTransaction
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update transaction"})
		return
	}

	t, err := h.svc.Update(in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body  models.DeleteTransaction  true  "Id to delete"
// @Success      200  {object}  models.DeleteResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /transactions [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	var in models.DeleteTransaction
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete transaction"})
		return
	}

	if err := h.svc.Delete(in.ID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}

// writeError maps service errors onto the HTTP contract.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "ID is required"})
	case errors.Is(err, service.ErrZeroAmount):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Transaction not found"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
