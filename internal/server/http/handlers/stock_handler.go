package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftpine/storefront/internal/server/http/dto"
)

// StockHandler exposes stock inspection endpoints.
type StockHandler struct {
	facade StockFacade
	logger *slog.Logger
}

// NewStockHandler constructs StockHandler.
func NewStockHandler(facade StockFacade, logger *slog.Logger) *StockHandler {
	return &StockHandler{facade: facade, logger: logger}
}

// Get handles GET /api/stocks/:id.
func (h *StockHandler) Get(c *gin.Context) {
	stock, err := h.facade.Stock(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "stock found", dto.StockResponse{
		ID:       stock.ID.String(),
		Quantity: stock.Quantity,
	})
}

// Update handles PUT /api/stocks/:id, an administrative overwrite of the
// available quantity.
func (h *StockHandler) Update(c *gin.Context) {
	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	stock, err := h.facade.SetStock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "stock updated", dto.StockResponse{
		ID:       stock.ID.String(),
		Quantity: stock.Quantity,
	})
}
