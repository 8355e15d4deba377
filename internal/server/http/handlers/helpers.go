package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/server/http/dto"
	"github.com/craftpine/storefront/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) uuid.UUID {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := val.(uuid.UUID)
	return id
}

// CurrentUserRole extracts authenticated user role from context.
func CurrentUserRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Response{Message: message, Data: data})
}

// respondError maps domain sentinels to client statuses. Anything else is a
// server-side failure: the cause is logged and the client gets a generic
// message, never driver details.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidID),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidStatus):
		respond(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, domainErrors.ErrForbidden):
		respond(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, domainErrors.ErrNotFound):
		respond(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domainErrors.ErrInsufficientStock),
		errors.Is(err, domainErrors.ErrOrderNotPending):
		respond(c, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respond(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		ProductID: order.ProductID.String(),
		AddressID: order.AddressID.String(),
		Quantity:  order.Quantity,
		Total:     order.Total.StringFixed(2),
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}
