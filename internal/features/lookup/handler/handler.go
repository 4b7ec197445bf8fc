package handler

import (
	"errors"
	"strings"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/config"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/logger"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/domain"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/ports"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LookupHandler handles HTTP requests for order lookups.
type LookupHandler struct {
	// service is the LookupService instance.
	service *service.LookupService
	// config carries the disclosure and debug settings.
	config *config.AppConfig
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(s *service.LookupService, cfg *config.AppConfig) *LookupHandler {
	return &LookupHandler{
		service: s,
		config:  cfg,
	}
}

// LookupRequest is the order-lookup request body.
type LookupRequest struct {
	// OrderCode is the order name or number as shown to the customer.
	OrderCode string `json:"orderCode"`
	// Postcode is the postcode the customer entered for verification.
	Postcode string `json:"postcode"`
}

// OrderPayload is the disclosed summary of the matched order.
type OrderPayload struct {
	// ID is the platform order identifier.
	ID string `json:"id,omitempty"`
	// Name is the customer-facing order name, e.g. "#1001".
	Name string `json:"name"`
	// OrderNumber is the numeric order number when the upstream supplies one.
	OrderNumber int64 `json:"orderNumber,omitempty"`
	// Tracking lists the shipment tracking entries, possibly empty.
	Tracking []domain.TrackingEntry `json:"tracking"`
}

// LookupResponse is the successful order-lookup response body.
type LookupResponse struct {
	// OK indicates the lookup succeeded.
	OK bool `json:"ok"`
	// Order is the matched order summary with tracking.
	Order OrderPayload `json:"order"`
	// Items lists the purchased items on the order.
	Items []domain.ItemView `json:"items"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// OK is always false on errors.
	OK bool `json:"ok"`
	// Error is the client-safe error description.
	Error string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// OriginsResponse reports the active origin and upstream configuration.
type OriginsResponse struct {
	// OK indicates the debug endpoint answered.
	OK bool `json:"ok"`
	// Allowed is the configured origin allow-list, empty when permissive.
	Allowed []string `json:"allowed"`
	// Shop is the configured shop domain.
	Shop string `json:"shop"`
	// Version is the configured Admin API version.
	Version string `json:"version"`
}

// Lookup godoc
// @Summary Look up an order by order code and postcode
// @Description Verifies the postcode against the order's addresses and returns tracking plus purchased items. The Admin token never leaves the server.
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body LookupRequest true "Order code and postcode"
// @Success 200 {object} LookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /order-lookup [post]
func (h *LookupHandler) Lookup(c *fiber.Ctx) error {
	rayID := requestID(c)

	var req LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "request body must be JSON",
			RayID: rayID,
		})
	}

	orderCode := strings.TrimSpace(req.OrderCode)
	postcode := strings.TrimSpace(req.Postcode)
	if orderCode == "" || postcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "orderCode and postcode are required",
			RayID: rayID,
		})
	}

	result, err := h.service.Lookup(orderCode, postcode)
	if err != nil {
		// The postcode is verification data, so it stays out of the logs.
		logger.Get().Error("Order lookup failed",
			zap.String("order_code", orderCode),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		status := fiber.StatusInternalServerError
		msg := "server error"

		var upstream *ports.UpstreamError
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			msg = "server not configured"
		case errors.Is(err, service.ErrOrderNotFound):
			status = fiber.StatusNotFound
			msg = "order not found"
		case errors.Is(err, service.ErrNoItems):
			status = fiber.StatusNotFound
			msg = "no products found on that order"
		case errors.As(err, &upstream):
			if h.config.Lookup.ExposeUpstreamErrors {
				msg = upstream.Message
			}
		}

		return c.Status(status).JSON(ErrorResponse{
			Error: msg,
			RayID: rayID,
		})
	}

	return c.JSON(LookupResponse{
		OK: true,
		Order: OrderPayload{
			ID:          result.Order.ID,
			Name:        result.Order.Name,
			OrderNumber: result.Order.OrderNumber,
			Tracking:    result.Tracking,
		},
		Items: result.Items,
	})
}

// DebugOrigins godoc
// @Summary Show the active origin and upstream configuration
// @Description Reports the configured origin allow-list and shop coordinates. Not registered in production.
// @Tags debug
// @Produce json
// @Success 200 {object} OriginsResponse
// @Router /debug/origins [get]
func (h *LookupHandler) DebugOrigins(c *fiber.Ctx) error {
	allowed := h.config.Origins()
	if allowed == nil {
		allowed = []string{}
	}

	return c.JSON(OriginsResponse{
		OK:      true,
		Allowed: allowed,
		Shop:    h.config.Shopify.Shop,
		Version: h.config.Shopify.Version,
	})
}

func requestID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}
	return rayID
}
