package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/models"
	"github.com/AztroNs/sistema-pendientes/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService  services.OrderService
	reportService services.ReportService
	log           *zap.Logger
}

func NewOrderHandler(orderService services.OrderService, reportService services.ReportService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, reportService: reportService, log: log}
}

// ListPending returns the current pendientes, newest first. Optional query
// params: empresa/proveedor (exact filters), buscar_empresa/buscar_producto
// (case-insensitive substring search).
func (h *OrderHandler) ListPending(c *gin.Context) {
	orders, err := h.reportService.Pendientes(
		c.Query("empresa"),
		c.Query("proveedor"),
		c.Query("buscar_empresa"),
		c.Query("buscar_producto"),
	)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListOverdue(c *gin.Context) {
	orders, err := h.reportService.Atrasados()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListCompleted(c *gin.Context) {
	deliveries, err := h.orderService.ListCompleted()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var order models.PendingOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.Create(&order); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var order models.PendingOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.orderService.Edit(id, &order)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *OrderHandler) Complete(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req struct {
		FechaEntrega *time.Time `json:"fecha_entrega"`
	}
	// Body is optional; an empty body means "delivered today". ContentLength
	// is -1 for chunked bodies, so always attempt the bind and treat EOF as
	// no body.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	delivery, err := h.orderService.Complete(id, req.FechaEntrega)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *OrderHandler) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pendiente no encontrado"})
	case errors.Is(err, services.ErrStoreUnavailable):
		h.log.Error("store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store unavailable"})
	default:
		h.log.Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
