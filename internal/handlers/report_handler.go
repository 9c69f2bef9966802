package handlers

import (
	"errors"
	"net/http"

	"github.com/AztroNs/sistema-pendientes/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService services.ReportService
	log           *zap.Logger
}

func NewReportHandler(reportService services.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, log: log}
}

// ByProveedor backs the supplier bar chart: total pending quantity per supplier.
func (h *ReportHandler) ByProveedor(c *gin.Context) {
	resumen, err := h.reportService.ByProveedor()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// Empresas backs the client selector on the dashboard.
func (h *ReportHandler) Empresas(c *gin.Context) {
	empresas, err := h.reportService.Empresas()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, empresas)
}

// ByEmpresa groups one client's pending products by (producto, sku, proveedor).
func (h *ReportHandler) ByEmpresa(c *gin.Context) {
	empresa := c.Query("empresa")
	if empresa == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empresa query param is required"})
		return
	}

	resumen, err := h.reportService.ByEmpresa(empresa)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

func (h *ReportHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrStoreUnavailable) {
		h.log.Error("store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store unavailable"})
		return
	}
	h.log.Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
