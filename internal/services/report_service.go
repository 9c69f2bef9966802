package services

import (
	"sort"
	"strings"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/models"
	"github.com/AztroNs/sistema-pendientes/internal/repository"
)

// ProveedorResumen is one bar of the supplier chart.
type ProveedorResumen struct {
	Proveedor     string `json:"proveedor"`
	CantidadTotal int    `json:"cantidad_total"`
}

// ProductoResumen is one row of the per-client product table.
type ProductoResumen struct {
	Producto      string `json:"producto"`
	SKU           string `json:"sku"`
	Proveedor     string `json:"proveedor"`
	CantidadTotal int    `json:"cantidad_total"`
}

type ReportService interface {
	ByProveedor() ([]ProveedorResumen, error)
	ByEmpresa(empresa string) ([]ProductoResumen, error)
	Empresas() ([]string, error)
	Pendientes(empresa, proveedor, buscarEmpresa, buscarProducto string) ([]models.PendingOrder, error)
	Atrasados() ([]models.PendingOrder, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo, now: time.Now}
}

func (s *reportService) ByProveedor() ([]ProveedorResumen, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return SummarizeByProveedor(orders), nil
}

func (s *reportService) ByEmpresa(empresa string) ([]ProductoResumen, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return SummarizeByEmpresaProducto(orders, empresa), nil
}

// Empresas lists the distinct client names, sorted, for the dashboard selector.
// Empty names are skipped.
func (s *reportService) Empresas() ([]string, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, storeErr(err)
	}

	seen := make(map[string]bool)
	empresas := []string{}
	for _, o := range orders {
		if o.Empresa == "" || seen[o.Empresa] {
			continue
		}
		seen[o.Empresa] = true
		empresas = append(empresas, o.Empresa)
	}
	sort.Strings(empresas)
	return empresas, nil
}

func (s *reportService) Pendientes(empresa, proveedor, buscarEmpresa, buscarProducto string) ([]models.PendingOrder, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, storeErr(err)
	}

	orders = FilterOrders(orders, empresa, proveedor)
	orders = SearchOrders(orders, buscarEmpresa, buscarProducto)

	today := s.now()
	for i := range orders {
		orders[i].EdadDias = ComputeAge(&orders[i], today)
		orders[i].Atrasado = IsOverdue(&orders[i], today)
	}
	return orders, nil
}

// Atrasados returns the pending orders currently past the overdue threshold.
func (s *reportService) Atrasados() ([]models.PendingOrder, error) {
	orders, err := s.Pendientes("", "", "", "")
	if err != nil {
		return nil, err
	}

	atrasados := []models.PendingOrder{}
	for _, o := range orders {
		if o.Atrasado {
			atrasados = append(atrasados, o)
		}
	}
	return atrasados, nil
}

// SummarizeByProveedor groups orders by supplier and sums quantities. An
// empty supplier is its own group. Output is sorted by supplier name so
// results are deterministic for a given input.
func SummarizeByProveedor(orders []models.PendingOrder) []ProveedorResumen {
	totals := make(map[string]int)
	for _, o := range orders {
		totals[o.Proveedor] += o.Cantidad
	}

	resumen := make([]ProveedorResumen, 0, len(totals))
	for proveedor, total := range totals {
		resumen = append(resumen, ProveedorResumen{Proveedor: proveedor, CantidadTotal: total})
	}
	sort.Slice(resumen, func(i, j int) bool {
		return resumen[i].Proveedor < resumen[j].Proveedor
	})
	return resumen
}

// SummarizeByEmpresaProducto filters to one client (exact match) and groups
// by (producto, sku, proveedor), summing quantities.
func SummarizeByEmpresaProducto(orders []models.PendingOrder, empresa string) []ProductoResumen {
	type key struct {
		producto, sku, proveedor string
	}

	totals := make(map[key]int)
	for _, o := range orders {
		if o.Empresa != empresa {
			continue
		}
		totals[key{o.Producto, o.SKU, o.Proveedor}] += o.Cantidad
	}

	resumen := make([]ProductoResumen, 0, len(totals))
	for k, total := range totals {
		resumen = append(resumen, ProductoResumen{
			Producto:      k.producto,
			SKU:           k.sku,
			Proveedor:     k.proveedor,
			CantidadTotal: total,
		})
	}
	sort.Slice(resumen, func(i, j int) bool {
		a, b := resumen[i], resumen[j]
		if a.Producto != b.Producto {
			return a.Producto < b.Producto
		}
		if a.SKU != b.SKU {
			return a.SKU < b.SKU
		}
		return a.Proveedor < b.Proveedor
	})
	return resumen
}

// FilterOrders keeps orders matching the supplied exact filters. An empty
// filter value passes everything; both filters combine as AND.
func FilterOrders(orders []models.PendingOrder, empresa, proveedor string) []models.PendingOrder {
	filtered := []models.PendingOrder{}
	for _, o := range orders {
		if empresa != "" && o.Empresa != empresa {
			continue
		}
		if proveedor != "" && o.Proveedor != proveedor {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// SearchOrders keeps orders whose empresa/producto contain the given
// substrings, ignoring case. An empty query field is not filtered; a record
// with an empty value never matches a non-empty query.
func SearchOrders(orders []models.PendingOrder, empresaSub, productoSub string) []models.PendingOrder {
	filtered := []models.PendingOrder{}
	for _, o := range orders {
		if !containsFold(o.Empresa, empresaSub) {
			continue
		}
		if !containsFold(o.Producto, productoSub) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func containsFold(value, query string) bool {
	if query == "" {
		return true
	}
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}
