package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/models"
	"github.com/AztroNs/sistema-pendientes/internal/repository"
)

// OverdueDays is the age at which a pending order is flagged.
const OverdueDays = 7

type OrderService interface {
	Create(order *models.PendingOrder) error
	Edit(id uint, order *models.PendingOrder) (*models.PendingOrder, error)
	Complete(id uint, fechaEntrega *time.Time) (*models.CompletedDelivery, error)
	ListPending() ([]models.PendingOrder, error)
	ListCompleted() ([]models.CompletedDelivery, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	deliveryRepo repository.DeliveryRepository
	now          func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, deliveryRepo repository.DeliveryRepository) OrderService {
	return &orderService{orderRepo: orderRepo, deliveryRepo: deliveryRepo, now: time.Now}
}

func (s *orderService) Create(order *models.PendingOrder) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	// Whatever the caller sent, a new order starts pending and the store
	// assigns id and fecha_creacion. A caller-supplied fecha_creacion would
	// otherwise backdate the record into overdue state.
	order.Estado = string(models.EstadoPendiente)
	order.ID = 0
	order.FechaCreacion = time.Time{}
	order.FechaEntrega = nil
	order.EdadDias = 0
	order.Atrasado = false

	if err := s.orderRepo.Create(order); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *orderService) Edit(id uint, order *models.PendingOrder) (*models.PendingOrder, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if order.Estado != "" && !models.EstadoValido(order.Estado) {
		return nil, fmt.Errorf("%w: estado desconocido %q", ErrValidation, order.Estado)
	}

	existing, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, storeErr(err)
	}

	// id and fecha_creacion survive every edit.
	order.ID = existing.ID
	order.FechaCreacion = existing.FechaCreacion
	if order.Estado == "" {
		order.Estado = existing.Estado
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, storeErr(err)
	}
	return order, nil
}

func (s *orderService) Complete(id uint, fechaEntrega *time.Time) (*models.CompletedDelivery, error) {
	entrega := s.now()
	if fechaEntrega != nil {
		entrega = *fechaEntrega
	}
	entrega = truncateToDay(entrega)

	delivery, err := s.orderRepo.Complete(id, entrega)
	if err != nil {
		return nil, storeErr(err)
	}
	return delivery, nil
}

func (s *orderService) ListPending() ([]models.PendingOrder, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, storeErr(err)
	}

	today := s.now()
	for i := range orders {
		orders[i].EdadDias = ComputeAge(&orders[i], today)
		orders[i].Atrasado = IsOverdue(&orders[i], today)
	}
	return orders, nil
}

func (s *orderService) ListCompleted() ([]models.CompletedDelivery, error) {
	deliveries, err := s.deliveryRepo.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return deliveries, nil
}

func validateOrder(order *models.PendingOrder) error {
	if strings.TrimSpace(order.Empresa) == "" {
		return fmt.Errorf("%w: empresa es obligatoria", ErrValidation)
	}
	if strings.TrimSpace(order.Producto) == "" {
		return fmt.Errorf("%w: producto es obligatorio", ErrValidation)
	}
	if order.Cantidad < 1 {
		return fmt.Errorf("%w: cantidad debe ser >= 1", ErrValidation)
	}
	return nil
}

// ComputeAge returns the whole days between fecha_creacion and today,
// comparing at day granularity. A creation date in the future yields a
// negative age; it is reported as-is, not clamped.
func ComputeAge(order *models.PendingOrder, today time.Time) int {
	created := truncateToDay(order.FechaCreacion)
	day := truncateToDay(today)
	return int(day.Sub(created).Hours() / 24)
}

// IsOverdue reports whether a pending order has aged past the threshold.
// Status casing varies in the data, so the comparison ignores case.
func IsOverdue(order *models.PendingOrder, today time.Time) bool {
	return ComputeAge(order, today) >= OverdueDays &&
		strings.EqualFold(order.Estado, string(models.EstadoPendiente))
}

// truncateToDay pins a timestamp to UTC midnight of its calendar day so
// day arithmetic is exact across timezones and DST shifts.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
