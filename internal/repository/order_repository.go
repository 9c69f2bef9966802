package repository

import (
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.PendingOrder) error
	GetByID(id uint) (*models.PendingOrder, error)
	Update(order *models.PendingOrder) error
	List() ([]models.PendingOrder, error)
	Complete(id uint, fechaEntrega time.Time) (*models.CompletedDelivery, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.PendingOrder) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.PendingOrder, error) {
	var order models.PendingOrder
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(order *models.PendingOrder) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) List() ([]models.PendingOrder, error) {
	var orders []models.PendingOrder
	err := r.db.Order("fecha_creacion DESC").Find(&orders).Error
	return orders, err
}

// Complete moves a pending order into entregas_completadas. The copy and the
// delete run in one transaction: a failure in either leaves both tables as
// they were. Deleting a pending order outside this path is not supported.
func (r *orderRepository) Complete(id uint, fechaEntrega time.Time) (*models.CompletedDelivery, error) {
	var delivery models.CompletedDelivery

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.PendingOrder
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}

		delivery = models.CompletedDelivery{
			Empresa:         order.Empresa,
			RutEmpresa:      order.RutEmpresa,
			Producto:        order.Producto,
			SKU:             order.SKU,
			Cantidad:        order.Cantidad,
			Proveedor:       order.Proveedor,
			TipoFacturacion: order.TipoFacturacion,
			OrdenCompra:     order.OrdenCompra,
			FechaNotaVenta:  order.FechaNotaVenta,
			NNotaVenta:      order.NNotaVenta,
			FechaEntrega:    fechaEntrega,
			Motivo:          order.Motivo,
			Vendedor:        order.Vendedor,
			FechaCreacion:   order.FechaCreacion,
		}
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}

		return tx.Delete(&models.PendingOrder{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &delivery, nil
}
