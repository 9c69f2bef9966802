package repository

import (
	"github.com/AztroNs/sistema-pendientes/internal/models"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	List() ([]models.CompletedDelivery, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) List() ([]models.CompletedDelivery, error) {
	var deliveries []models.CompletedDelivery
	err := r.db.Order("fecha_entrega DESC").Find(&deliveries).Error
	return deliveries, err
}
