package migrations

import (
	"github.com/AztroNs/sistema-pendientes/internal/models"

	"gorm.io/gorm"
)

// RunMigrations brings the canonical schema up to date. Columns that drifted
// in and out across old revisions (rut_empresa, tipo_facturacion, ...) are
// all part of the one schema here.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PendingOrder{},
		&models.CompletedDelivery{},
	)
}
