package main

import (
	"fmt"
	"log"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/config"
	"github.com/AztroNs/sistema-pendientes/internal/database"
	"github.com/AztroNs/sistema-pendientes/internal/migrations"
	"github.com/AztroNs/sistema-pendientes/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	var count int64
	if err := db.Model(&models.PendingOrder{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count pendientes:", err)
	}
	if count > 0 {
		fmt.Printf("Database already has %d pendientes, skipping sample data\n", count)
		return
	}

	fmt.Println("Creating sample pendientes...")
	notaVenta := time.Now().AddDate(0, 0, -10)
	samples := []models.PendingOrder{
		{
			Empresa:         "Constructora Andes Ltda",
			RutEmpresa:      "76.543.210-K",
			Producto:        "Bomba centrífuga 2HP",
			SKU:             "BC-2HP-220",
			Cantidad:        2,
			Proveedor:       "Pedrollo",
			TipoFacturacion: string(models.FacturacionCompleta),
			OrdenCompra:     "OC-1043",
			FechaNotaVenta:  &notaVenta,
			NNotaVenta:      "NV-2201",
			Estado:          string(models.EstadoPendiente),
			Motivo:          "Sin stock en bodega central",
			Vendedor:        "Carolina",
		},
		{
			Empresa:   "Agrícola Santa Rosa",
			Producto:  "Filtro de malla 120 mesh",
			SKU:       "FM-120",
			Cantidad:  6,
			Proveedor: "Azud",
			Estado:    string(models.EstadoEnProceso),
			Motivo:    "En tránsito desde proveedor",
			Vendedor:  "Marcelo",
		},
		{
			Empresa:   "Inmobiliaria Pacífico",
			Producto:  "Variador de frecuencia 3HP",
			Cantidad:  1,
			Proveedor: "Pedrollo",
			Estado:    string(models.EstadoPendiente),
			Vendedor:  "Carolina",
		},
	}

	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			log.Fatal("Failed to create sample pendiente:", err)
		}
	}

	fmt.Printf("Created %d sample pendientes\n", len(samples))
}
