package models

import "time"

// CompletedDelivery is the terminal copy of a PendingOrder once fulfilled.
// Created only by the complete transition and never mutated afterwards.
// FechaCreacion is carried over from the original record, not re-stamped.
type CompletedDelivery struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Empresa         string     `json:"empresa" gorm:"column:empresa;not null"`
	RutEmpresa      string     `json:"rut_empresa" gorm:"column:rut_empresa"`
	Producto        string     `json:"producto" gorm:"column:producto;not null"`
	SKU             string     `json:"sku" gorm:"column:sku"`
	Cantidad        int        `json:"cantidad" gorm:"column:cantidad;not null"`
	Proveedor       string     `json:"proveedor" gorm:"column:proveedor"`
	TipoFacturacion string     `json:"tipo_facturacion" gorm:"column:tipo_facturacion"`
	OrdenCompra     string     `json:"orden_compra" gorm:"column:orden_compra"`
	FechaNotaVenta  *time.Time `json:"fecha_nota_venta" gorm:"column:fecha_nota_venta"`
	NNotaVenta      string     `json:"n_nota_venta" gorm:"column:n_nota_venta"`
	FechaEntrega    time.Time  `json:"fecha_entrega" gorm:"column:fecha_entrega;not null"`
	Motivo          string     `json:"motivo" gorm:"column:motivo;type:text"`
	Vendedor        string     `json:"vendedor" gorm:"column:vendedor"`
	FechaCreacion   time.Time  `json:"fecha_creacion" gorm:"column:fecha_creacion"`
}

func (CompletedDelivery) TableName() string {
	return "entregas_completadas"
}
