package models

import (
	"strings"
	"time"
)

// PendingOrder is one outstanding commitment to deliver product to a client.
// It lives in the pendientes table until it is completed, at which point it
// is moved to entregas_completadas in a single transaction.
type PendingOrder struct {
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
	FechaEntrega    *time.Time `json:"fecha_entrega" gorm:"column:fecha_entrega"`
	Estado          string     `json:"estado" gorm:"column:estado;default:'Pendiente'"`
	Motivo          string     `json:"motivo" gorm:"column:motivo;type:text"`
	Vendedor        string     `json:"vendedor" gorm:"column:vendedor"`
	FechaCreacion   time.Time  `json:"fecha_creacion" gorm:"column:fecha_creacion;autoCreateTime"`

	// Derived on every read, never persisted.
	EdadDias int  `json:"edad_dias" gorm:"-"`
	Atrasado bool `json:"atrasado" gorm:"-"`
}

func (PendingOrder) TableName() string {
	return "pendientes"
}

type Estado string

const (
	EstadoPendiente  Estado = "Pendiente"
	EstadoEnProceso  Estado = "En Proceso"
	EstadoCompletada Estado = "Completada"
)

// EstadoValido reports whether s is one of the known states, ignoring case.
// Source data carries mixed casing ("pendiente" vs "Pendiente").
func EstadoValido(s string) bool {
	for _, e := range []Estado{EstadoPendiente, EstadoEnProceso, EstadoCompletada} {
		if strings.EqualFold(s, string(e)) {
			return true
		}
	}
	return false
}

type TipoFacturacion string

const (
	FacturacionParcial  TipoFacturacion = "Parcial con guía"
	FacturacionCompleta TipoFacturacion = "Completa"
)
