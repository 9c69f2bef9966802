package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/models"
	"github.com/AztroNs/sistema-pendientes/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOrderService(t *testing.T, now time.Time) (*orderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(&models.PendingOrder{}, &models.CompletedDelivery{}))

	svc := &orderService{
		orderRepo:    repository.NewOrderRepository(db),
		deliveryRepo: repository.NewDeliveryRepository(db),
		now:          func() time.Time { return now },
	}
	return svc, db
}

func validPendiente() *models.PendingOrder {
	return &models.PendingOrder{
		Empresa:   "Acme Corp",
		Producto:  "Bomba 2HP",
		Cantidad:  3,
		Proveedor: "Pedrollo",
		Estado:    string(models.EstadoPendiente),
		Vendedor:  "Carolina",
	}
}

func TestCreateForcesEstadoPendiente(t *testing.T) {
	svc, _ := setupOrderService(t, time.Now())

	order := validPendiente()
	order.Estado = string(models.EstadoCompletada)

	require.NoError(t, svc.Create(order))
	assert.Equal(t, string(models.EstadoPendiente), order.Estado)
	assert.NotZero(t, order.ID)
	assert.False(t, order.FechaCreacion.IsZero())
}

func TestCreateIgnoresCallerSuppliedFechaCreacion(t *testing.T) {
	now := time.Now()
	svc, _ := setupOrderService(t, now)

	backdated := now.AddDate(0, 0, -30)
	entrega := now.AddDate(0, 0, -1)
	order := validPendiente()
	order.FechaCreacion = backdated
	order.FechaEntrega = &entrega
	order.EdadDias = 30
	order.Atrasado = true

	require.NoError(t, svc.Create(order))

	// The store stamps fecha_creacion at insert; a backdated value must not
	// make a brand-new order overdue.
	orders, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].FechaEntrega)
	assert.False(t, orders[0].FechaCreacion.Equal(backdated))
	assert.Equal(t, 0, orders[0].EdadDias)
	assert.False(t, orders[0].Atrasado)
}

func TestCreateRejectsBadCantidad(t *testing.T) {
	svc, db := setupOrderService(t, time.Now())

	for _, cantidad := range []int{0, -1} {
		order := validPendiente()
		order.Cantidad = cantidad
		err := svc.Create(order)
		assert.ErrorIs(t, err, ErrValidation)
	}

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.PendingOrder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	svc, _ := setupOrderService(t, time.Now())

	sinEmpresa := validPendiente()
	sinEmpresa.Empresa = "  "
	assert.ErrorIs(t, svc.Create(sinEmpresa), ErrValidation)

	sinProducto := validPendiente()
	sinProducto.Producto = ""
	assert.ErrorIs(t, svc.Create(sinProducto), ErrValidation)
}

func TestEditPreservesIDAndFechaCreacion(t *testing.T) {
	svc, _ := setupOrderService(t, time.Now())

	order := validPendiente()
	require.NoError(t, svc.Create(order))
	originalID := order.ID
	originalCreacion := order.FechaCreacion

	edit := validPendiente()
	edit.ID = 12345
	edit.Cantidad = 9
	edit.Estado = "en proceso"
	edit.FechaCreacion = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, err := svc.Edit(originalID, edit)
	require.NoError(t, err)
	assert.Equal(t, originalID, updated.ID)
	assert.True(t, updated.FechaCreacion.Equal(originalCreacion))
	assert.Equal(t, 9, updated.Cantidad)
}

func TestEditNotFound(t *testing.T) {
	svc, db := setupOrderService(t, time.Now())

	_, err := svc.Edit(999, validPendiente())
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.PendingOrder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditRejectsUnknownEstado(t *testing.T) {
	svc, _ := setupOrderService(t, time.Now())

	order := validPendiente()
	require.NoError(t, svc.Create(order))

	edit := validPendiente()
	edit.Estado = "Cancelada"
	_, err := svc.Edit(order.ID, edit)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCompleteMovesOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	svc, _ := setupOrderService(t, now)

	order := validPendiente()
	require.NoError(t, svc.Create(order))

	delivery, err := svc.Complete(order.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, order.Empresa, delivery.Empresa)
	assert.Equal(t, order.Cantidad, delivery.Cantidad)

	// Delivery date defaults to today at day precision.
	assert.True(t, delivery.FechaEntrega.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)))

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	completed, err := svc.ListCompleted()
	require.NoError(t, err)
	require.Len(t, completed, 1)
}

func TestCompleteNotFound(t *testing.T) {
	svc, _ := setupOrderService(t, time.Now())

	_, err := svc.Complete(999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComputeAge(t *testing.T) {
	created := time.Date(2026, 8, 10, 14, 45, 0, 0, time.UTC)
	order := &models.PendingOrder{FechaCreacion: created}

	// Same day, time of day discarded.
	assert.Equal(t, 0, ComputeAge(order, time.Date(2026, 8, 10, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 10, ComputeAge(order, created.AddDate(0, 0, 10)))

	// Idempotent for a fixed today.
	today := created.AddDate(0, 0, 10)
	assert.Equal(t, ComputeAge(order, today), ComputeAge(order, today))

	// A creation date in the future reports a negative age, not clamped.
	assert.Equal(t, -3, ComputeAge(order, created.AddDate(0, 0, -3)))
}

func TestIsOverdue(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		estado  string
		ageDays int
		want    bool
	}{
		{"pending at threshold", "Pendiente", 7, true},
		{"pending past threshold", "Pendiente", 10, true},
		{"pending below threshold", "Pendiente", 6, false},
		{"lowercase estado still counts", "pendiente", 10, true},
		{"completed never overdue", "Completada", 10, false},
		{"in process never overdue", "En Proceso", 10, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := &models.PendingOrder{FechaCreacion: created, Estado: tc.estado}
			today := created.AddDate(0, 0, tc.ageDays)
			assert.Equal(t, tc.want, IsOverdue(order, today))
		})
	}
}

func TestListPendingDecoratesAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc, db := setupOrderService(t, now)

	fresh := validPendiente()
	fresh.FechaCreacion = now.AddDate(0, 0, -2)
	stale := validPendiente()
	stale.Empresa = "Zeta"
	stale.FechaCreacion = now.AddDate(0, 0, -9)
	require.NoError(t, db.Create(fresh).Error)
	require.NoError(t, db.Create(stale).Error)

	orders, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, orders, 2)

	byEmpresa := map[string]models.PendingOrder{}
	for _, o := range orders {
		byEmpresa[o.Empresa] = o
	}
	assert.Equal(t, 2, byEmpresa["Acme Corp"].EdadDias)
	assert.False(t, byEmpresa["Acme Corp"].Atrasado)
	assert.Equal(t, 9, byEmpresa["Zeta"].EdadDias)
	assert.True(t, byEmpresa["Zeta"].Atrasado)
}
