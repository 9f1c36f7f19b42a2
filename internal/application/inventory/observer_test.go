package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-core/internal/application/inventory"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/pkg/logger"
)

func notifyArgs(stock, minimum int64) (*entity.Product, *entity.StockMovement) {
	p := testProduct("p1", "TEC-002", stock, minimum)
	return &p, &entity.StockMovement{
		ID:        "m1",
		ProductID: "p1",
		Type:      entity.MovementTypeEXIT,
		Quantity:  2,
		CreatedAt: time.Now(),
	}
}

func TestStockSubject_NotificaEnOrdenDeAttach(t *testing.T) {
	subject := inventory.NewStockSubject()
	var trail []string
	a := &recordingObserver{name: "a", trail: &trail}
	b := &recordingObserver{name: "b", trail: &trail}
	c := &recordingObserver{name: "c", trail: &trail}
	subject.Attach(a)
	subject.Attach(b)
	subject.Attach(c)

	p, m := notifyArgs(10, 5)
	warnings := subject.Notify(p, m)

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"a", "b", "c"}, trail)
}

func TestStockSubject_DetachQuitaElObserver(t *testing.T) {
	subject := inventory.NewStockSubject()
	var trail []string
	a := &recordingObserver{name: "a", trail: &trail}
	b := &recordingObserver{name: "b", trail: &trail}
	subject.Attach(a)
	subject.Attach(b)
	subject.Detach(a)

	p, m := notifyArgs(10, 5)
	subject.Notify(p, m)

	assert.Empty(t, a.calls, "un observer desacoplado no recibe notificaciones")
	require.Len(t, b.calls, 1)
	assert.Equal(t, []string{"b"}, trail)

	// Detach de algo que no está adjunto es un no-op.
	subject.Detach(a)
	subject.Notify(p, m)
	assert.Len(t, b.calls, 2)
}

func TestStockSubject_AislaFallasPorObserver(t *testing.T) {
	subject := inventory.NewStockSubject()
	bad := &failingObserver{}
	after := &recordingObserver{name: "after"}
	subject.Attach(bad)
	subject.Attach(panickingObserver{})
	subject.Attach(after)

	p, m := notifyArgs(10, 5)
	warnings := subject.Notify(p, m)

	assert.Len(t, warnings, 2, "error y panic cuentan como advertencias separadas")
	require.Len(t, after.calls, 1, "los observers posteriores al fallo se ejecutan igual")
}

func TestLowStockAlertObserver_SoloAlertaBajoElMinimo(t *testing.T) {
	var buf syncBuffer
	obs := inventory.NewLowStockAlertObserver(
		logger.NewWithWriter(logger.Config{Env: "production", Level: "warn"}, &buf),
	)

	// Por encima del mínimo: silencio.
	p, m := notifyArgs(20, 5)
	require.NoError(t, obs.Update(p, m))
	assert.Empty(t, buf.String())

	// En el mínimo exacto: alerta (stock <= mínimo).
	p, m = notifyArgs(5, 5)
	require.NoError(t, obs.Update(p, m))
	assert.Contains(t, buf.String(), "alerta de stock bajo")
	assert.Contains(t, buf.String(), "TEC-002")
}
