package inventory

import (
	"fmt"

	"github.com/tu-usuario/inventario-core/internal/domain/entity"
)

// StockObserver recibe cada movimiento registrado con éxito. Un error devuelto
// se aísla: no bloquea a los demás observers ni revierte el movimiento.
type StockObserver interface {
	Update(product *entity.Product, movement *entity.StockMovement) error
}

// StockSubject lista ordenada de observers notificados tras cada commit.
// Attach/Detach se llaman al cablear la aplicación; no son seguros frente a un
// Notify concurrente.
type StockSubject struct {
	observers []StockObserver
}

// NewStockSubject construye un subject sin observers.
func NewStockSubject() *StockSubject {
	return &StockSubject{}
}

// Attach agrega un observer al final de la lista.
func (s *StockSubject) Attach(o StockObserver) {
	s.observers = append(s.observers, o)
}

// Detach quita la primera aparición del observer, si está.
func (s *StockSubject) Detach(o StockObserver) {
	for i, obs := range s.observers {
		if obs == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify invoca Update de cada observer en orden de attach, de forma síncrona.
// Errores y panics se capturan por observer y se devuelven como advertencias;
// los observers restantes se ejecutan igual.
func (s *StockSubject) Notify(product *entity.Product, movement *entity.StockMovement) []error {
	var warnings []error
	for _, obs := range s.observers {
		if err := safeUpdate(obs, product, movement); err != nil {
			warnings = append(warnings, err)
		}
	}
	return warnings
}

func safeUpdate(o StockObserver, p *entity.Product, m *entity.StockMovement) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	return o.Update(p, m)
}
