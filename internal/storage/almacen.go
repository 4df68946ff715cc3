package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/udistrital/gestion_proyectos/models"

	"github.com/beego/beego/v2/core/logs"
)

// Almacen serializa el acceso a un Store. Las lecturas fallidas degradan a un
// conjunto vacío y las escrituras fallidas se registran y se descartan; en
// ambos casos el fallo se informa al observador en lugar de propagarse.
type Almacen struct {
	store      Store
	mu         sync.RWMutex
	timeout    time.Duration
	observador func(*StorageError)
}

// Opcion configura un Almacen.
type Opcion func(*Almacen)

// ConObservador recibe cada fallo de almacenamiento degradado.
func ConObservador(fn func(*StorageError)) Opcion {
	return func(a *Almacen) { a.observador = fn }
}

// ConTimeout limita la duración de cada carga o guardado.
func ConTimeout(d time.Duration) Opcion {
	return func(a *Almacen) { a.timeout = d }
}

// NuevoAlmacen envuelve store.
func NuevoAlmacen(store Store, opts ...Opcion) *Almacen {
	a := &Almacen{store: store}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Driver devuelve el backend subyacente.
func (a *Almacen) Driver() Driver { return a.store.Driver() }

// Leer carga el conjunto de datos. Nunca devuelve nil.
func (a *Almacen) Leer(ctx context.Context) *models.Datos {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cargar(ctx)
}

// Modificar carga, aplica fn y guarda como una sola unidad. Si fn falla no se
// guarda nada y se devuelve su error. Los fallos de guardado no se devuelven.
func (a *Almacen) Modificar(ctx context.Context, fn func(*models.Datos) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	datos := a.cargar(ctx)
	if err := fn(datos); err != nil {
		return err
	}
	a.guardar(ctx, datos)
	return nil
}

// Cerrar libera el backend.
func (a *Almacen) Cerrar() error { return a.store.Close() }

func (a *Almacen) cargar(ctx context.Context) *models.Datos {
	ctx, cancel := a.contexto(ctx)
	defer cancel()
	datos, err := a.store.Load(ctx)
	registrar("load", err)
	if err != nil {
		a.reportar("load", err)
		return models.NuevosDatos()
	}
	if datos == nil {
		return models.NuevosDatos()
	}
	datos.Normalizar()
	return datos
}

func (a *Almacen) guardar(ctx context.Context, datos *models.Datos) {
	ctx, cancel := a.contexto(ctx)
	defer cancel()
	err := a.store.Save(ctx, datos)
	registrar("save", err)
	if err != nil {
		a.reportar("save", err)
	}
}

func (a *Almacen) contexto(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *Almacen) reportar(op string, err error) {
	var se *StorageError
	if !errors.As(err, &se) {
		se = &StorageError{Op: op, Driver: a.store.Driver(), Err: err}
	}
	if op == "load" {
		logs.Error("Error al leer datos, se usa un conjunto vacío: %v", se)
	} else {
		logs.Error("Error al escribir datos: %v", se)
	}
	if a.observador != nil {
		a.observador(se)
	}
}
