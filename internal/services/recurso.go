package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/udistrital/gestion_proyectos/helpers"
	"github.com/udistrital/gestion_proyectos/internal/eventos"
	"github.com/udistrital/gestion_proyectos/internal/storage"
	"github.com/udistrital/gestion_proyectos/models"

	"github.com/beego/beego/v2/core/logs"
)

// entidad restringe los tipos que maneja un Recurso a punteros de registros
// con clave y estado alternable.
type entidad[T any] interface {
	*T
	Clave() (int, bool)
	AlternarEstado()
}

// Operaciones es la vista sin tipo de un Recurso que usan los controladores.
type Operaciones interface {
	Parametro() string
	MensajeActualizado() string
	Todos(ctx context.Context) any
	Uno(ctx context.Context, raw string) (any, error)
	Subir(ctx context.Context, body []byte) (any, error)
	Actualizar(ctx context.Context, raw string, body []byte) error
	CambiarEstado(ctx context.Context, raw string) error
}

// Recurso implementa el CRUD sobre una colección del conjunto de datos.
type Recurso[T any, PT entidad[T]] struct {
	coleccion    string
	parametro    string
	validarClave bool
	noEncontrado string
	actualizado  string
	requeridos   []string
	lista        func(*models.Datos) *[]T
	nuevo        func([]T) T

	almacen    *storage.Almacen
	publicador eventos.Publicador
}

var _ Operaciones = (*Recurso[models.Proyecto, *models.Proyecto])(nil)

func (r *Recurso[T, PT]) Parametro() string          { return r.parametro }
func (r *Recurso[T, PT]) MensajeActualizado() string { return r.actualizado }

// Listar devuelve la colección completa en el orden en que está guardada.
func (r *Recurso[T, PT]) Listar(ctx context.Context) []T {
	return *r.lista(r.almacen.Leer(ctx))
}

// Buscar devuelve el primer registro cuya clave coincide con raw.
func (r *Recurso[T, PT]) Buscar(ctx context.Context, raw string) (T, error) {
	var cero T
	clave, err := parsearEntero(raw)
	if r.validarClave && errors.Is(err, errNoNumerico) {
		return cero, helpers.Invalido(fmt.Sprintf("El parámetro %s debe ser un número.", r.parametro), err)
	}
	lista := *r.lista(r.almacen.Leer(ctx))
	i := r.indice(lista, clave, err == nil)
	if i < 0 {
		return cero, helpers.NoEncontrado(r.noEncontrado)
	}
	return lista[i], nil
}

// Crear valida los campos requeridos, asigna el consecutivo y agrega el
// registro. Los campos del cuerpo se aplican sobre el consecutivo.
func (r *Recurso[T, PT]) Crear(ctx context.Context, body []byte) (T, error) {
	var creado T
	campos, body, err := objetoCuerpo(body)
	if err != nil {
		return creado, helpers.Invalido("El cuerpo de la solicitud debe ser un objeto JSON.", err)
	}
	for _, campo := range r.requeridos {
		if !presente(campos[campo]) {
			return creado, helpers.CampoRequerido(campo)
		}
	}
	err = r.almacen.Modificar(ctx, func(d *models.Datos) error {
		lista := r.lista(d)
		nuevo := r.nuevo(*lista)
		if err := json.Unmarshal(body, PT(&nuevo)); err != nil {
			return helpers.Invalido("El cuerpo de la solicitud tiene campos inválidos.", err)
		}
		*lista = append(*lista, nuevo)
		creado = nuevo
		return nil
	})
	if err != nil {
		return creado, err
	}
	clave, _ := PT(&creado).Clave()
	r.publicar(eventos.OperacionCreado, clave, creado)
	return creado, nil
}

// Actualizar mezcla el cuerpo sobre el registro existente: los campos
// presentes reemplazan a los guardados y el resto se conserva.
func (r *Recurso[T, PT]) Actualizar(ctx context.Context, raw string, body []byte) error {
	clave, perr := parsearEntero(raw)
	var actualizado T
	err := r.almacen.Modificar(ctx, func(d *models.Datos) error {
		lista := *r.lista(d)
		i := r.indice(lista, clave, perr == nil)
		if i < 0 {
			return helpers.NoEncontrado(r.noEncontrado)
		}
		_, cuerpo, err := objetoCuerpo(body)
		if err != nil {
			return helpers.Invalido("El cuerpo de la solicitud debe ser un objeto JSON.", err)
		}
		if err := json.Unmarshal(cuerpo, PT(&lista[i])); err != nil {
			return helpers.Invalido("El cuerpo de la solicitud tiene campos inválidos.", err)
		}
		actualizado = lista[i]
		return nil
	})
	if err != nil {
		return err
	}
	r.publicar(eventos.OperacionActualizado, clave, actualizado)
	return nil
}

// CambiarEstado alterna el estado del registro.
func (r *Recurso[T, PT]) CambiarEstado(ctx context.Context, raw string) error {
	clave, perr := parsearEntero(raw)
	var cambiado T
	err := r.almacen.Modificar(ctx, func(d *models.Datos) error {
		lista := *r.lista(d)
		i := r.indice(lista, clave, perr == nil)
		if i < 0 {
			return helpers.NoEncontrado(r.noEncontrado)
		}
		PT(&lista[i]).AlternarEstado()
		cambiado = lista[i]
		return nil
	})
	if err != nil {
		return err
	}
	r.publicar(eventos.OperacionEstado, clave, cambiado)
	return nil
}

func (r *Recurso[T, PT]) Todos(ctx context.Context) any { return r.Listar(ctx) }

func (r *Recurso[T, PT]) Uno(ctx context.Context, raw string) (any, error) {
	return r.Buscar(ctx, raw)
}

func (r *Recurso[T, PT]) Subir(ctx context.Context, body []byte) (any, error) {
	return r.Crear(ctx, body)
}

func (r *Recurso[T, PT]) indice(lista []T, clave int, valida bool) int {
	if !valida {
		return -1
	}
	for i := range lista {
		if c, ok := PT(&lista[i]).Clave(); ok && c == clave {
			return i
		}
	}
	return -1
}

func (r *Recurso[T, PT]) publicar(operacion string, clave int, registro T) {
	if r.publicador == nil {
		return
	}
	evento := eventos.Evento{
		Coleccion: r.coleccion,
		Operacion: operacion,
		Clave:     clave,
		Registro:  registro,
		Fecha:     time.Now().UTC(),
	}
	if err := r.publicador.Publicar(evento); err != nil {
		logs.Warn("no se pudo publicar %s: %v", evento.Asunto(), err)
	}
}

// siguiente calcula el consecutivo a partir del último elemento.
func siguiente[T any](lista []T, clave func(T) int) int {
	if len(lista) == 0 {
		return 1
	}
	return clave(lista[len(lista)-1]) + 1
}
