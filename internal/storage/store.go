// Package storage persiste el conjunto de datos completo del servicio. Cada
// backend implementa Store; Almacen agrega la política de tolerancia a fallos
// y la frontera de lectura-modificación-escritura.
package storage

import (
	"context"
	"fmt"

	"github.com/udistrital/gestion_proyectos/models"
)

// Driver identifica el backend de persistencia.
type Driver string

const (
	DriverArchivo  Driver = "file"
	DriverMemoria  Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverS3       Driver = "s3"
	DriverMongo    Driver = "mongo"
)

// Store lee y escribe el conjunto de datos completo. Load devuelve un
// conjunto vacío (sin error) cuando todavía no hay nada persistido.
type Store interface {
	Driver() Driver
	Load(ctx context.Context) (*models.Datos, error)
	Save(ctx context.Context, datos *models.Datos) error
	Close() error
}

// StorageError describe un fallo de lectura, decodificación o escritura.
type StorageError struct {
	Op     string
	Driver Driver
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("almacen %s: %s: %v", e.Driver, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func fallo(driver Driver, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Driver: driver, Err: err}
}
