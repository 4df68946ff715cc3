package storage

import (
	"context"
	"fmt"
	"strings"
)

// Config reúne los parámetros de todos los backends; solo se usan los del
// driver elegido.
type Config struct {
	Driver      Driver
	Archivo     string
	SQLitePath  string
	PostgresDSN string
	S3          S3Config
	Mongo       MongoConfig
}

// Abrir construye el Store indicado por cfg.Driver (archivo por defecto).
func Abrir(ctx context.Context, cfg Config) (Store, error) {
	switch Driver(strings.ToLower(string(cfg.Driver))) {
	case "", DriverArchivo:
		return NuevoArchivo(cfg.Archivo), nil
	case DriverMemoria:
		return NuevaMemoria(), nil
	case DriverSQLite:
		return NuevoSQLite(cfg.SQLitePath)
	case DriverPostgres:
		return NuevoPostgres(cfg.PostgresDSN)
	case DriverS3:
		return NuevoS3(ctx, cfg.S3)
	case DriverMongo:
		return NuevoMongo(ctx, cfg.Mongo)
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
	}
}
