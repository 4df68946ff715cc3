package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/udistrital/gestion_proyectos/models"

	_ "github.com/jackc/pgx/v5/stdlib" // driver "pgx"
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

// SQLStore guarda cada colección como un blob JSON en la tabla coleccion,
// una fila por colección, reescribiendo todas en una transacción.
type SQLStore struct {
	db     *sql.DB
	driver Driver
	upsert string
}

// NuevoSQLite abre (o crea) la base SQLite en path.
func NuevoSQLite(path string) (*SQLStore, error) {
	if path == "" {
		path = "datos.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return nuevoSQL(db, DriverSQLite,
		`CREATE TABLE IF NOT EXISTS coleccion (
			nombre TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`,
		`INSERT INTO coleccion(nombre,payload) VALUES(?,?) ON CONFLICT(nombre) DO UPDATE SET payload=excluded.payload`)
}

// NuevoPostgres se conecta con el DSN dado mediante pgx.
func NuevoPostgres(dsn string) (*SQLStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn requerido")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return nuevoSQL(db, DriverPostgres,
		`CREATE TABLE IF NOT EXISTS coleccion (
			nombre TEXT PRIMARY KEY,
			payload BYTEA NOT NULL
		)`,
		`INSERT INTO coleccion(nombre,payload) VALUES($1,$2) ON CONFLICT(nombre) DO UPDATE SET payload=excluded.payload`)
}

func nuevoSQL(db *sql.DB, driver Driver, ddl, upsert string) (*SQLStore, error) {
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create coleccion table: %w", err)
	}
	return &SQLStore{db: db, driver: driver, upsert: upsert}, nil
}

func (s *SQLStore) Driver() Driver { return s.driver }

// DB expone la conexión para pruebas.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) Load(ctx context.Context) (*models.Datos, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT nombre, payload FROM coleccion`)
	if err != nil {
		return nil, fallo(s.driver, "select", err)
	}
	defer func() { _ = rows.Close() }()
	datos := models.NuevosDatos()
	for rows.Next() {
		var (
			nombre  string
			payload []byte
		)
		if err := rows.Scan(&nombre, &payload); err != nil {
			return nil, fallo(s.driver, "scan", err)
		}
		if err := datos.CargarColeccion(nombre, payload); err != nil {
			return nil, fallo(s.driver, "decode "+nombre, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fallo(s.driver, "select", err)
	}
	datos.Normalizar()
	return datos, nil
}

func (s *SQLStore) Save(ctx context.Context, datos *models.Datos) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fallo(s.driver, "begin", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, nombre := range models.Colecciones {
		payload, _, err := datos.Coleccion(nombre)
		if err != nil {
			return fallo(s.driver, "encode "+nombre, err)
		}
		if _, err := tx.ExecContext(ctx, s.upsert, nombre, payload); err != nil {
			return fallo(s.driver, "upsert "+nombre, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fallo(s.driver, "commit", err)
	}
	return nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
