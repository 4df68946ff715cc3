package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/udistrital/gestion_proyectos/models"
)

// ArchivoStore guarda el conjunto de datos en un archivo JSON legible,
// reescrito completo en cada guardado.
type ArchivoStore struct {
	ruta string
}

// NuevoArchivo construye el store sobre ruta (por defecto ./datos.json).
func NuevoArchivo(ruta string) *ArchivoStore {
	if ruta == "" {
		ruta = "datos.json"
	}
	return &ArchivoStore{ruta: ruta}
}

func (s *ArchivoStore) Driver() Driver { return DriverArchivo }

func (s *ArchivoStore) Load(_ context.Context) (*models.Datos, error) {
	raw, err := os.ReadFile(s.ruta)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.NuevosDatos(), nil
		}
		return nil, fallo(DriverArchivo, "read", err)
	}
	datos := models.NuevosDatos()
	if err := json.Unmarshal(raw, datos); err != nil {
		return nil, fallo(DriverArchivo, "decode", err)
	}
	return datos, nil
}

// Save escribe en un temporal del mismo directorio y lo renombra sobre el
// archivo final.
func (s *ArchivoStore) Save(_ context.Context, datos *models.Datos) error {
	raw, err := json.MarshalIndent(datos, "", "  ")
	if err != nil {
		return fallo(DriverArchivo, "encode", err)
	}
	dir := filepath.Dir(s.ruta)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fallo(DriverArchivo, "mkdir", err)
	}
	tmp, err := os.CreateTemp(dir, ".datos-*.tmp")
	if err != nil {
		return fallo(DriverArchivo, "write", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fallo(DriverArchivo, "write", err)
	}
	if err := tmp.Close(); err != nil {
		return fallo(DriverArchivo, "write", err)
	}
	if err := os.Rename(tmp.Name(), s.ruta); err != nil {
		return fallo(DriverArchivo, "write", fmt.Errorf("rename: %w", err))
	}
	return nil
}

func (s *ArchivoStore) Close() error { return nil }
