package storage

import (
	"context"
	"sync"

	"github.com/udistrital/gestion_proyectos/models"
)

// MemoriaStore conserva una copia del conjunto de datos en el proceso.
type MemoriaStore struct {
	mu    sync.Mutex
	datos *models.Datos
}

func NuevaMemoria() *MemoriaStore {
	return &MemoriaStore{datos: models.NuevosDatos()}
}

func (s *MemoriaStore) Driver() Driver { return DriverMemoria }

func (s *MemoriaStore) Load(_ context.Context) (*models.Datos, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.datos.Clonar(), nil
}

func (s *MemoriaStore) Save(_ context.Context, datos *models.Datos) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = datos.Clonar()
	return nil
}

func (s *MemoriaStore) Close() error { return nil }
