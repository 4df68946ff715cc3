package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/udistrital/gestion_proyectos/models"
)

func TestArchivoInexistenteDevuelveVacio(t *testing.T) {
	s := NuevoArchivo(filepath.Join(t.TempDir(), "datos.json"))
	datos, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(datos.Proyectos) != 0 || datos.Proyectos == nil {
		t.Fatalf("expected colección vacía no nil, got %#v", datos.Proyectos)
	}
}

func TestArchivoGuardaYRecarga(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "sub", "datos.json")
	s := NuevoArchivo(ruta)
	datos := models.NuevosDatos()
	datos.Proyectos = append(datos.Proyectos, models.Proyecto{ID: 1, Nombre: models.ValorTexto("A"), Descripcion: models.ValorTexto("B")})
	if err := s.Save(context.Background(), datos); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(ruta)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"projects\"") {
		t.Fatalf("expected JSON indentado, got %s", raw)
	}
	back, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back.Proyectos) != 1 || string(back.Proyectos[0].Nombre) != `"A"` {
		t.Fatalf("recarga incorrecta: %+v", back.Proyectos)
	}
	entries, _ := os.ReadDir(filepath.Dir(ruta))
	if len(entries) != 1 {
		t.Fatalf("quedaron temporales: %v", entries)
	}
}

func TestArchivoCorruptoDevuelveStorageError(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "datos.json")
	if err := os.WriteFile(ruta, []byte("{no es json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := NuevoArchivo(ruta).Load(context.Background())
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Driver != DriverArchivo || se.Op != "decode" {
		t.Fatalf("unexpected error %+v", se)
	}
}

func TestArchivoGuardarEnDirectorioInvalido(t *testing.T) {
	dir := t.TempDir()
	bloqueo := filepath.Join(dir, "archivo")
	if err := os.WriteFile(bloqueo, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := NuevoArchivo(filepath.Join(bloqueo, "datos.json")).Save(context.Background(), models.NuevosDatos())
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}
