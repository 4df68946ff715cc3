package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/udistrital/gestion_proyectos/models"
)

func TestSQLiteGuardaYRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.db")
	store, err := NuevoSQLite(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	datos := models.NuevosDatos()
	datos.Proyectos = append(datos.Proyectos, models.Proyecto{ID: 1, Nombre: models.ValorTexto("A")})
	datos.Usuarios = append(datos.Usuarios, models.Usuario{ID: 1, Dni: models.Valor(`123`), Nombre: models.ValorTexto("U")})
	if err := store.Save(context.Background(), datos); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded, err := NuevoSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reloaded.Close() })
	back, err := reloaded.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back.Proyectos) != 1 || string(back.Proyectos[0].Nombre) != `"A"` {
		t.Fatalf("proyectos: %+v", back.Proyectos)
	}
	if clave, ok := back.Usuarios[0].Clave(); !ok || clave != 123 {
		t.Fatalf("usuario: %+v", back.Usuarios[0])
	}
	var filas int
	if err := reloaded.DB().QueryRow(`SELECT COUNT(*) FROM coleccion`).Scan(&filas); err != nil {
		t.Fatalf("count: %v", err)
	}
	if filas != len(models.Colecciones) {
		t.Fatalf("expected %d filas, got %d", len(models.Colecciones), filas)
	}
}

func TestSQLiteVacioDevuelveConjuntoVacio(t *testing.T) {
	store, err := NuevoSQLite(filepath.Join(t.TempDir(), "vacio.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	datos, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if datos.Tareas == nil || len(datos.Tareas) != 0 {
		t.Fatalf("expected tareas vacías, got %#v", datos.Tareas)
	}
}

func TestPostgresGuardaYRecarga(t *testing.T) {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN no definido")
	}
	store, err := NuevoPostgres(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	datos := models.NuevosDatos()
	datos.Administradores = append(datos.Administradores, models.Administrador{NroAdministrador: 1, Nombre: models.ValorTexto("root")})
	if err := store.Save(context.Background(), datos); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back.Administradores) != 1 || string(back.Administradores[0].Nombre) != `"root"` {
		t.Fatalf("administradores: %+v", back.Administradores)
	}
}

func TestPostgresSinDSN(t *testing.T) {
	if _, err := NuevoPostgres(""); err == nil {
		t.Fatalf("expected error sin dsn")
	}
}
