// Package seed carga fixtures YAML en el almacén.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/udistrital/gestion_proyectos/internal/storage"
	"github.com/udistrital/gestion_proyectos/models"

	"gopkg.in/yaml.v3"
)

// Resumen cuenta los registros agregados por colección.
type Resumen struct {
	Proyectos       int
	Tareas          int
	Usuarios        int
	Administradores int
}

// Decodificar interpreta un fixture YAML con la misma forma que el archivo
// de datos. Los campos desconocidos de cada registro se conservan.
func Decodificar(raw []byte) (*models.Datos, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if doc == nil {
		return models.NuevosDatos(), nil
	}
	// yaml.v3 produce mapas con claves string, así que el documento se
	// puede pasar por JSON y reutilizar la decodificación de los modelos.
	intermedio, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convertir fixture: %w", err)
	}
	datos := models.NuevosDatos()
	if err := json.Unmarshal(intermedio, datos); err != nil {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}
	return datos, nil
}

// Aplicar agrega (o reemplaza, si reemplazar es true) los registros del
// fixture en una sola modificación del almacén. Los registros sin
// identificador (o con 0) reciben el consecutivo siguiente al último
// registro, igual que al crearlos por el API.
func Aplicar(ctx context.Context, almacen *storage.Almacen, fixture *models.Datos, reemplazar bool) Resumen {
	fixture.Normalizar()
	resumen := Resumen{
		Proyectos:       len(fixture.Proyectos),
		Tareas:          len(fixture.Tareas),
		Usuarios:        len(fixture.Usuarios),
		Administradores: len(fixture.Administradores),
	}
	_ = almacen.Modificar(ctx, func(d *models.Datos) error {
		if reemplazar {
			*d = *models.NuevosDatos()
		}
		copia := fixture.Clonar()
		d.Proyectos = numerar(d.Proyectos, copia.Proyectos, func(p *models.Proyecto) *int { return &p.ID })
		d.Tareas = numerar(d.Tareas, copia.Tareas, func(t *models.Tarea) *int { return &t.NroTarea })
		d.Usuarios = numerar(d.Usuarios, copia.Usuarios, func(u *models.Usuario) *int { return &u.ID })
		d.Administradores = numerar(d.Administradores, copia.Administradores,
			func(a *models.Administrador) *int { return &a.NroAdministrador })
		return nil
	})
	return resumen
}

func numerar[T any](destino, nuevos []T, clave func(*T) *int) []T {
	for i := range nuevos {
		if c := clave(&nuevos[i]); *c == 0 {
			ultimo := 0
			if n := len(destino); n > 0 {
				ultimo = *clave(&destino[n-1])
			}
			*c = ultimo + 1
		}
		destino = append(destino, nuevos[i])
	}
	return destino
}
