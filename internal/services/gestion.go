package services

import (
	"sync"

	"github.com/udistrital/gestion_proyectos/internal/eventos"
	"github.com/udistrital/gestion_proyectos/internal/storage"
	"github.com/udistrital/gestion_proyectos/models"
)

// Gestion agrupa los recursos del servicio sobre un mismo almacén.
type Gestion struct {
	Proyectos       *Recurso[models.Proyecto, *models.Proyecto]
	Tareas          *Recurso[models.Tarea, *models.Tarea]
	Usuarios        *Recurso[models.Usuario, *models.Usuario]
	Administradores *Recurso[models.Administrador, *models.Administrador]
}

// NuevaGestion construye los cuatro recursos. publicador puede ser nil.
func NuevaGestion(almacen *storage.Almacen, publicador eventos.Publicador) *Gestion {
	if publicador == nil {
		publicador = eventos.Nulo{}
	}
	return &Gestion{
		Proyectos: &Recurso[models.Proyecto, *models.Proyecto]{
			coleccion:    models.ColeccionProyectos,
			parametro:    "nroProyecto",
			validarClave: true,
			noEncontrado: "Proyecto no encontrado.",
			actualizado:  "Proyecto actualizado",
			requeridos:   []string{"nombre", "descripcion"},
			lista:        func(d *models.Datos) *[]models.Proyecto { return &d.Proyectos },
			nuevo: func(l []models.Proyecto) models.Proyecto {
				return models.Proyecto{ID: siguiente(l, func(p models.Proyecto) int { return p.ID })}
			},
			almacen:    almacen,
			publicador: publicador,
		},
		Tareas: &Recurso[models.Tarea, *models.Tarea]{
			coleccion:    models.ColeccionTareas,
			parametro:    "nroTarea",
			noEncontrado: "Tarea no encontrada.",
			actualizado:  "Tarea actualizada",
			requeridos:   []string{"nombre", "descripcion", "proyectoId"},
			lista:        func(d *models.Datos) *[]models.Tarea { return &d.Tareas },
			nuevo: func(l []models.Tarea) models.Tarea {
				return models.Tarea{NroTarea: siguiente(l, func(t models.Tarea) int { return t.NroTarea })}
			},
			almacen:    almacen,
			publicador: publicador,
		},
		// El dni lo envía el cliente; solo id recibe consecutivo.
		Usuarios: &Recurso[models.Usuario, *models.Usuario]{
			coleccion:    models.ColeccionUsuarios,
			parametro:    "dni",
			noEncontrado: "Usuario no encontrado.",
			actualizado:  "Usuario actualizado",
			requeridos:   []string{"nombre", "email"},
			lista:        func(d *models.Datos) *[]models.Usuario { return &d.Usuarios },
			nuevo: func(l []models.Usuario) models.Usuario {
				return models.Usuario{ID: siguiente(l, func(u models.Usuario) int { return u.ID })}
			},
			almacen:    almacen,
			publicador: publicador,
		},
		Administradores: &Recurso[models.Administrador, *models.Administrador]{
			coleccion:    models.ColeccionAdministradores,
			parametro:    "nroAdministrador",
			noEncontrado: "Administrador no encontrado.",
			actualizado:  "Administrador actualizado",
			requeridos:   []string{"nombre", "email"},
			lista:        func(d *models.Datos) *[]models.Administrador { return &d.Administradores },
			nuevo: func(l []models.Administrador) models.Administrador {
				return models.Administrador{NroAdministrador: siguiente(l, func(a models.Administrador) int { return a.NroAdministrador })}
			},
			almacen:    almacen,
			publicador: publicador,
		},
	}
}

var (
	actual   *Gestion
	actualMu sync.RWMutex
)

// Configurar fija la Gestion que usan los controladores.
func Configurar(g *Gestion) {
	actualMu.Lock()
	defer actualMu.Unlock()
	actual = g
}

// Actual devuelve la Gestion configurada. Entra en pánico si no hay ninguna.
func Actual() *Gestion {
	actualMu.RLock()
	defer actualMu.RUnlock()
	if actual == nil {
		panic("services: gestión no configurada")
	}
	return actual
}
