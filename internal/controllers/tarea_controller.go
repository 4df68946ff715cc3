package controllers

import internalservices "github.com/udistrital/gestion_proyectos/internal/services"

// TareaController expone la colección de tareas.
type TareaController struct {
	RecursoController
}

// Prepare enlaza el controlador con el recurso de tareas.
// @Summary Tareas
// @Description Listar, buscar, crear, actualizar y alternar el estado (Sin completar/Completada).
// @Tags Tareas
// @Accept json
// @Produce json
// @Param nroTarea path int true "número de tarea"
// @Success 200 {object} models.Tarea
// @Success 201 {object} models.Tarea
// @Failure 400 {object} requestresponse.ErrorDTO
// @Failure 404 {string} string "Tarea no encontrada."
func (c *TareaController) Prepare() {
	c.usar(internalservices.Actual().Tareas, "nroTarea")
}
