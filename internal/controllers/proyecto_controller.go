package controllers

import internalservices "github.com/udistrital/gestion_proyectos/internal/services"

// ProyectoController expone la colección de proyectos.
type ProyectoController struct {
	RecursoController
}

// Prepare enlaza el controlador con el recurso de proyectos.
// @Summary Proyectos
// @Description Listar, buscar, crear, actualizar y alternar el estado (Incompleto/Completado).
// @Tags Proyectos
// @Accept json
// @Produce json
// @Param id path int true "id del proyecto"
// @Success 200 {object} models.Proyecto
// @Success 201 {object} models.Proyecto
// @Failure 400 {object} requestresponse.ErrorDTO
// @Failure 404 {string} string "Proyecto no encontrado."
func (c *ProyectoController) Prepare() {
	c.usar(internalservices.Actual().Proyectos, "id")
}
