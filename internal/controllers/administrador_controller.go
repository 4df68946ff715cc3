package controllers

import internalservices "github.com/udistrital/gestion_proyectos/internal/services"

// AdministradorController expone la colección de administradores.
type AdministradorController struct {
	RecursoController
}

// Prepare enlaza el controlador con el recurso de administradores.
// @Summary Administradores
// @Description Listar, buscar, crear, actualizar y alternar el estado (Inactivo/Activo).
// @Tags Administradores
// @Accept json
// @Produce json
// @Param nroAdministrador path int true "número de administrador"
// @Success 200 {object} models.Administrador
// @Success 201 {object} models.Administrador
// @Failure 400 {object} requestresponse.ErrorDTO
// @Failure 404 {string} string "Administrador no encontrado."
func (c *AdministradorController) Prepare() {
	c.usar(internalservices.Actual().Administradores, "nroAdministrador")
}
