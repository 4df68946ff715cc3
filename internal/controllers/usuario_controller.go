package controllers

import internalservices "github.com/udistrital/gestion_proyectos/internal/services"

// UsuarioController expone la colección de usuarios, identificados por dni.
type UsuarioController struct {
	RecursoController
}

// Prepare enlaza el controlador con el recurso de usuarios.
// @Summary Usuarios
// @Description Listar, buscar, crear, actualizar y alternar el estado (Activo/Inactivo).
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param dni path int true "dni del usuario"
// @Success 200 {object} models.Usuario
// @Success 201 {object} models.Usuario
// @Failure 400 {object} requestresponse.ErrorDTO
// @Failure 404 {string} string "Usuario no encontrado."
func (c *UsuarioController) Prepare() {
	c.usar(internalservices.Actual().Usuarios, "dni")
}
