package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/gestion_proyectos/controllers"
	"github.com/udistrital/gestion_proyectos/controllers/errorhandler"
	"github.com/udistrital/gestion_proyectos/helpers"
	internalservices "github.com/udistrital/gestion_proyectos/internal/services"
)

// RecursoController expone las cinco operaciones de una colección. Cada
// controlador concreto fija recurso y parametro en Prepare.
type RecursoController struct {
	rootcontrollers.BaseController
	recurso   internalservices.Operaciones
	parametro string
}

func (c *RecursoController) usar(recurso internalservices.Operaciones, parametro string) {
	c.recurso = recurso
	c.parametro = parametro
}

func (c *RecursoController) clave() string {
	return c.Ctx.Input.Param(":" + c.parametro)
}

// Listar devuelve la colección completa.
func (c *RecursoController) Listar() {
	defer errorhandler.HandlePanic(&c.Controller)
	c.RespondJSON(http.StatusOK, c.recurso.Todos(c.Ctx.Request.Context()))
}

// Buscar devuelve un registro por su clave.
func (c *RecursoController) Buscar() {
	defer errorhandler.HandlePanic(&c.Controller)
	registro, err := c.recurso.Uno(c.Ctx.Request.Context(), c.clave())
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondJSON(http.StatusOK, registro)
}

// Subir crea un registro a partir del cuerpo.
func (c *RecursoController) Subir() {
	defer errorhandler.HandlePanic(&c.Controller)
	body, err := c.RequestBody()
	if err != nil {
		c.RespondError(helpers.Invalido("No se pudo leer el cuerpo de la solicitud.", err))
		return
	}
	registro, err := c.recurso.Subir(c.Ctx.Request.Context(), body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondJSON(http.StatusCreated, registro)
}

// Actualizar mezcla el cuerpo sobre el registro indicado.
func (c *RecursoController) Actualizar() {
	defer errorhandler.HandlePanic(&c.Controller)
	body, err := c.RequestBody()
	if err != nil {
		c.RespondError(helpers.Invalido("No se pudo leer el cuerpo de la solicitud.", err))
		return
	}
	if err := c.recurso.Actualizar(c.Ctx.Request.Context(), c.clave(), body); err != nil {
		c.RespondError(err)
		return
	}
	c.RespondMessage(http.StatusOK, c.recurso.MensajeActualizado())
}

// CambiarEstado alterna el estado del registro indicado.
func (c *RecursoController) CambiarEstado() {
	defer errorhandler.HandlePanic(&c.Controller)
	if err := c.recurso.CambiarEstado(c.Ctx.Request.Context(), c.clave()); err != nil {
		c.RespondError(err)
		return
	}
	c.RespondMessage(http.StatusOK, "Estado cambiado")
}
