package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/gestion_proyectos/controllers"
)

// Banner es el texto que se muestra en la raíz del servicio.
const Banner = "API de gestión de proyectos y tareas"

// InicioController atiende la raíz del servicio.
type InicioController struct {
	rootcontrollers.BaseController
}

// Get muestra el banner del servicio.
func (c *InicioController) Get() {
	c.RespondText(http.StatusOK, Banner)
}
