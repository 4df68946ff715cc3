package controllers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/udistrital/gestion_proyectos/helpers"
	"github.com/udistrital/gestion_proyectos/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centraliza la construcción de respuestas estándar.
type BaseController struct {
	beego.Controller
}

// RespondJSON serializa data con el status indicado.
func (c *BaseController) RespondJSON(status int, data interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = data
	_ = c.ServeJSON()
}

// RespondMessage entrega {"message": ...}.
func (c *BaseController) RespondMessage(status int, message string) {
	c.RespondJSON(status, requestresponse.NewMessage(message))
}

// RespondText entrega un cuerpo en texto plano.
func (c *BaseController) RespondText(status int, message string) {
	c.Ctx.Output.Header("Content-Type", "text/plain; charset=utf-8")
	c.Ctx.Output.SetStatus(status)
	_ = c.Ctx.Output.Body([]byte(message))
}

// RespondError transforma cualquier error en la respuesta estándar.
func (c *BaseController) RespondError(err error) {
	appErr := helpers.AsAppError(err, "error inesperado")
	if appErr.Status >= http.StatusInternalServerError {
		logs.Error("%s %s: %v", c.Ctx.Request.Method, c.Ctx.Request.URL.Path, appErr)
	}
	if appErr.JSON {
		c.RespondJSON(appErr.Status, requestresponse.NewError(appErr.Message))
		return
	}
	c.RespondText(appErr.Status, appErr.Message)
}

// RequestBody devuelve el cuerpo crudo de la petición.
func (c *BaseController) RequestBody() ([]byte, error) {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return nil, err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}
	return raw, nil
}
