package routers

import (
	"github.com/udistrital/gestion_proyectos/controllers/errorhandler"
	internalcontrollers "github.com/udistrital/gestion_proyectos/internal/controllers"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	beego.BConfig.CopyRequestBody = true
	beego.BConfig.WebConfig.AutoRender = false

	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/", &internalcontrollers.InicioController{}, "get:Get")

	beego.Router("/ListarProyectos", &internalcontrollers.ProyectoController{}, "get:Listar")
	beego.Router("/BuscarProyecto/:id", &internalcontrollers.ProyectoController{}, "get:Buscar")
	beego.Router("/ActualizarProyecto/:id", &internalcontrollers.ProyectoController{}, "put:Actualizar")
	beego.Router("/EstadoProyecto/:id", &internalcontrollers.ProyectoController{}, "delete:CambiarEstado")
	beego.Router("/SubirProyecto", &internalcontrollers.ProyectoController{}, "post:Subir")

	beego.Router("/ListarUsuarios", &internalcontrollers.UsuarioController{}, "get:Listar")
	beego.Router("/BuscarUsuario/:dni", &internalcontrollers.UsuarioController{}, "get:Buscar")
	beego.Router("/ActualizarUsuario/:dni", &internalcontrollers.UsuarioController{}, "put:Actualizar")
	beego.Router("/EstadoUsuario/:dni", &internalcontrollers.UsuarioController{}, "delete:CambiarEstado")
	beego.Router("/SubirUsuario", &internalcontrollers.UsuarioController{}, "post:Subir")

	beego.Router("/ListarTareas", &internalcontrollers.TareaController{}, "get:Listar")
	beego.Router("/BuscarTarea/:nroTarea", &internalcontrollers.TareaController{}, "get:Buscar")
	beego.Router("/ActualizarTarea/:nroTarea", &internalcontrollers.TareaController{}, "put:Actualizar")
	beego.Router("/EstadoTarea/:nroTarea", &internalcontrollers.TareaController{}, "delete:CambiarEstado")
	beego.Router("/SubirTarea", &internalcontrollers.TareaController{}, "post:Subir")

	beego.Router("/ListarAdministradores", &internalcontrollers.AdministradorController{}, "get:Listar")
	beego.Router("/BuscarAdministrador/:nroAdministrador", &internalcontrollers.AdministradorController{}, "get:Buscar")
	beego.Router("/ActualizarAdministrador/:nroAdministrador", &internalcontrollers.AdministradorController{}, "put:Actualizar")
	beego.Router("/EstadoAdministrador/:nroAdministrador", &internalcontrollers.AdministradorController{}, "delete:CambiarEstado")
	beego.Router("/SubirAdministrador", &internalcontrollers.AdministradorController{}, "post:Subir")

	beego.Handler("/metrics", promhttp.Handler())
}
