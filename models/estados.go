package models

// Valores posibles del campo estado. El primer cambio de estado de cada
// entidad lleva al valor marcado como "primero"; antes de eso el campo no
// existe y la entidad se considera en su valor implícito.
const (
	ProyectoIncompleto = "Incompleto"
	ProyectoCompletado = "Completado"

	TareaSinCompletar = "Sin completar"
	TareaCompletada   = "Completada"

	UsuarioActivo   = "Activo"
	UsuarioInactivo = "Inactivo"

	AdministradorActivo   = "Activo"
	AdministradorInactivo = "Inactivo"
)
