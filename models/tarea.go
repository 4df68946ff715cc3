package models

// Tarea pertenece a un proyecto (proyectoId), aunque la referencia nunca se
// verifica contra los proyectos existentes.
type Tarea struct {
	NroTarea    int    `json:"nroTarea"`
	Nombre      Valor  `json:"nombre,omitempty"`
	Descripcion Valor  `json:"descripcion,omitempty"`
	ProyectoID  Valor  `json:"proyectoId,omitempty"`
	Estado      Valor  `json:"estado,omitempty"`
	Extras      Extras `json:"-"`
}

func (t Tarea) MarshalJSON() ([]byte, error) {
	type plano Tarea
	return codificarCampos(plano(t), t.Extras)
}

func (t *Tarea) UnmarshalJSON(data []byte) error {
	return decodificarCampos(data, map[string]any{
		"nroTarea":    &t.NroTarea,
		"nombre":      &t.Nombre,
		"descripcion": &t.Descripcion,
		"proyectoId":  &t.ProyectoID,
		"estado":      &t.Estado,
	}, &t.Extras)
}

func (t Tarea) Clave() (int, bool) { return t.NroTarea, true }

// AlternarEstado deja la tarea en Sin completar salvo que ya lo esté, en cuyo
// caso pasa a Completada.
func (t *Tarea) AlternarEstado() {
	t.Estado = alternar(t.Estado, TareaCompletada, TareaSinCompletar)
}

func (t Tarea) Clonar() Tarea {
	t.Nombre = t.Nombre.clonar()
	t.Descripcion = t.Descripcion.clonar()
	t.ProyectoID = t.ProyectoID.clonar()
	t.Estado = t.Estado.clonar()
	t.Extras = clonarExtras(t.Extras)
	return t
}
