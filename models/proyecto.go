package models

// Proyecto agrupa tareas. Se identifica por id, asignado al crearlo; el resto
// de los campos se guardan tal como los envía el cliente.
type Proyecto struct {
	ID          int    `json:"id"`
	Nombre      Valor  `json:"nombre,omitempty"`
	Descripcion Valor  `json:"descripcion,omitempty"`
	Estado      Valor  `json:"estado,omitempty"`
	Extras      Extras `json:"-"`
}

func (p Proyecto) MarshalJSON() ([]byte, error) {
	type plano Proyecto
	return codificarCampos(plano(p), p.Extras)
}

func (p *Proyecto) UnmarshalJSON(data []byte) error {
	return decodificarCampos(data, map[string]any{
		"id":          &p.ID,
		"nombre":      &p.Nombre,
		"descripcion": &p.Descripcion,
		"estado":      &p.Estado,
	}, &p.Extras)
}

// Clave devuelve el identificador del proyecto.
func (p Proyecto) Clave() (int, bool) { return p.ID, true }

// AlternarEstado pasa de Incompleto a Completado y viceversa.
func (p *Proyecto) AlternarEstado() {
	p.Estado = alternar(p.Estado, ProyectoIncompleto, ProyectoCompletado)
}

// Clonar devuelve una copia independiente del proyecto.
func (p Proyecto) Clonar() Proyecto {
	p.Nombre = p.Nombre.clonar()
	p.Descripcion = p.Descripcion.clonar()
	p.Estado = p.Estado.clonar()
	p.Extras = clonarExtras(p.Extras)
	return p
}
