package models

import "encoding/json"

// Nombres de las colecciones tal como se persisten.
const (
	ColeccionProyectos       = "projects"
	ColeccionTareas          = "tasks"
	ColeccionUsuarios        = "users"
	ColeccionAdministradores = "administrators"
)

// Colecciones enumera las colecciones del conjunto de datos en orden fijo.
var Colecciones = []string{
	ColeccionProyectos,
	ColeccionTareas,
	ColeccionUsuarios,
	ColeccionAdministradores,
}

// Datos es la unidad de persistencia: las cuatro colecciones completas.
type Datos struct {
	Proyectos       []Proyecto      `json:"projects"`
	Tareas          []Tarea         `json:"tasks"`
	Usuarios        []Usuario       `json:"users"`
	Administradores []Administrador `json:"administrators"`
}

// NuevosDatos construye un conjunto de datos vacío.
func NuevosDatos() *Datos {
	return &Datos{
		Proyectos:       []Proyecto{},
		Tareas:          []Tarea{},
		Usuarios:        []Usuario{},
		Administradores: []Administrador{},
	}
}

// Normalizar reemplaza colecciones nil por colecciones vacías para que se
// serialicen como [].
func (d *Datos) Normalizar() {
	if d.Proyectos == nil {
		d.Proyectos = []Proyecto{}
	}
	if d.Tareas == nil {
		d.Tareas = []Tarea{}
	}
	if d.Usuarios == nil {
		d.Usuarios = []Usuario{}
	}
	if d.Administradores == nil {
		d.Administradores = []Administrador{}
	}
}

func (d Datos) MarshalJSON() ([]byte, error) {
	type plano Datos
	d.Normalizar()
	return json.Marshal(plano(d))
}

// UnmarshalJSON acepta además las claves en español de los archivos
// generados por la versión anterior del servicio.
func (d *Datos) UnmarshalJSON(data []byte) error {
	var crudo struct {
		Proyectos       []Proyecto      `json:"projects"`
		Tareas          []Tarea         `json:"tasks"`
		Usuarios        []Usuario       `json:"users"`
		Administradores []Administrador `json:"administrators"`

		ProyectosLegado       []Proyecto      `json:"proyectos"`
		TareasLegado          []Tarea         `json:"tareas"`
		UsuariosLegado        []Usuario       `json:"usuarios"`
		AdministradoresLegado []Administrador `json:"administradores"`
	}
	if err := json.Unmarshal(data, &crudo); err != nil {
		return err
	}
	d.Proyectos = primeraNoNula(crudo.Proyectos, crudo.ProyectosLegado)
	d.Tareas = primeraNoNula(crudo.Tareas, crudo.TareasLegado)
	d.Usuarios = primeraNoNula(crudo.Usuarios, crudo.UsuariosLegado)
	d.Administradores = primeraNoNula(crudo.Administradores, crudo.AdministradoresLegado)
	d.Normalizar()
	return nil
}

// Clonar devuelve una copia profunda del conjunto de datos.
func (d *Datos) Clonar() *Datos {
	out := &Datos{
		Proyectos:       make([]Proyecto, 0, len(d.Proyectos)),
		Tareas:          make([]Tarea, 0, len(d.Tareas)),
		Usuarios:        make([]Usuario, 0, len(d.Usuarios)),
		Administradores: make([]Administrador, 0, len(d.Administradores)),
	}
	for _, p := range d.Proyectos {
		out.Proyectos = append(out.Proyectos, p.Clonar())
	}
	for _, t := range d.Tareas {
		out.Tareas = append(out.Tareas, t.Clonar())
	}
	for _, u := range d.Usuarios {
		out.Usuarios = append(out.Usuarios, u.Clonar())
	}
	for _, a := range d.Administradores {
		out.Administradores = append(out.Administradores, a.Clonar())
	}
	return out
}

// Coleccion serializa una colección individual por nombre. Devuelve false si
// el nombre no corresponde a ninguna colección.
func (d *Datos) Coleccion(nombre string) ([]byte, bool, error) {
	d.Normalizar()
	var v any
	switch nombre {
	case ColeccionProyectos:
		v = d.Proyectos
	case ColeccionTareas:
		v = d.Tareas
	case ColeccionUsuarios:
		v = d.Usuarios
	case ColeccionAdministradores:
		v = d.Administradores
	default:
		return nil, false, nil
	}
	b, err := json.Marshal(v)
	return b, true, err
}

// CargarColeccion decodifica payload en la colección indicada. Los nombres
// desconocidos se ignoran.
func (d *Datos) CargarColeccion(nombre string, payload []byte) error {
	switch nombre {
	case ColeccionProyectos:
		return decodificarEn(payload, &d.Proyectos)
	case ColeccionTareas:
		return decodificarEn(payload, &d.Tareas)
	case ColeccionUsuarios:
		return decodificarEn(payload, &d.Usuarios)
	case ColeccionAdministradores:
		return decodificarEn(payload, &d.Administradores)
	}
	return nil
}

// decodificarEn usa un slice nuevo: los elementos se decodifican con merge y
// no deben heredar valores del slice anterior.
func decodificarEn[T any](payload []byte, destino *[]T) error {
	var nuevos []T
	if err := json.Unmarshal(payload, &nuevos); err != nil {
		return err
	}
	*destino = nuevos
	return nil
}

func primeraNoNula[T any](actual, legado []T) []T {
	if actual != nil {
		return actual
	}
	return legado
}
