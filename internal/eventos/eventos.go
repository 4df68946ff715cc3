// Package eventos publica los cambios sobre las colecciones para que otros
// servicios puedan reaccionar a ellos.
package eventos

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operaciones que generan eventos.
const (
	OperacionCreado      = "creado"
	OperacionActualizado = "actualizado"
	OperacionEstado      = "estado"
)

// Evento describe un cambio sobre un registro.
type Evento struct {
	Coleccion string    `json:"coleccion"`
	Operacion string    `json:"operacion"`
	Clave     int       `json:"clave"`
	Registro  any       `json:"registro,omitempty"`
	Fecha     time.Time `json:"fecha"`
}

// Asunto devuelve el subject con el que se publica el evento.
func (e Evento) Asunto() string {
	return fmt.Sprintf("gestion.%s.%s", e.Coleccion, e.Operacion)
}

// Publicador entrega eventos a un broker.
type Publicador interface {
	Publicar(evento Evento) error
	Cerrar()
}

// Nulo descarta todos los eventos.
type Nulo struct{}

func (Nulo) Publicar(Evento) error { return nil }
func (Nulo) Cerrar()               {}

var publicados = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "gestion_eventos_publicados_total",
	Help: "Eventos de cambio publicados por resultado.",
}, []string{"resultado"})

func init() {
	prometheus.MustRegister(publicados)
}
