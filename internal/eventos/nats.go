package eventos

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATS publica cada evento como JSON en su subject.
type NATS struct {
	conn *nats.Conn
}

// ConectarNATS abre la conexión con el servidor en url.
func ConectarNATS(url string) (*NATS, error) {
	nc, err := nats.Connect(url, nats.Name("gestion_proyectos"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATS{conn: nc}, nil
}

func (n *NATS) Publicar(evento Evento) error {
	data, err := json.Marshal(evento)
	if err != nil {
		publicados.WithLabelValues("error").Inc()
		return err
	}
	if err := n.conn.Publish(evento.Asunto(), data); err != nil {
		publicados.WithLabelValues("error").Inc()
		return err
	}
	publicados.WithLabelValues("ok").Inc()
	return nil
}

func (n *NATS) Cerrar() {
	if n.conn != nil {
		n.conn.Close()
	}
}
