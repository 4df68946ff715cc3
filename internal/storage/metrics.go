package storage

import "github.com/prometheus/client_golang/prometheus"

var operaciones = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "gestion_almacen_operaciones_total",
	Help: "Operaciones de carga y guardado del conjunto de datos por resultado.",
}, []string{"operacion", "resultado"})

func init() {
	prometheus.MustRegister(operaciones)
}

func registrar(op string, err error) {
	resultado := "ok"
	if err != nil {
		resultado = "error"
	}
	operaciones.WithLabelValues(op, resultado).Inc()
}
