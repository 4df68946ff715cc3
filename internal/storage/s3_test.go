package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/udistrital/gestion_proyectos/models"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// bucketFalso atiende GetObject y PutObject en estilo path.
type bucketFalso struct {
	mu       sync.Mutex
	objetos  map[string][]byte
	fallaPut bool
}

func (b *bucketFalso) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		obj, ok := b.objetos[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(obj)
	case http.MethodPut:
		if b.fallaPut {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		b.objetos[r.URL.Path] = raw
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func nuevoS3Prueba(t *testing.T, b *bucketFalso) *S3Store {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		Credentials:                credentials.NewStaticCredentialsProvider("key", "secret", ""),
		BaseEndpoint:               aws.String(srv.URL),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})
	return NuevoS3ConCliente(client, "gestion", "")
}

func TestS3ObjetoInexistenteDevuelveVacio(t *testing.T) {
	store := nuevoS3Prueba(t, &bucketFalso{objetos: map[string][]byte{}})
	datos, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if datos.Proyectos == nil || len(datos.Proyectos) != 0 {
		t.Fatalf("expected vacío, got %#v", datos.Proyectos)
	}
}

func TestS3GuardaYRecarga(t *testing.T) {
	bucket := &bucketFalso{objetos: map[string][]byte{}}
	store := nuevoS3Prueba(t, bucket)
	datos := models.NuevosDatos()
	datos.Tareas = append(datos.Tareas, models.Tarea{NroTarea: 1, Nombre: models.ValorTexto("T"), ProyectoID: models.Valor(`"2"`)})
	if err := store.Save(context.Background(), datos); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := bucket.objetos["/gestion/datos.json"]; !ok {
		t.Fatalf("objeto no guardado en la clave por defecto: %v", bucket.objetos)
	}
	back, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back.Tareas) != 1 || string(back.Tareas[0].ProyectoID) != `"2"` {
		t.Fatalf("tareas: %+v", back.Tareas)
	}
}

func TestS3ErrorDeEscrituraEsStorageError(t *testing.T) {
	store := nuevoS3Prueba(t, &bucketFalso{objetos: map[string][]byte{}, fallaPut: true})
	err := store.Save(context.Background(), models.NuevosDatos())
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "put" || se.Driver != DriverS3 {
		t.Fatalf("expected StorageError put, got %v", err)
	}
}

func TestS3SinBucket(t *testing.T) {
	if _, err := NuevoS3(context.Background(), S3Config{}); err == nil {
		t.Fatalf("expected error sin bucket")
	}
}
