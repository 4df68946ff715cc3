package routers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	internalcontrollers "github.com/udistrital/gestion_proyectos/internal/controllers"
	internalservices "github.com/udistrital/gestion_proyectos/internal/services"
	"github.com/udistrital/gestion_proyectos/internal/storage"

	beego "github.com/beego/beego/v2/server/web"
)

func nuevoServidor(t *testing.T) {
	t.Helper()
	almacen := storage.NuevoAlmacen(storage.NuevaMemoria())
	internalservices.Configurar(internalservices.NuevaGestion(almacen, nil))
}

func hacer(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	beego.BeeApp.Handlers.ServeHTTP(rec, req)
	return rec
}

func decodificar(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("respuesta no es JSON: %v: %s", err, rec.Body.String())
	}
	return out
}

func TestRaizMuestraBanner(t *testing.T) {
	nuevoServidor(t)
	rec := hacer(t, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK || rec.Body.String() != internalcontrollers.Banner {
		t.Fatalf("banner: %d %q", rec.Code, rec.Body.String())
	}
}

func TestRutaInexistente(t *testing.T) {
	nuevoServidor(t)
	rec := hacer(t, http.MethodGet, "/NoExiste", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEscenarioProyecto(t *testing.T) {
	nuevoServidor(t)

	rec := hacer(t, http.MethodPost, "/SubirProyecto", `{"nombre":"A","descripcion":"B"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("subir: %d %s", rec.Code, rec.Body.String())
	}
	creado := decodificar(t, rec)
	if creado["id"] != float64(1) || creado["nombre"] != "A" || creado["descripcion"] != "B" {
		t.Fatalf("creado: %v", creado)
	}
	if _, ok := creado["estado"]; ok {
		t.Fatalf("estado no debe existir antes del primer cambio: %v", creado)
	}

	rec = hacer(t, http.MethodDelete, "/EstadoProyecto/1", "")
	if rec.Code != http.StatusOK || decodificar(t, rec)["message"] != "Estado cambiado" {
		t.Fatalf("estado: %d %s", rec.Code, rec.Body.String())
	}
	if got := decodificar(t, hacer(t, http.MethodGet, "/BuscarProyecto/1", ""))["estado"]; got != "Completado" {
		t.Fatalf("expected Completado, got %v", got)
	}
	hacer(t, http.MethodDelete, "/EstadoProyecto/1", "")
	if got := decodificar(t, hacer(t, http.MethodGet, "/BuscarProyecto/1", ""))["estado"]; got != "Incompleto" {
		t.Fatalf("expected Incompleto, got %v", got)
	}

	rec = hacer(t, http.MethodPut, "/ActualizarProyecto/1", `{"descripcion":"C"}`)
	if rec.Code != http.StatusOK || decodificar(t, rec)["message"] != "Proyecto actualizado" {
		t.Fatalf("actualizar: %d %s", rec.Code, rec.Body.String())
	}
	p := decodificar(t, hacer(t, http.MethodGet, "/BuscarProyecto/1", ""))
	if p["nombre"] != "A" || p["descripcion"] != "C" || p["estado"] != "Incompleto" {
		t.Fatalf("proyecto tras actualizar: %v", p)
	}

	rec = hacer(t, http.MethodGet, "/BuscarProyecto/99", "")
	if rec.Code != http.StatusNotFound || rec.Body.String() != "Proyecto no encontrado." {
		t.Fatalf("buscar 99: %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected texto plano, got %q", ct)
	}

	rec = hacer(t, http.MethodGet, "/ListarProyectos", "")
	var lista []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &lista); err != nil || len(lista) != 1 {
		t.Fatalf("listar: %s %v", rec.Body.String(), err)
	}
}

func TestCampoRequeridoDevuelveJSON(t *testing.T) {
	nuevoServidor(t)
	rec := hacer(t, http.MethodPost, "/SubirProyecto", `{"descripcion":"B"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodificar(t, rec)["error"]; got != "El campo nombre es requerido." {
		t.Fatalf("error: %v", got)
	}
	rec = hacer(t, http.MethodGet, "/ListarProyectos", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("no debía crearse el proyecto: %s", rec.Body.String())
	}
}

func TestParametroNoNumerico(t *testing.T) {
	nuevoServidor(t)
	rec := hacer(t, http.MethodGet, "/BuscarProyecto/abc", "")
	if rec.Code != http.StatusBadRequest || rec.Body.String() != "El parámetro nroProyecto debe ser un número." {
		t.Fatalf("proyecto: %d %q", rec.Code, rec.Body.String())
	}
	rec = hacer(t, http.MethodGet, "/BuscarTarea/abc", "")
	if rec.Code != http.StatusNotFound || rec.Body.String() != "Tarea no encontrada." {
		t.Fatalf("tarea: %d %q", rec.Code, rec.Body.String())
	}
}

func TestEscenarioUsuarioPorDni(t *testing.T) {
	nuevoServidor(t)
	rec := hacer(t, http.MethodPost, "/SubirUsuario", `{"nombre":"Ana","email":"ana@x","dni":555}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("subir: %d %s", rec.Code, rec.Body.String())
	}
	if rec = hacer(t, http.MethodDelete, "/EstadoUsuario/555", ""); rec.Code != http.StatusOK {
		t.Fatalf("estado: %d %s", rec.Code, rec.Body.String())
	}
	u := decodificar(t, hacer(t, http.MethodGet, "/BuscarUsuario/555", ""))
	if u["estado"] != "Activo" || u["id"] != float64(1) {
		t.Fatalf("usuario: %v", u)
	}
	rec = hacer(t, http.MethodPut, "/ActualizarUsuario/1", `{"nombre":"Z"}`)
	if rec.Code != http.StatusNotFound || rec.Body.String() != "Usuario no encontrado." {
		t.Fatalf("actualizar por id: %d %q", rec.Code, rec.Body.String())
	}
}

func TestEscenarioTareaYAdministrador(t *testing.T) {
	nuevoServidor(t)
	rec := hacer(t, http.MethodPost, "/SubirTarea", `{"nombre":"T","descripcion":"D","proyectoId":1}`)
	if rec.Code != http.StatusCreated || decodificar(t, rec)["nroTarea"] != float64(1) {
		t.Fatalf("tarea: %d %s", rec.Code, rec.Body.String())
	}
	rec = hacer(t, http.MethodPut, "/ActualizarTarea/1", `{"nombre":"T2"}`)
	if rec.Code != http.StatusOK || decodificar(t, rec)["message"] != "Tarea actualizada" {
		t.Fatalf("actualizar tarea: %d %s", rec.Code, rec.Body.String())
	}
	rec = hacer(t, http.MethodPost, "/SubirAdministrador", `{"nombre":"Root","email":"r@x"}`)
	if rec.Code != http.StatusCreated || decodificar(t, rec)["nroAdministrador"] != float64(1) {
		t.Fatalf("administrador: %d %s", rec.Code, rec.Body.String())
	}
	hacer(t, http.MethodDelete, "/EstadoAdministrador/1", "")
	a := decodificar(t, hacer(t, http.MethodGet, "/BuscarAdministrador/1", ""))
	if a["estado"] != "Inactivo" {
		t.Fatalf("administrador: %v", a)
	}
}

func TestPrimerCambioDeTareaQuedaSinCompletar(t *testing.T) {
	nuevoServidor(t)
	hacer(t, http.MethodPost, "/SubirTarea", `{"nombre":"T","descripcion":"D","proyectoId":"7"}`)
	hacer(t, http.MethodDelete, "/EstadoTarea/1", "")
	tarea := decodificar(t, hacer(t, http.MethodGet, "/BuscarTarea/1", ""))
	if tarea["estado"] != "Sin completar" || tarea["proyectoId"] != "7" {
		t.Fatalf("tarea: %v", tarea)
	}
}
