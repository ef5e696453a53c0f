package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	apphttp "github.com/jhoicas/autogestion/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testEmail    = "ana@autogestion.pe"
	testPassword = "Segura#2024"
)

// fakeAPI backend simulado bajo /api/v1.
type fakeAPI struct {
	mu        sync.Mutex
	roles     []string
	profile   int
	block     chan struct{}
	loginHits int
	routes    map[string]http.HandlerFunc
	hits      map[string]int
}

func newFakeAPI(roles ...string) *fakeAPI {
	return &fakeAPI{roles: roles, profile: http.StatusOK, routes: map[string]http.HandlerFunc{}, hits: map[string]int{}}
}

func (f *fakeAPI) on(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

func (f *fakeAPI) setProfileStatus(status int) {
	f.mu.Lock()
	f.profile = status
	f.mu.Unlock()
}

func (f *fakeAPI) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[method+" "+path]
}

func (f *fakeAPI) user() string {
	roles := `"` + strings.Join(f.roles, `","`) + `"`
	if len(f.roles) == 0 {
		roles = ""
	}
	return `{"message":"ok","user":{"id":1,"email":"` + testEmail + `","username":"ana","isActive":true,"roles":[` + roles + `]}}`
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	f.mu.Lock()
	f.hits[r.Method+" "+path]++
	block, status, h := f.block, f.profile, f.routes[r.Method+" "+path]
	f.mu.Unlock()

	switch path {
	case "/auth/profile":
		if block != nil {
			<-block
		}
		if _, err := r.Cookie("token"); err != nil || status == http.StatusUnauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(f.user()))
		return
	case "/auth/login":
		f.mu.Lock()
		f.loginHits++
		f.mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "x", Path: "/"})
		_, _ = w.Write([]byte(f.user()))
		return
	}
	if h != nil {
		h(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(body)) }
}

func reject(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		if message != "" {
			_, _ = w.Write([]byte(`{"message":"` + message + `"}`))
		}
	}
}

// buildTestApp arma el panel completo contra el backend simulado.
func buildTestApp(t *testing.T, api *fakeAPI) (*fiber.App, *workspace.Registry) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	reg := workspace.NewRegistry(workspace.Options{BaseURL: srv.URL + "/api/v1"}, workspace.RegistryConfig{TTL: time.Minute}, nil)
	t.Cleanup(reg.Flush)

	pages, err := apphttp.NewPagesHandler("AutoGestión", nil, nil)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Registry: reg, Pages: pages, WorkspaceTTL: time.Minute})
	return app, reg
}

func waitReady(t *testing.T, w *workspace.Workspace) {
	t.Helper()
	select {
	case <-w.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("la verificación de sesión no terminó")
	}
}

// anonymous espacio de trabajo con la verificación inicial resuelta sin sesión.
func anonymous(t *testing.T, reg *workspace.Registry) *workspace.Workspace {
	t.Helper()
	w, err := reg.Create()
	require.NoError(t, err)
	waitReady(t, w)
	return w
}

// loggedIn espacio de trabajo con sesión iniciada.
func loggedIn(t *testing.T, reg *workspace.Registry) *workspace.Workspace {
	t.Helper()
	w := anonymous(t, reg)
	require.NoError(t, w.Session.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword}))
	return w
}

func do(t *testing.T, app *fiber.App, req *http.Request, w *workspace.Workspace) (*http.Response, string) {
	t.Helper()
	if w != nil {
		req.AddCookie(&http.Cookie{Name: apphttp.WorkspaceCookie, Value: w.ID})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func get(t *testing.T, app *fiber.App, path string, w *workspace.Workspace) (*http.Response, string) {
	return do(t, app, httptest.NewRequest(http.MethodGet, path, nil), w)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, w *workspace.Workspace) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, app, req, w)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gate de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestGate_VerificandoMuestraPlaceholderSinRedirigir(t *testing.T) {
	api := newFakeAPI("admin")
	api.block = make(chan struct{})
	app, reg := buildTestApp(t, api)
	t.Cleanup(func() { close(api.block) })

	w, err := reg.Create()
	require.NoError(t, err)

	for _, path := range []string{"/dashboard", "/dashboard/usuarios"} {
		resp, body := get(t, app, path, w)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Empty(t, resp.Header.Get("Location"), path)
		assert.Equal(t, "1", resp.Header.Get("Refresh"))
		assert.Contains(t, body, "Verificando sesión")
	}
}

func TestGate_AnonimoRedirigeALoginConOrigen(t *testing.T) {
	api := newFakeAPI()
	app, reg := buildTestApp(t, api)
	w := anonymous(t, reg)

	resp, _ := get(t, app, "/dashboard/clientes?editar=3", w)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?from="+url.QueryEscape("/dashboard/clientes?editar=3"), resp.Header.Get("Location"))
}

func TestGate_SinRolRedirigeAForbidden(t *testing.T) {
	api := newFakeAPI("user")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	for _, path := range []string{"/dashboard/usuarios", "/dashboard/empleados"} {
		resp, _ := get(t, app, path, w)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/forbidden", resp.Header.Get("Location"), "no es un problema de sesión: %s", path)
	}
	assert.Zero(t, api.count(http.MethodGet, "/admin/get-users"), "no se consulta nada sin permiso")
}

func TestGate_AdminAccedeConRolPrefijado(t *testing.T) {
	api := newFakeAPI("admin")
	api.on(http.MethodGet, "/admin/get-users", reply(`{"data":[{"id":1,"username":"ana","email":"ana@autogestion.pe","isActive":true,"roles":[{"name":"admin"}]}]}`))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/dashboard/usuarios", w)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ana@autogestion.pe")
}

func TestGate_PerfilRevocadoRedirigeALogin(t *testing.T) {
	api := newFakeAPI("admin")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	api.setProfileStatus(http.StatusUnauthorized)
	resp, _ := get(t, app, "/dashboard", w)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?from="+url.QueryEscape("/dashboard"), resp.Header.Get("Location"))
	st := w.Session.Snapshot()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.Identity)
}

func TestSidebar_OcultaEntradasDeAdministracion(t *testing.T) {
	api := newFakeAPI("user")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/dashboard", w)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `href="/dashboard/vehiculos"`)
	assert.NotContains(t, body, `href="/dashboard/usuarios"`)
	assert.NotContains(t, body, `href="/dashboard/empleados"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ValidaAntesDeLlamarAlBackend(t *testing.T) {
	api := newFakeAPI()
	app, reg := buildTestApp(t, api)
	w := anonymous(t, reg)

	resp, body := postForm(t, app, "/login", url.Values{"email": {testEmail}, "password": {"corta"}}, w)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "La contraseña no es válida")
	assert.Zero(t, api.loginHits)
}

func TestLogin_VuelveAlOrigenSeguro(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"ruta local", "/dashboard/clientes?editar=3", "/dashboard/clientes?editar=3"},
		{"sin origen", "", "/dashboard"},
		{"otro dominio", "//evil.example", "/dashboard"},
		{"url absoluta", "https://evil.example", "/dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI("user")
			app, reg := buildTestApp(t, api)
			w := anonymous(t, reg)

			resp, _ := postForm(t, app, "/login", url.Values{
				"email": {testEmail}, "password": {testPassword}, "from": {tt.from},
			}, w)

			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, tt.want, resp.Header.Get("Location"))
			assert.True(t, w.Session.Snapshot().IsAuthenticated)
		})
	}
}

func TestLogin_CreaEspacioDeTrabajo(t *testing.T) {
	app, _ := buildTestApp(t, newFakeAPI())

	resp, _ := get(t, app, "/login", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.WorkspaceCookie {
			found = true
			assert.NotEmpty(t, c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "debe fijarse la cookie del espacio de trabajo")
}

func TestLogout_LimpiaAunqueElBackendFalle(t *testing.T) {
	api := newFakeAPI("admin")
	api.on(http.MethodPost, "/auth/logout", reject(http.StatusInternalServerError, ""))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := postForm(t, app, "/logout", url.Values{}, w)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	st := w.Session.Snapshot()
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formularios de entidades
// ──────────────────────────────────────────────────────────────────────────────

func clienteForm() url.Values {
	return url.Values{"contacto_id": {"5"}, "notas_cliente": {"Cliente VIP"}, "activo": {"true"}}
}

func TestCrearCliente_FalloMantieneFormularioAbierto(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodPost, "/client", reject(http.StatusConflict, "El contacto ya es cliente"))
	api.on(http.MethodGet, "/contact", reply(`{"data":[{"id":5,"nombre_completo":"Luis Paz"}]}`))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := postForm(t, app, "/dashboard/clientes", clienteForm(), w)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, `class="dialog"`)
	assert.Contains(t, body, `<p class="form-error">El contacto ya es cliente</p>`)
	assert.Contains(t, body, "Cliente VIP", "se conserva lo escrito")
	assert.Equal(t, "El contacto ya es cliente", w.Clientes.Snapshot().Error)
}

func TestCrearCliente_ExitoRedirigeYNotifica(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodPost, "/client", reply(`{"data":[{"id":9,"notas_cliente":"Cliente VIP","activo":true,"contacto":{"nombre_completo":"Luis Paz"}}]}`))
	api.on(http.MethodGet, "/client", reply(`{"data":[{"id":9,"notas_cliente":"Cliente VIP","activo":true,"contacto":{"nombre_completo":"Luis Paz"}}]}`))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := postForm(t, app, "/dashboard/clientes", clienteForm(), w)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/clientes", resp.Header.Get("Location"))

	_, body := get(t, app, "/dashboard/clientes", w)
	assert.Contains(t, body, "Cliente registrado exitosamente")
	assert.Contains(t, body, "Luis Paz")
}

func TestCrearCliente_ValidacionNoLlamaAlBackend(t *testing.T) {
	api := newFakeAPI("user")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := postForm(t, app, "/dashboard/clientes", url.Values{"notas_cliente": {"sin contacto"}}, w)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Campo requerido")
	assert.Zero(t, api.count(http.MethodPost, "/client"))
}

func TestCrearCliente_SesionRevocadaRedirige(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodPost, "/client", reject(http.StatusUnauthorized, ""))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := postForm(t, app, "/dashboard/clientes", clienteForm(), w)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?from="+url.QueryEscape("/dashboard/clientes"), resp.Header.Get("Location"))
	assert.False(t, w.Session.Snapshot().IsAuthenticated)
}

func TestMutacionCliente_SesionRevocadaVuelveAlListado(t *testing.T) {
	// El origen de un POST no se puede repetir con GET: se vuelve al listado.
	cases := []struct {
		name   string
		method string
		path   string
		post   string
	}{
		{"actualizar", http.MethodPut, "/client/7", "/dashboard/clientes/7"},
		{"eliminar", http.MethodDelete, "/client/9", "/dashboard/clientes/9/delete"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI("user")
			api.on(tc.method, tc.path, reject(http.StatusUnauthorized, ""))
			app, reg := buildTestApp(t, api)
			w := loggedIn(t, reg)

			resp, _ := postForm(t, app, tc.post, clienteForm(), w)

			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login?from="+url.QueryEscape("/dashboard/clientes"), resp.Header.Get("Location"))
			assert.False(t, w.Session.Snapshot().IsAuthenticated)
		})
	}
}

func TestListadoCliente_SesionRevocadaRedirige(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/client", reject(http.StatusUnauthorized, ""))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := get(t, app, "/dashboard/clientes", w)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?from="+url.QueryEscape("/dashboard/clientes"), resp.Header.Get("Location"))
	assert.False(t, w.Session.Snapshot().IsAuthenticated)
}

func TestVerCliente_SesionRevocadaRedirige(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/client", reply(`{"data":[]}`))
	api.on(http.MethodGet, "/client/7", reject(http.StatusUnauthorized, ""))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := get(t, app, "/dashboard/clientes?ver=7", w)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?from="+url.QueryEscape("/dashboard/clientes?ver=7"), resp.Header.Get("Location"))
}

func TestEditarCliente_PrecargaDesdeElBackend(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/client", reply(`{"data":[]}`))
	api.on(http.MethodGet, "/client/7", reply(`{"data":{"id":7,"contacto_id":5,"notas_cliente":"Paga al contado","activo":false}}`))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/dashboard/clientes?editar=7", w)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/dashboard/clientes/7"`)
	assert.Contains(t, body, "Paga al contado")
	assert.Equal(t, 1, api.count(http.MethodGet, "/client/7"))
}

func TestEditarUsuario_PrecargaDesdeElListado(t *testing.T) {
	api := newFakeAPI("admin")
	api.on(http.MethodGet, "/admin/get-users", reply(`{"data":[{"id":4,"username":"jperez","email":"jperez@autogestion.pe","roles":[{"name":"user"}]}]}`))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/dashboard/usuarios?editar=4", w)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/dashboard/usuarios/4"`)
	assert.Contains(t, body, `value="jperez"`)
}

func TestActualizarUsuario_SinCamposNoLlamaAlBackend(t *testing.T) {
	api := newFakeAPI("admin")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := postForm(t, app, "/dashboard/usuarios/4", url.Values{"username": {""}, "email": {""}}, w)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Debe proporcionar al menos un campo para actualizar")
	assert.Zero(t, api.count(http.MethodPut, "/admin/update-user/4"))
}

func TestEliminarCliente_FalloMuestraAviso(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodDelete, "/client/9", reject(http.StatusConflict, "El cliente tiene ventas asociadas"))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := postForm(t, app, "/dashboard/clientes/9/delete", url.Values{}, w)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "El cliente tiene ventas asociadas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vehículos
// ──────────────────────────────────────────────────────────────────────────────

const vehiculosJSON = `{"data":[{"id":3,"anio":2021,"vin":"1HGCM82633A004352","precio_base":"15000.50",
	"estado_inventario":"Disponible","modelo":{"id":1,"nombre":"Corolla","marca":{"id":2,"nombre":"Toyota"}}}]}`

func TestVehiculos_ListadoConResumen(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/vehicle", reply(vehiculosJSON))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/dashboard/vehiculos", w)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Toyota Corolla")
	assert.Contains(t, body, "1 unidades")
	assert.Contains(t, body, "15000.50")
}

func TestVehiculos_ValidacionDelAnio(t *testing.T) {
	api := newFakeAPI("user")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := postForm(t, app, "/dashboard/vehiculos", url.Values{"anio": {"1800"}, "vin": {"ABC"}}, w)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "El año debe estar entre 1900")
	assert.Zero(t, api.count(http.MethodPost, "/vehicle"))
}

func TestVehiculos_ExportaPDF(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/vehicle", reply(vehiculosJSON))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/dashboard/vehiculos/export.pdf", w)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "%PDF"))
}

func TestVehiculos_ExportSinDatosVuelveAlListado(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/vehicle", reject(http.StatusInternalServerError, ""))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := get(t, app, "/dashboard/vehiculos/export.pdf", w)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/vehiculos", resp.Header.Get("Location"))
}

func TestVehiculos_ExportSesionRevocadaRedirige(t *testing.T) {
	api := newFakeAPI("user")
	api.on(http.MethodGet, "/vehicle", reject(http.StatusUnauthorized, ""))
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, _ := get(t, app, "/dashboard/vehiculos/export.pdf", w)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/login?from="))
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, _ := buildTestApp(t, newFakeAPI())

	resp, body := get(t, app, "/health", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
	assert.Empty(t, resp.Cookies(), "health no crea espacios de trabajo")
}

func TestSessionJSON(t *testing.T) {
	api := newFakeAPI("admin")
	app, reg := buildTestApp(t, api)
	w := loggedIn(t, reg)

	resp, body := get(t, app, "/api/session", w)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"isAuthenticated":true`)
	assert.Contains(t, body, `"phase":"authenticated"`)
}
