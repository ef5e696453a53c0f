package http

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry     *workspace.Registry
	Pages        *PagesHandler
	WorkspaceTTL time.Duration
	CookieSecure bool
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	h := deps.Pages

	// Infraestructura (sin espacio de trabajo)
	app.Get("/health", Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	web := app.Group("/", WorkspaceMiddleware(deps.Registry, deps.WorkspaceTTL, deps.CookieSecure))

	web.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/dashboard", fiber.StatusFound) })
	web.Get("/api/session", h.SessionJSON)

	// Auth (público)
	web.Get("/login", h.LoginPage)
	web.Post("/login", h.Login)
	web.Get("/signup", h.SignupPage)
	web.Post("/signup", h.Signup)
	web.Post("/logout", h.Logout)
	web.Get("/forbidden", h.Forbidden)

	// Panel (requiere sesión)
	dash := web.Group("/dashboard", h.RequireSession())
	dash.Get("/", h.Dashboard)

	clientes := dash.Group("/clientes")
	clientes.Get("/", listPage(h, clientesPage))
	clientes.Post("/", createForm[entity.Cliente, dto.CreateClientRequest](h, clientesPage))
	clientes.Post("/:id", updateForm[entity.Cliente, dto.UpdateClientRequest](h, clientesPage))
	clientes.Post("/:id/delete", deleteForm(h, clientesPage))

	proveedores := dash.Group("/proveedores")
	proveedores.Get("/", listPage(h, proveedoresPage))
	proveedores.Post("/", createForm[entity.Proveedor, dto.CreateSupplierRequest](h, proveedoresPage))
	proveedores.Post("/:id", updateForm[entity.Proveedor, dto.UpdateSupplierRequest](h, proveedoresPage))
	proveedores.Post("/:id/delete", deleteForm(h, proveedoresPage))

	vehiculos := dash.Group("/vehiculos")
	vehiculos.Get("/", listPage(h, vehiculosPage))
	vehiculos.Get("/export.pdf", h.ExportVehiculos)
	vehiculos.Post("/", createForm[entity.Vehiculo, dto.CreateVehicleRequest](h, vehiculosPage))
	vehiculos.Post("/:id/delete", deleteForm(h, vehiculosPage))

	// Administración (solo ROLE_ADMIN)
	empleados := dash.Group("/empleados", h.RequireSession(empleadosPage.roles...))
	empleados.Get("/", listPage(h, empleadosPage))
	empleados.Post("/", createForm[entity.Empleado, dto.CreateEmployeeRequest](h, empleadosPage))
	empleados.Post("/:id", updateForm[entity.Empleado, dto.UpdateEmployeeRequest](h, empleadosPage))
	empleados.Post("/:id/delete", deleteForm(h, empleadosPage))

	usuarios := dash.Group("/usuarios", h.RequireSession(usuariosPage.roles...))
	usuarios.Get("/", listPage(h, usuariosPage))
	usuarios.Post("/", createForm[entity.Usuario, dto.CreateUserRequest](h, usuariosPage))
	usuarios.Post("/:id", updateForm[entity.Usuario, dto.UpdateUserRequest](h, usuariosPage))
	usuarios.Post("/:id/delete", deleteForm(h, usuariosPage))
}
