package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/application/validation"
)

// authData datos de las páginas de login y registro.
type authData struct {
	Form formView
	From string
}

// LoginPage GET /login
func (h *PagesHandler) LoginPage(c *fiber.Ctx) error {
	from := c.Query("from")
	if st := GetWorkspace(c).Session.Snapshot(); !st.IsLoading && st.IsAuthenticated {
		return c.Redirect(safeFrom(from), fiber.StatusFound)
	}
	return h.r.render(c, fiber.StatusOK, "login", "Iniciar sesión", authData{
		Form: formView{Open: true, Action: "/login"},
		From: from,
	})
}

// Login POST /login. Las credenciales se validan antes de llamar al backend.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	from := c.FormValue("from")
	form := formView{Open: true, Action: "/login", Values: map[string]string{"email": c.FormValue("email")}}

	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		form.Error = "Formulario inválido"
		return h.r.render(c, fiber.StatusBadRequest, "login", "Iniciar sesión", authData{Form: form, From: from})
	}
	if err := validation.Validate(&in); err != nil {
		form.Errors = asErrors(err)
		return h.r.render(c, fiber.StatusUnprocessableEntity, "login", "Iniciar sesión", authData{Form: form, From: from})
	}
	if err := w.Session.Login(c.UserContext(), in); err != nil {
		form.Error = w.Session.Snapshot().Error
		return h.r.render(c, fiber.StatusUnauthorized, "login", "Iniciar sesión", authData{Form: form, From: from})
	}
	w.Session.ClearError()
	return c.Redirect(safeFrom(from), fiber.StatusSeeOther)
}

// SignupPage GET /signup
func (h *PagesHandler) SignupPage(c *fiber.Ctx) error {
	return h.r.render(c, fiber.StatusOK, "signup", "Crear cuenta", authData{
		Form: formView{Open: true, Action: "/signup"},
	})
}

// Signup POST /signup: registro seguido de login con las mismas credenciales.
func (h *PagesHandler) Signup(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	form := formView{Open: true, Action: "/signup", Values: map[string]string{
		"username": c.FormValue("username"),
		"email":    c.FormValue("email"),
	}}

	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		form.Error = "Formulario inválido"
		return h.r.render(c, fiber.StatusBadRequest, "signup", "Crear cuenta", authData{Form: form})
	}
	if err := validation.Validate(&in); err != nil {
		form.Errors = asErrors(err)
		return h.r.render(c, fiber.StatusUnprocessableEntity, "signup", "Crear cuenta", authData{Form: form})
	}
	if err := w.Session.Register(c.UserContext(), in); err != nil {
		form.Error = w.Session.Snapshot().Error
		return h.r.render(c, fiber.StatusUnprocessableEntity, "signup", "Crear cuenta", authData{Form: form})
	}
	w.Session.ClearError()
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout POST /logout. La sesión local se limpia aunque el backend falle.
func (h *PagesHandler) Logout(c *fiber.Ctx) error {
	GetWorkspace(c).Session.Logout(c.UserContext())
	return c.Redirect("/login", fiber.StatusSeeOther)
}
