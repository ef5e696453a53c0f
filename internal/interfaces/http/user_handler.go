package http

import (
	"strings"

	"github.com/jhoicas/autogestion/internal/application/store"
	"github.com/jhoicas/autogestion/internal/application/workspace"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// usuariosPage /dashboard/usuarios (solo administradores). El backend no ofrece
// consulta por id: la edición se precarga desde el listado.
var usuariosPage = entityPage[entity.Usuario]{
	page:  "usuarios",
	title: "Usuarios",
	base:  "/dashboard/usuarios",
	roles: []string{RoleAdmin},
	coll:  func(w *workspace.Workspace) *store.Collection[entity.Usuario] { return w.Usuarios },
	key:   entity.Usuario.Key,
	values: func(u entity.Usuario) map[string]string {
		return map[string]string{
			"username": u.Username,
			"email":    u.Email,
			"role":     formRole(u),
		}
	},
}

// formRole rol del selector (user|admin) a partir de los roles del usuario.
func formRole(u entity.Usuario) string {
	for _, r := range u.Roles {
		if hasAdmin(r.Name) {
			return "admin"
		}
	}
	return "user"
}

func hasAdmin(name string) bool {
	return strings.EqualFold(strings.TrimPrefix(strings.ToUpper(name), "ROLE_"), "admin")
}
