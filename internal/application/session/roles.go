package session

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// rolePrefix convención del backend para los roles (ROLE_ADMIN).
const rolePrefix = "ROLE_"

// hasRole compara cada rol de la identidad con cada requerido, sin distinguir mayúsculas,
// tanto en su forma simple ("admin") como prefijada ("ROLE_ADMIN").
func hasRole(identity *entity.Identity, required []string) bool {
	if identity == nil || len(required) == 0 {
		return false
	}
	// Los Caser no se comparten entre goroutines.
	fold := cases.Fold()
	upper := cases.Upper(language.Und)

	wanted := make(map[string]struct{}, len(required))
	for _, q := range required {
		wanted[fold.String(q)] = struct{}{}
	}
	for _, r := range identity.Roles {
		if r == "" {
			continue
		}
		if _, ok := wanted[fold.String(r)]; ok {
			return true
		}
		if _, ok := wanted[fold.String(rolePrefix+upper.String(r))]; ok {
			return true
		}
	}
	return false
}
