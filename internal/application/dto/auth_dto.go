package dto

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// RegisterRequest alta de cuenta. ConfirmPassword solo vive en el formulario.
type RegisterRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=2,max=15"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,password"`
	ConfirmPassword string `json:"-" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// AuthResponse respuesta de /auth/login, /auth/register y /auth/profile.
type AuthResponse struct {
	Message string           `json:"message"`
	User    *entity.Identity `json:"user"`
}

// DecodeIdentity decodifica {message, user}; sin user es domain.ErrMalformedEnvelope.
func DecodeIdentity(raw []byte) (*entity.Identity, error) {
	var out AuthResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}
	if out.User == nil {
		return nil, fmt.Errorf("%w: falta el campo user", domain.ErrMalformedEnvelope)
	}
	if out.User.Roles == nil {
		out.User.Roles = []string{}
	}
	return out.User, nil
}
