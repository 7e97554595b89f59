package authapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"talent-bridge-backend/models"
)

type RegisterRequest struct {
	Role        models.UserRole `json:"role"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Password    string          `json:"password"`
	CompanyName string          `json:"company_name"` // обязательно для работодателя
}

func (r RegisterRequest) Validate() error {
	if r.Role != models.EmployerRole && r.Role != models.RecruiterRole {
		return errors.New("недопустимая роль")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указан email")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль должен быть не короче 8 символов")
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("не указаны имя и фамилия")
	}
	if r.Role == models.EmployerRole && strings.TrimSpace(r.CompanyName) == "" {
		return errors.New("не указано название компании")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указан email")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh токен")
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ProfileView struct {
	ID          string          `json:"id"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	CompanyName string          `json:"company_name,omitempty"`
}
