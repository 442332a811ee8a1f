package services

import (
	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the resolved employee record a session carries around.
type Identity struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

func (identity Identity) IsAdministrator() bool {
	return identity.Role == models.RoleAdministrator
}

type AuthService struct {
	gateway TableGateway
}

func NewAuthService(gateway TableGateway) *AuthService {
	return &AuthService{gateway: gateway}
}

// Authenticate resolves an (email, password) pair to an identity. The email
// match is the gateway's exact equality filter. Unknown emails, inactive
// accounts and hash mismatches all fail; bcrypt does the constant-time
// comparison against the stored salted hash.
func (service *AuthService) Authenticate(email string, password string) (Identity, error) {
	rows := service.gateway.Fetch(store.TableEmployees, map[string]any{"correo": email})
	if len(rows) == 0 {
		return Identity{}, ErrInvalidCredentials
	}

	employee := employeeFromRow(rows[0])
	if !employee.Active {
		return Identity{}, ErrInactiveAccount
	}
	if employee.PasswordHash == "" {
		return Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{
		ID:    employee.ID,
		Name:  employee.Name,
		Email: employee.Email,
		Role:  employee.Role,
	}, nil
}

// ResolveIdentity reloads an identity by employee id, re-checking the active
// flag so a deactivated account loses its live sessions.
func (service *AuthService) ResolveIdentity(employeeID uint) (Identity, error) {
	rows := service.gateway.Fetch(store.TableEmployees, map[string]any{"id_empleado": employeeID})
	if len(rows) == 0 {
		return Identity{}, ErrNotFound
	}
	employee := employeeFromRow(rows[0])
	if !employee.Active {
		return Identity{}, ErrInactiveAccount
	}
	return Identity{
		ID:    employee.ID,
		Name:  employee.Name,
		Email: employee.Email,
		Role:  employee.Role,
	}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
