package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/security"
	"github.com/avelarde/avance/internal/store"
)

type SetupService struct {
	gateway TableGateway
}

func NewSetupService(gateway TableGateway) *SetupService {
	return &SetupService{gateway: gateway}
}

// EnsureAdministrator seeds the first administrator account when a writable
// backend has no employees at all. When no password is configured a random
// one is generated and returned so the operator can read it from the startup
// log exactly once.
func (service *SetupService) EnsureAdministrator(email string, name string, password string) (string, error) {
	if !service.gateway.Writable() {
		log.Printf("setup: %s backend is read-only, skipping administrator bootstrap", service.gateway.Backend())
		return "", nil
	}
	if rows := service.gateway.Fetch(store.TableEmployees, nil); len(rows) > 0 {
		return "", nil
	}
	if !validEmail(email) {
		return "", fmt.Errorf("%w: bootstrap admin email %q", ErrInvalidInput, email)
	}

	generated := ""
	if strings.TrimSpace(password) == "" {
		value, err := security.GeneratePassword()
		if err != nil {
			return "", fmt.Errorf("generate bootstrap password: %w", err)
		}
		password = value
		generated = value
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash bootstrap password: %w", err)
	}

	record := map[string]any{
		"nombre":        strings.TrimSpace(name),
		"correo":        strings.TrimSpace(email),
		"rol":           models.RoleAdministrator,
		"activo":        true,
		"password_hash": passwordHash,
	}
	if !service.gateway.Insert(store.TableEmployees, record) {
		return "", ErrWriteFailed
	}
	return generated, nil
}
