package api

import (
	"errors"
	"strings"

	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondLoginError(c, fiber.StatusBadRequest, "invalid input", "")
	}

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return handler.respondLoginError(c, fiber.StatusBadRequest, "email and password are required", email)
	}

	identity, err := handler.auth.Authenticate(email, input.Password)
	if err != nil {
		message := "invalid credentials"
		if errors.Is(err, services.ErrInactiveAccount) {
			message = "account is inactive"
		}
		return handler.respondLoginError(c, fiber.StatusUnauthorized, message, email)
	}

	if err := handler.setAuthCookie(c, identity); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) respondLoginError(c *fiber.Ctx, status int, message string, email string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message, LoginEmail: email})
	return c.Redirect("/login", fiber.StatusSeeOther)
}
