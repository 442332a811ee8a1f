package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	identity, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, identity)
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if !identity.IsAdministrator() {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "administrator access required"})
		}
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Next()
}
