package api

import (
	"bytes"

	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}

	payload := fiber.Map{
		"CurrentPath":     c.Path(),
		"Backend":         handler.gateway.Backend().String(),
		"BackendReadOnly": !handler.gateway.Writable(),
		"CSRFToken":       csrfToken(c),
	}
	if identity, ok := currentIdentity(c); ok {
		payload["Identity"] = identity
		payload["IsAdministrator"] = identity.IsAdministrator()
		payload["UnreadCount"] = handler.notifications.UnreadCount(identity.ID)
	}
	for key, value := range data {
		payload[key] = value
	}

	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func currentIdentity(c *fiber.Ctx) (services.Identity, bool) {
	identity, ok := c.Locals(contextUserKey).(services.Identity)
	return identity, ok
}
