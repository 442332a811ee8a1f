package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

type NotificationService struct {
	gateway TableGateway
}

func NewNotificationService(gateway TableGateway) *NotificationService {
	return &NotificationService{gateway: gateway}
}

// Send creates a notification for one employee. Only administrators reach
// this path; the handler enforces that.
func (service *NotificationService) Send(employeeID uint, message string) error {
	if !requiredText(message) {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if exists := service.gateway.Fetch(store.TableEmployees, map[string]any{"id_empleado": employeeID}); len(exists) == 0 {
		return fmt.Errorf("%w: employee %d does not exist", ErrInvalidInput, employeeID)
	}

	record := map[string]any{
		"id_empleado": employeeID,
		"mensaje":     strings.TrimSpace(message),
		"fecha_envio": time.Now(),
		"leido":       false,
	}
	if !service.gateway.Insert(store.TableNotifications, record) {
		return ErrWriteFailed
	}
	return nil
}

func (service *NotificationService) ListByEmployee(employeeID uint) []models.Notification {
	rows := service.gateway.Fetch(store.TableNotifications, map[string]any{"id_empleado": employeeID})
	notifications := make([]models.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, notificationFromRow(row))
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].SentAt.After(notifications[j].SentAt)
	})
	return notifications
}

func (service *NotificationService) UnreadCount(employeeID uint) int {
	rows := service.gateway.Fetch(store.TableNotifications, map[string]any{
		"id_empleado": employeeID,
		"leido":       false,
	})
	return len(rows)
}

// MarkRead flips the read flag, the only mutation notifications allow. The
// employee id scopes the condition so one employee cannot mark another's.
func (service *NotificationService) MarkRead(notificationID uint, employeeID uint) error {
	rows := service.gateway.Fetch(store.TableNotifications, map[string]any{
		"id_notificacion": notificationID,
		"id_empleado":     employeeID,
	})
	if len(rows) == 0 {
		return ErrNotFound
	}
	condition := map[string]any{
		"id_notificacion": notificationID,
		"id_empleado":     employeeID,
	}
	if !service.gateway.Update(store.TableNotifications, map[string]any{"leido": true}, condition) {
		return ErrWriteFailed
	}
	return nil
}
