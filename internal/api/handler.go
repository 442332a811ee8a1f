package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/services"
	"github.com/avelarde/avance/internal/store"
)

const (
	authCookieName  = "avance_auth"
	flashCookieName = "avance_flash"
	contextUserKey  = "current_user"
)

type Handler struct {
	gateway       *store.Gateway
	auth          *services.AuthService
	employees     *services.EmployeeService
	contracts     *services.ContractService
	activities    *services.ActivityService
	reports       *services.ReportService
	notifications *services.NotificationService

	secretKey    []byte
	sessionTTL   time.Duration
	cookieSecure bool
	templates    map[string]*template.Template
}

func NewHandler(gateway *store.Gateway, secret string, templateDir string, sessionTTL time.Duration, cookieSecure bool) (*Handler, error) {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"stateLabel": func(state int) string {
			switch state {
			case models.ReportApproved:
				return "Approved"
			case models.ReportRejected:
				return "Rejected"
			default:
				return "Pending"
			}
		},
		"roleLabel": func(role string) string {
			if role == models.RoleAdministrator {
				return "Administrator"
			}
			return "Employee"
		},
	}

	pages := []string{
		"login",
		"dashboard_admin",
		"dashboard_employee",
		"employees",
		"contracts",
		"activities",
		"reports",
		"notifications",
		"my_activities",
		"my_reports",
		"my_notifications",
	}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	return &Handler{
		gateway:       gateway,
		auth:          services.NewAuthService(gateway),
		employees:     services.NewEmployeeService(gateway),
		contracts:     services.NewContractService(gateway),
		activities:    services.NewActivityService(gateway),
		reports:       services.NewReportService(gateway),
		notifications: services.NewNotificationService(gateway),
		secretKey:     []byte(secret),
		sessionTTL:    sessionTTL,
		cookieSecure:  cookieSecure,
		templates:     templates,
	}, nil
}
