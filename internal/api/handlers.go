package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/security"
	"github.com/terraincognita07/rangepicker/internal/services"
	"gorm.io/gorm"
)

const (
	sessionTokenPurpose = "session-token"
	sessionTokenTTL     = 24 * time.Hour

	sessionCreateLimit  = 30
	sessionCreateWindow = time.Minute
)

// HandlerOptions carry the session defaults resolved from configuration.
type HandlerOptions struct {
	DefaultPanes       int
	DefaultHorizon     func(today models.CalendarDate) (models.Horizon, error)
	ReportIntermediate bool
	Logger             *slog.Logger
}

type Handler struct {
	sessions       *services.SessionStore
	presets        *services.PresetService
	tokenKey       []byte
	options        HandlerOptions
	sessionLimiter *rateLimiter
	logger         *slog.Logger
	now            func() time.Time
	issueToken     func(sessionID string) (string, error)
}

func NewHandler(database *gorm.DB, secret string, sessions *services.SessionStore, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}

	tokenKey, err := security.DeriveKey([]byte(secret), sessionTokenPurpose)
	if err != nil {
		return nil, err
	}

	if options.DefaultPanes == 0 {
		options.DefaultPanes = models.DefaultPaneCount
	}
	if options.DefaultHorizon == nil {
		options.DefaultHorizon = currentYearHorizon
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repositories := db.NewRepositories(database)
	handler := &Handler{
		sessions:       sessions,
		presets:        services.NewPresetService(repositories.Presets),
		tokenKey:       tokenKey,
		options:        options,
		sessionLimiter: newRateLimiter(sessionCreateLimit, sessionCreateWindow),
		logger:         logger,
		now:            time.Now,
	}
	handler.issueToken = handler.buildSessionToken
	return handler, nil
}

func currentYearHorizon(today models.CalendarDate) (models.Horizon, error) {
	return models.NewHorizon(
		models.CalendarDate{Year: today.Year, Month: 0, Day: 1},
		models.CalendarDate{Year: today.Year, Month: 11, Day: 31},
	)
}
