package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

var testNow = time.Date(2000, time.February, 10, 12, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	handler  *Handler
	sessions *services.SessionStore
}

func testHorizon(today models.CalendarDate) (models.Horizon, error) {
	return models.NewHorizon(
		models.CalendarDate{Year: 2000, Month: 0, Day: 1},
		models.CalendarDate{Year: 2001, Month: 11, Day: 31},
	)
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "rangepicker-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	sessions := services.NewSessionStore(time.Hour, 50)
	handler, err := NewHandler(database, "test-secret-key-with-enough-length!!", sessions, HandlerOptions{
		DefaultPanes:       2,
		DefaultHorizon:     testHorizon,
		ReportIntermediate: true,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, handler: handler, sessions: sessions}
}

func (ta *testApp) do(t *testing.T, method string, path string, token string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		if strings.HasPrefix(body, "BEGIN:VCALENDAR") {
			request.Header.Set("Content-Type", "text/calendar")
		} else {
			request.Header.Set("Content-Type", "application/json")
		}
	}
	if token != "" {
		request.Header.Set(sessionTokenHeader, token)
	}

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func (ta *testApp) createSession(t *testing.T, body string) createSessionResponse {
	t.Helper()

	response := ta.do(t, http.MethodPost, "/api/sessions", "", body)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create session expected status 201, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
	}

	created := createSessionResponse{}
	decodeJSON(t, response, &created)
	if created.ID == "" || created.Token == "" {
		t.Fatalf("expected session id and token, got %+v", created)
	}
	return created
}

func paneLabels(view sessionViewResponse) []string {
	labels := make([]string, 0, len(view.Panes))
	for _, pane := range view.Panes {
		labels = append(labels, pane.Label)
	}
	return labels
}
