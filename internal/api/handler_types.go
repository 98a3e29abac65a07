package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/rangepicker/internal/services"
)

const (
	sessionTokenHeader = "X-Session-Token"
	contextSessionKey  = "picker_session"
	contextSessionID   = "picker_session_id"
)

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type createSessionInput struct {
	HorizonStart       string `json:"horizon_start"`
	HorizonEnd         string `json:"horizon_end"`
	Panes              int    `json:"panes"`
	SelectionStart     string `json:"selection_start"`
	SelectionEnd       string `json:"selection_end"`
	PresetID           *uint  `json:"preset_id"`
	ReportIntermediate *bool  `json:"report_intermediate"`
}

type dateInput struct {
	Date string `json:"date"`
}

type navigateInput struct {
	Pane   int `json:"pane"`
	Months int `json:"months"`
	Years  int `json:"years"`
}

type selectionInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type presetInput struct {
	Name         string `json:"name"`
	HorizonStart string `json:"horizon_start"`
	HorizonEnd   string `json:"horizon_end"`
	Panes        int    `json:"panes"`
}

type rangeResponse struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type dayResponse struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	InMonth   bool   `json:"in_month"`
	InHorizon bool   `json:"in_horizon"`
	Selected  bool   `json:"selected"`
	Previewed bool   `json:"previewed"`
	Border    bool   `json:"border"`
}

type weekResponse struct {
	Week int           `json:"week"`
	Days []dayResponse `json:"days"`
}

type paneResponse struct {
	Index   int                  `json:"index"`
	Year    int                  `json:"year"`
	Month   int                  `json:"month"`
	Label   string               `json:"label"`
	Blocked services.PaneBlocked `json:"blocked"`
	Weeks   []weekResponse       `json:"weeks"`
}

type sessionViewResponse struct {
	State        string         `json:"state"`
	Horizon      rangeResponse  `json:"horizon"`
	Panes        []paneResponse `json:"panes"`
	Selection    rangeResponse  `json:"selection"`
	Preview      rangeResponse  `json:"preview"`
	OutOfHorizon bool           `json:"out_of_horizon"`
}

type createSessionResponse struct {
	ID    string              `json:"id"`
	Token string              `json:"token"`
	View  sessionViewResponse `json:"view"`
}

type selectionUpdateResponse struct {
	sessionViewResponse
	Reset bool `json:"reset"`
}

type navigationBlockedResponse struct {
	sessionViewResponse
	Error string `json:"error"`
}

type presetResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	HorizonStart string    `json:"horizon_start"`
	HorizonEnd   string    `json:"horizon_end"`
	Panes        int       `json:"panes"`
	CreatedAt    time.Time `json:"created_at"`
}
