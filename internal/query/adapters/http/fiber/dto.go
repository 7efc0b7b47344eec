package fiber

import "time"

// ClickResponse is one element of the GET /clicks array. ClickTime
// marshals as an RFC 3339 timestamp.
type ClickResponse struct {
	ClickTime time.Time `json:"clickTime" example:"2026-08-23T10:15:04Z"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty" example:"Failed to read clicks"`
}
