package fiber

// POST /clicked takes no payload and answers 201 with an empty body, so the
// only DTO on the write side is the error shape.

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty" example:"Failed to record the click"`
}
