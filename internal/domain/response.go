package domain

// ErrorResponse is the body produced by the central HTTP error handler.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Response is the envelope the legacy frontend expects on every endpoint:
// a status flag, a message and the payload under data.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
}

// RowsData is the inner rows wrapper of list envelopes.
type RowsData struct {
	Count int `json:"count"`
	Rows  any `json:"rows"`
}

// ListData is the paging envelope around list payloads.
type ListData struct {
	TotalPages  int      `json:"total_pages"`
	CurrentPage int      `json:"current_page"`
	Count       int      `json:"count"`
	Rows        RowsData `json:"rows"`
}

// OK wraps a payload in a success envelope.
func OK(message string, data any) Response {
	return Response{Status: true, Message: message, Code: 200, Data: data}
}
