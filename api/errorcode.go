package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the generic error body returned for any failed request.
// Internal error detail never leaves the boundary; validation failures are
// the one case that carries field-level detail back to the caller.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

var (
	errorInternalServer    = ErrorResponse{Error: "server error"}
	errorInvalidParameters = ErrorResponse{Error: "invalid parameters"}
	errorAnalytics         = ErrorResponse{Error: "analytics error"}
)

// errorInvalidSurvey converts a binding failure into a response that names
// the offending fields.
func errorInvalidSurvey(err error) ErrorResponse {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return errorInvalidParameters
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return ErrorResponse{Error: "invalid survey fields: " + strings.Join(fields, ", ")}
}
