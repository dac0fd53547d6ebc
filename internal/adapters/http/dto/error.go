package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/go-todos/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level problem within an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// StatusFor maps a domain error to the status used for non-HTML clients.
// HTML form handlers answer user errors with 422 instead.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds a problem document for err. Server-side failures
// get a generic detail so storage errors never reach the client.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	return newProblem(r, StatusFor(err), err)
}

// WriteErrorResponse writes err as application/problem+json with the status
// from StatusFor.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes err as application/problem+json with an explicit
// status, for errors that have no domain mapping (e.g. rate limiting).
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeProblem(w, r, newProblem(r, status, err))
}

func newProblem(r *http.Request, status int, err error) ErrorResponse {
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.RequestURI(),
	}
	if status < http.StatusInternalServerError {
		resp.Detail = err.Error()
	}
	resp.Errors = problemDetails(err)
	return resp
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// problemDetails collects validation and duplicate-title failures from err,
// including errors.Join trees, sorted by location then message.
func problemDetails(err error) []ErrorDetail {
	var details []ErrorDetail
	collectDetails(err, &details)
	if len(details) == 0 {
		return nil
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Location != details[j].Location {
			return details[i].Location < details[j].Location
		}
		return details[i].Message < details[j].Message
	})
	return details
}

func collectDetails(err error, out *[]ErrorDetail) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectDetails(e, out)
		}
		return
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			*out = append(*out, ErrorDetail{Location: "body." + field, Message: msg})
		}
		return
	}

	var derr *domain.DuplicateTitleError
	if errors.As(err, &derr) {
		*out = append(*out, ErrorDetail{Location: "body." + domain.FieldTitle, Message: derr.Message})
	}
}
