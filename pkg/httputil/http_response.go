package httputil

import (
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code        int        `json:"code"`
	Message     string     `json:"message"`
	Details     string     `json:"details,omitempty"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	writeError(w, ErrorResponse{Code: statusCode, Message: message}, details)
}

// WritePreconditionResponse answers 409 and tells the client when the rejected action becomes possible.
func WritePreconditionResponse(w http.ResponseWriter, message string, details error, until *time.Time) {
	resp := ErrorResponse{Code: http.StatusConflict, Message: message}
	if until != nil {
		u := until.UTC()
		resp.LockedUntil = &u
	}
	writeError(w, resp, details)
}

func writeError(w http.ResponseWriter, resp ErrorResponse, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	if details != nil {
		resp.Details = details.Error()
	}
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// WriteEvent writes one server-sent event and flushes it.
func WriteEvent(w http.ResponseWriter, event string, body any) error {
	data, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		return errors.New("encoding event error: " + err.Error())
	}
	if _, err = w.Write([]byte("event: " + event + "\ndata: " + string(data) + "\n\n")); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
