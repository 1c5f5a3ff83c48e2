package rest

import (
	"encoding/json"
	"fmt"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
)

// APIError is a structured error response from the platform.
type APIError struct {
	Status    int
	ErrCode   string `json:"err_code"`
	ErrMsg    string `json:"err_msg"`
	RequestID string `json:"request_id"`
}

func (e *APIError) Error() string {
	if e.ErrMsg != "" {
		return fmt.Sprintf("api error (status %d, code %s): %s", e.Status, e.ErrCode, e.ErrMsg)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// UnknownAPIError is a non-2xx response whose body is not the structured
// error shape.
type UnknownAPIError struct {
	Status int
	Body   string
}

func (e *UnknownAPIError) Error() string {
	return fmt.Sprintf("unknown api error (status %d): %s", e.Status, e.Body)
}

// decodeError maps a non-2xx response body to the richest error it supports.
func decodeError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrMsg != "" {
		apiErr.Status = status
		return errorsx.Wrap(&apiErr, errorsx.ReasonRESTResponse)
	}
	return errorsx.Wrap(&UnknownAPIError{Status: status, Body: string(body)}, errorsx.ReasonRESTResponse)
}
