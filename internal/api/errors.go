package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is returned when the server answers with a non-2xx status
type Error struct {
	Op         string
	StatusCode int
	Detail     string // empty when the body carried no usable detail
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// Detail returns the server-provided detail carried by err, or "" for
// transport failures and bodies without one
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

// parseDetail accepts {"detail": "text"} and the validation form
// {"detail": [{"msg": "text", ...}]}; anything else yields ""
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(eb.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []validationItem
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		for _, it := range items {
			if msg := strings.TrimSpace(it.Msg); msg != "" {
				return msg
			}
		}
	}
	return ""
}
