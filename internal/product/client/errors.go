package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/ridloal/product-console/internal/platform/logger"
)

const maxErrorBodyBytes = 64 << 10

var (
	// ErrUnavailable wraps transport failures: the request never got a response.
	ErrUnavailable = errors.New("product service unavailable")
	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response from product service")
)

// APIError is a non-2xx answer from the Product API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody covers both structured error shapes the API may return.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// ParseErrorBody turns a failed response into an APIError.
//
// JSON bodies yield their top-level "message" when present, otherwise every message
// under "errors" joined by newlines (fields in sorted order). Anything else, including
// JSON with neither key, is used verbatim. An empty result, or a body that could not be
// read in full, falls back to the status text.
func ParseErrorBody(resp *http.Response) *APIError {
	var message string
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		logger.Warn("ParseErrorBody: reading %d response body failed: %v", resp.StatusCode, err)
	} else {
		message = errorMessage(resp.Header.Get("Content-Type"), raw)
	}
	if strings.TrimSpace(message) == "" {
		message = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

func errorMessage(contentType string, raw []byte) string {
	if !isJSON(contentType) {
		return string(raw)
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw)
	}
	if body.Message != "" {
		return body.Message
	}
	if flattened := flattenFieldErrors(body.Errors); flattened != "" {
		return flattened
	}
	return string(raw)
}

func flattenFieldErrors(fieldErrors map[string][]string) string {
	if len(fieldErrors) == 0 {
		return ""
	}
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, fieldErrors[field]...)
	}
	return strings.Join(messages, "\n")
}

// isJSON accepts application/json and +json media types such as application/problem+json.
func isJSON(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
