package server

import (
	"encoding/json"
	"strings"
)

// noArgs is the input type of tools that take no parameters.
type noArgs struct{}

// messageResult is the shape of every write operation's result: a status
// message from GeoServer and the HTTP status code of the REST call.
type messageResult struct {
	Message    any `json:"message"`
	StatusCode int `json:"status_code"`
}

func message(content string, code int) messageResult {
	return messageResult{Message: jsonValue(content), StatusCode: code}
}

// epsgOrDefault resolves an optional epsg argument, keeping an explicit
// value (zero included) distinct from an absent one.
func epsgOrDefault(code *int) int {
	if code == nil {
		return 4326
	}
	return *code
}

// jsonValue decodes a REST response body so results carry structured JSON
// instead of a doubly-encoded string. Non-JSON bodies (capabilities
// documents, SLD, plain messages) pass through verbatim.
func jsonValue(content string) any {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	return content
}
