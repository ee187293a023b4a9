package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// The Origin check blocks DNS rebinding: a malicious page cannot drive the
// local MCP endpoint through the victim's browser.
func TestOriginSecurityHandler(t *testing.T) {
	successHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	secureHandler := originSecurityHandler(successHandler)

	tests := []struct {
		name           string
		origin         string
		expectedStatus int
	}{
		{
			name:           "no Origin header (non-browser clients)",
			origin:         "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "cross-origin request",
			origin:         "https://evil.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "localhost origin",
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "loopback origin",
			origin:         "http://127.0.0.1:8080",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rebinding via 0.0.0.0",
			origin:         "http://0.0.0.0:8080",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "subdomain containing localhost",
			origin:         "http://localhost.evil.com",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			rr := httptest.NewRecorder()
			secureHandler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("origin %q: expected status %d, got %d", tt.origin, tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	var state healthState
	handler := healthHandler(&state)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d before readiness, got %d", http.StatusServiceUnavailable, rr.Code)
	}

	state.SetHealthy()

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d after readiness, got %d", http.StatusOK, rr.Code)
	}
}
