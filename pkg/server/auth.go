package server

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"net/http"
	"os"
)

const (
	tokenLength  = 50
	tokenCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// generateAuthToken generates a random token for the network transports.
func generateAuthToken() (string, error) {
	token := make([]byte, tokenLength)
	charsetLen := big.NewInt(int64(len(tokenCharset)))

	for i := range tokenLength {
		num, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random token: %w", err)
		}
		token[i] = tokenCharset[num.Int64()]
	}

	return string(token), nil
}

// getOrGenerateAuthToken returns the token from MCP_GEOSERVER_AUTH_TOKEN, or
// generates one when the variable is unset. The second return value reports
// whether the token was generated.
func getOrGenerateAuthToken() (string, bool, error) {
	envToken := os.Getenv("MCP_GEOSERVER_AUTH_TOKEN")
	if envToken != "" {
		return envToken, false, nil
	}

	token, err := generateAuthToken()
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

// authenticationMiddleware validates requests using a Bearer token in the
// Authorization header. The /health endpoint is excluded.
func authenticationMiddleware(authToken string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		authenticated := false

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			const bearerPrefix = "Bearer "
			if len(authHeader) > len(bearerPrefix) && authHeader[:len(bearerPrefix)] == bearerPrefix {
				bearerToken := authHeader[len(bearerPrefix):]
				// Constant-time comparison to prevent timing attacks
				if subtle.ConstantTimeCompare([]byte(bearerToken), []byte(authToken)) == 1 {
					authenticated = true
				}
			}
		}

		if !authenticated {
			w.Header().Set("WWW-Authenticate", `Bearer realm="GeoServer MCP"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
