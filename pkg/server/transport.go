package server

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) startStdioServer(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

func (s *Server) startSseServer(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler(&s.health))
	mux.Handle("/", redirectHandler("/sse"))
	sseHandler := mcp.NewSSEHandler(func(_ *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	// Wrap with Origin validation to prevent DNS rebinding
	mux.Handle("/sse", originSecurityHandler(sseHandler))

	// Wrap entire mux with authentication middleware (excludes /health)
	var handler http.Handler = mux
	if s.authToken != "" {
		handler = authenticationMiddleware(s.authToken, mux)
	}

	httpServer := &http.Server{
		Handler: handler,
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	return httpServer.Serve(ln)
}

func (s *Server) startStreamingServer(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler(&s.health))
	mux.Handle("/", redirectHandler("/mcp"))
	streamHandler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	// Wrap with Origin validation to prevent DNS rebinding
	mux.Handle("/mcp", originSecurityHandler(streamHandler))

	// Wrap entire mux with authentication middleware (excludes /health)
	var handler http.Handler = mux
	if s.authToken != "" {
		handler = authenticationMiddleware(s.authToken, mux)
	}

	httpServer := &http.Server{
		Handler: handler,
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	return httpServer.Serve(ln)
}

func redirectHandler(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	}
}

func healthHandler(state *healthState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if state.IsHealthy() {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}
}

// originSecurityHandler validates the Origin header to prevent DNS rebinding
// attacks. Non-browser clients send no Origin header and pass through;
// browser clients are only accepted from localhost origins.
func originSecurityHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" {
			allowed := origin == "http://localhost" ||
				origin == "https://localhost" ||
				origin == "http://127.0.0.1" ||
				origin == "https://127.0.0.1" ||
				strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "https://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:") ||
				strings.HasPrefix(origin, "https://127.0.0.1:")

			if !allowed {
				http.Error(w, "Forbidden: Invalid Origin header", http.StatusForbidden)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
