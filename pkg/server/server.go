// Package server exposes the GeoServer REST client as an MCP tool catalog.
// Each tool is a thin adapter: it forwards its arguments to one client method
// and re-serializes the returned content and status code, nothing more.
package server

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync/atomic"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/camptocamp/geoserver-mcp/pkg/config"
	"github.com/camptocamp/geoserver-mcp/pkg/geoserver"
	"github.com/camptocamp/geoserver-mcp/pkg/log"
)

const serverInstructions = `GeoServer MCP provides tools for managing GeoServer via natural language.

Available capabilities:
- Workspaces: create, list, get, delete workspaces
- Datastores: manage PostGIS, JNDI, PMTiles, and generic datastores
- Feature types: create and manage vector layers
- Coverage stores: manage raster stores and ImageMosaic
- WMS/WMTS stores: cascade external WMS/WMTS services
- Layers and layer groups: manage published layers
- Styles: upload and manage SLD styles
- GeoWebCache: tile caching and gridsets
- Users & roles: manage GeoServer security
- ACL rules: configure access control
- OGC services: WMS GetCapabilities, WFS GetFeature

The GeoServer connection is configured via the GEOSERVER_URL, GEOSERVER_USER
and GEOSERVER_PASSWORD environment variables.`

// Options are the runtime settings of the MCP server.
type Options struct {
	Transport string
	Port      int
	Version   string
}

// Server wires the tool catalog to a shared GeoServer client. The client is
// constructed once at startup and reused by every tool invocation.
type Server struct {
	Options
	geoserver *geoserver.Client
	conf      config.Config
	mcpServer *mcp.Server
	health    healthState

	// authToken protects the SSE/streaming endpoints
	authToken             string
	authTokenWasGenerated bool
}

// healthState tracks readiness for the /health endpoint of the network
// transports.
type healthState struct {
	healthy atomic.Bool
}

func (h *healthState) SetHealthy()     { h.healthy.Store(true) }
func (h *healthState) IsHealthy() bool { return h.healthy.Load() }

// New builds a server around an already constructed GeoServer client.
func New(opts Options, conf config.Config, client *geoserver.Client) *Server {
	return &Server{
		Options:   opts,
		geoserver: client,
		conf:      conf,
	}
}

// buildMCPServer creates the MCP server and registers the full tool catalog.
// Split from Run so tests can drive the server over an in-memory transport.
func (s *Server) buildMCPServer() *mcp.Server {
	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    "GeoServer MCP",
		Version: s.Version,
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})

	s.registerConnectionTools()
	s.registerWorkspaceTools()
	s.registerDatastoreTools()
	s.registerStoreTools()
	s.registerFeatureTypeTools()
	s.registerCoverageTools()
	s.registerLayerTools()
	s.registerLayerGroupTools()
	s.registerStyleTools()
	s.registerGwcTools()
	s.registerOgcTools()
	s.registerSecurityTools()
	s.registerAclTools()

	return s.mcpServer
}

// Run registers the tools and serves on the selected transport until the
// context is canceled.
func (s *Server) Run(ctx context.Context) error {
	transport := strings.ToLower(s.Transport)
	networkTransport := transport != "" && transport != "stdio"

	// Listen as early as possible to not lose client connections.
	var ln net.Listener
	if networkTransport {
		var (
			lc  net.ListenConfig
			err error
		)
		ln, err = lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", s.Port))
		if err != nil {
			return err
		}
	}

	s.buildMCPServer()
	s.health.SetHealthy()

	log.Logf("> GeoServer endpoint: %s (user %s)", s.geoserver.BaseURL(), s.geoserver.User())

	// The network transports require a Bearer token.
	if networkTransport {
		token, wasGenerated, err := getOrGenerateAuthToken()
		if err != nil {
			return fmt.Errorf("failed to initialize auth token: %w", err)
		}
		s.authToken = token
		s.authTokenWasGenerated = wasGenerated
	}

	switch transport {
	case "", "stdio":
		log.Log("> Start stdio server")
		return s.startStdioServer(ctx)

	case "sse":
		log.Log("> Start sse server on port", s.Port)
		s.logServerURL("/sse")
		return s.startSseServer(ctx, ln)

	case "http", "streamable", "streaming":
		log.Log("> Start streaming server on port", s.Port)
		s.logServerURL("/mcp")
		return s.startStreamingServer(ctx, ln)

	default:
		ln.Close()
		return fmt.Errorf("unknown transport %q, expected 'stdio', 'sse' or 'streaming'", s.Transport)
	}
}

func (s *Server) logServerURL(endpoint string) {
	log.Logf("> Server URL: http://localhost:%d%s", s.Port, endpoint)
	if s.authTokenWasGenerated {
		log.Logf("> Use Bearer token: Authorization: Bearer %s", s.authToken)
	} else {
		log.Log("> Use Bearer token from MCP_GEOSERVER_AUTH_TOKEN environment variable")
	}
}
