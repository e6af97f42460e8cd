// Clinical Trials MCP Server - A Model Context Protocol server for
// ClinicalTrials.gov. Provides tools for searching, retrieving, and
// analyzing clinical trial records, with local field projection.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/clinicaltrials-mcp-server/internal/ctgov"
	"github.com/olgasafonova/clinicaltrials-mcp-server/tools"
	"github.com/olgasafonova/clinicaltrials-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "clinicaltrials-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Clinical Trials MCP Server provides tools for querying ClinicalTrials.gov.

Available tools:
- search_trials_by_condition: Search trials by medical condition(s)
- search_trials_by_intervention: Search trials by treatment/intervention
- search_trials_by_sponsor: Search trials by sponsoring organization
- search_trials_by_acronym: Find trials by study acronym (e.g. RECOVERY)
- search_trials_combined: Search with multiple criteria at once
- search_trials_by_nct_ids: Retrieve trials by NCT ID list (order preserved)
- get_trial_details: Full record for a single NCT ID
- search_trials_nct_ids_only: Lightweight discovery search (IDs + titles)
- analyze_trial_phases: Phase distribution for matching trials
- get_field_statistics: Registry-wide field value statistics
- get_available_fields: List field names usable in 'fields' parameters

All search tools accept a 'fields' list to trim responses; field names are
case-insensitive and common shorthand like "sponsor" or "phase" is accepted.

Configure via environment variables (all optional):
- CTGOV_BASE_URL: Registry API URL (default https://clinicaltrials.gov/api/v2)
- CTGOV_TIMEOUT: Request timeout (default 30s)
- TRANSPORT: "stdio" (default) or "http"
- PORT: HTTP listen port when TRANSPORT=http (default 8081)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL is configured)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Load configuration from environment
	config := ctgov.LoadConfig()

	// Create ClinicalTrials.gov client
	client := ctgov.NewClient(config, ctgov.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	logger.Info("Starting Clinical Trials MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"registry_url", config.BaseURL,
	)

	if os.Getenv("TRANSPORT") == "http" {
		runHTTP(server, logger)
		return
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runHTTP serves the MCP protocol over streamable HTTP and exposes
// Prometheus metrics on the same listener.
func runHTTP(server *mcp.Server, logger *slog.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           newHTTPMux(server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Listening", "port", port)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// newHTTPMux routes the MCP endpoint alongside metrics and health checks.
func newHTTPMux(server *mcp.Server) *http.ServeMux {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
