package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/clinicaltrials-mcp-server/internal/ctgov"
	"github.com/olgasafonova/clinicaltrials-mcp-server/metrics"
	"github.com/olgasafonova/clinicaltrials-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *ctgov.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *ctgov.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
// A spec whose method has no registration here is the one unknown-operation
// case the server itself can produce; it is logged and skipped.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "SearchByCondition":
		register(h, server, tool, spec, h.client.SearchByConditionMCP)
	case "SearchByIntervention":
		register(h, server, tool, spec, h.client.SearchByInterventionMCP)
	case "SearchBySponsor":
		register(h, server, tool, spec, h.client.SearchBySponsorMCP)
	case "SearchByAcronym":
		register(h, server, tool, spec, h.client.SearchByAcronymMCP)
	case "SearchCombined":
		register(h, server, tool, spec, h.client.SearchCombinedMCP)
	case "SearchByNCTIDs":
		register(h, server, tool, spec, h.client.SearchByNCTIDsMCP)
	case "GetTrialDetails":
		register(h, server, tool, spec, h.client.GetTrialDetailsMCP)
	case "NCTIDsOnly":
		register(h, server, tool, spec, h.client.NCTIDsOnlyMCP)
	case "AnalyzePhases":
		register(h, server, tool, spec, h.client.AnalyzePhasesMCP)
	case "FieldStats":
		register(h, server, tool, spec, h.client.FieldStatsMCP)
	case "AvailableFields":
		register(h, server, tool, spec, h.client.AvailableFieldsMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging, and converts any error into the uniform error envelope the
// protocol layer expects.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case ctgov.SearchByConditionArgs:
		attrs = append(attrs, "conditions", a.Conditions, "fields_requested", len(a.Fields))
	case ctgov.SearchByInterventionArgs:
		attrs = append(attrs, "interventions", a.Interventions, "fields_requested", len(a.Fields))
	case ctgov.SearchBySponsorArgs:
		attrs = append(attrs, "sponsors", a.Sponsors, "fields_requested", len(a.Fields))
	case ctgov.SearchByAcronymArgs:
		attrs = append(attrs, "acronym", a.Acronym, "exact_match", a.ExactMatch)
	case ctgov.SearchCombinedArgs:
		attrs = append(attrs, "nct_ids", len(a.NCTIDs), "terms", a.Terms)
	case ctgov.SearchByNCTIDsArgs:
		attrs = append(attrs, "nct_ids", len(a.NCTIDs))
	case ctgov.GetTrialDetailsArgs:
		attrs = append(attrs, "nct_id", a.NCTID)
	case ctgov.NCTIDsOnlyArgs:
		attrs = append(attrs, "terms", a.Terms)
	case ctgov.AnalyzePhasesArgs:
		attrs = append(attrs, "conditions", a.Conditions)
	case ctgov.FieldStatsArgs:
		attrs = append(attrs, "field_names", a.FieldNames)
	case ctgov.AvailableFieldsArgs:
		attrs = append(attrs, "field_category", a.Category)
	}

	// Add result sizes where available
	switch r := result.(type) {
	case ctgov.SearchResult:
		attrs = append(attrs, "studies_returned", r.Count)
		metrics.StudiesReturned.WithLabelValues(spec.Name).Observe(float64(r.Count))
	case ctgov.AnalyzePhasesResult:
		attrs = append(attrs, "studies_analyzed", r.TotalStudies)
	}

	h.logger.Info("Tool executed", attrs...)
}
