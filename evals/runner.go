// Package evals provides an evaluation framework for testing MCP tool
// selection accuracy. It validates that LLMs pick the right clinical
// trials tool and extract proper arguments from natural language inputs.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/olgasafonova/clinicaltrials-mcp-server/tools"
)

// ToolSelectionTest is one natural-language prompt with the tool an LLM
// is expected to pick for it.
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests.
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPair groups tests that disambiguate two commonly confused
// tools, e.g. condition search vs intervention search.
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairTest is one disambiguation prompt.
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPairSuite contains all confusion pair tests.
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ArgumentTest checks that a prompt produces correct tool arguments.
type ArgumentTest struct {
	ID            string         `json:"id"`
	Tool          string         `json:"tool"`
	Input         string         `json:"input"`
	RequiredArgs  []string       `json:"required_args"`
	ExpectedArgs  map[string]any `json:"expected_args"`
	ForbiddenArgs []string       `json:"forbidden_args"`
	ArgNotes      string         `json:"arg_notes,omitempty"`
}

// ArgumentSuite contains all argument correctness tests.
type ArgumentSuite struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Tests       []ArgumentTest `json:"tests"`
}

// Result is the outcome of evaluating a single test case.
type Result struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// Metrics aggregates an evaluation run.
type Metrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64
	ByCategory    map[string]*CategoryMetrics
	FailedDetails []string
}

// CategoryMetrics counts results within one category.
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// ToolSelector is implemented by an LLM harness (or a mock in tests).
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a natural
	// language input.
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

func loadSuite[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var suite T
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &suite, nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file.
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	return loadSuite[ToolSelectionSuite](path)
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file.
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	return loadSuite[ConfusionPairSuite](path)
}

// LoadArgumentSuite loads argument correctness tests from a JSON file.
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	return loadSuite[ArgumentSuite](path)
}

// LoadAllEvals loads the standard three suites from a directory.
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	selection, err := LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}
	confusion, err := LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}
	arguments, err := LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading arguments: %w", err)
	}
	return selection, confusion, arguments, nil
}

// knownToolNames returns the set of tool names the server registers.
func knownToolNames() map[string]bool {
	known := make(map[string]bool, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}
	return known
}

// ValidateSuites checks that every tool name referenced by the suites is
// one the server actually registers, catching drift between the eval
// data and the tool definitions.
func ValidateSuites(selection *ToolSelectionSuite, confusion *ConfusionPairSuite, arguments *ArgumentSuite) []string {
	known := knownToolNames()
	var problems []string

	report := func(where, tool string) {
		if !known[tool] {
			problems = append(problems, fmt.Sprintf("%s references unknown tool %q", where, tool))
		}
	}

	if selection != nil {
		for _, test := range selection.Tests {
			report("tool_selection/"+test.ID, test.ExpectedTool)
			for _, not := range test.NotTools {
				report("tool_selection/"+test.ID+"/not_tools", not)
			}
		}
	}
	if confusion != nil {
		for _, pair := range confusion.Pairs {
			for _, tool := range pair.Tools {
				report("confusion_pairs/"+pair.ID, tool)
			}
			for _, test := range pair.Tests {
				report("confusion_pairs/"+pair.ID, test.Expected)
			}
		}
	}
	if arguments != nil {
		for _, test := range arguments.Tests {
			report("argument_correctness/"+test.ID, test.Tool)
		}
	}

	return problems
}

func newMetrics() *Metrics {
	return &Metrics{ByCategory: make(map[string]*CategoryMetrics)}
}

func (m *Metrics) category(name string) *CategoryMetrics {
	cm := m.ByCategory[name]
	if cm == nil {
		cm = &CategoryMetrics{}
		m.ByCategory[name] = cm
	}
	return cm
}

func (m *Metrics) record(category string, result Result) {
	m.TotalTests++
	cm := m.category(category)
	cm.Total++
	if result.Passed {
		m.PassedTests++
		cm.Passed++
	} else {
		m.FailedTests++
		cm.Failed++
		m.FailedDetails = append(m.FailedDetails,
			fmt.Sprintf("[%s] %s: %s", result.TestID, result.Input, strings.Join(result.Errors, "; ")))
	}
}

func (m *Metrics) finish() {
	if m.TotalTests > 0 {
		m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
	}
}

// EvaluateToolSelection runs tool selection tests against a selector.
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := newMetrics()
	var results []Result

	for _, test := range suite.Tests {
		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := Result{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.fail(fmt.Sprintf("selector error: %v", err))
		}
		if actualTool != test.ExpectedTool {
			result.fail(fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
		}
		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				result.fail(fmt.Sprintf("selected forbidden tool: %s", forbidden))
			}
		}
		checkArgs(&result, test.ExpectedArgs, actualArgs)

		metrics.record(test.Category, result)
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

// EvaluateConfusionPairs runs disambiguation tests against a selector.
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := newMetrics()
	var results []Result

	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			actualTool, _, err := selector.SelectTool(test.Input)

			result := Result{
				TestID:       pair.ID,
				Input:        test.Input,
				ExpectedTool: test.Expected,
				ActualTool:   actualTool,
				Passed:       true,
			}
			if err != nil {
				result.fail(fmt.Sprintf("selector error: %v", err))
			}
			if actualTool != test.Expected {
				result.fail(fmt.Sprintf("expected %s, got %s (%s)", test.Expected, actualTool, test.Reason))
			}

			metrics.record(pair.ID, result)
			results = append(results, result)
		}
	}

	metrics.finish()
	return metrics, results
}

// EvaluateArguments runs argument correctness tests against a selector.
func EvaluateArguments(suite *ArgumentSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := newMetrics()
	var results []Result

	for _, test := range suite.Tests {
		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := Result{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.Tool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.fail(fmt.Sprintf("selector error: %v", err))
		} else if actualTool != test.Tool {
			result.fail(fmt.Sprintf("wrong tool: expected %s, got %s", test.Tool, actualTool))
		} else {
			for _, reqArg := range test.RequiredArgs {
				if _, exists := actualArgs[reqArg]; !exists {
					result.fail("missing required arg " + reqArg)
				}
			}
			checkArgs(&result, test.ExpectedArgs, actualArgs)
			for _, forbidden := range test.ForbiddenArgs {
				if _, exists := actualArgs[forbidden]; exists {
					result.fail("forbidden arg present: " + forbidden)
				}
			}
		}

		metrics.record(test.Tool, result)
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

func (r *Result) fail(msg string) {
	r.Passed = false
	r.Errors = append(r.Errors, msg)
}

func checkArgs(result *Result, expected, actual map[string]any) {
	for key, expectedValue := range expected {
		actualValue, exists := actual[key]
		if !exists {
			result.fail(fmt.Sprintf("missing arg %s (expected %v)", key, expectedValue))
		} else if !compareValues(expectedValue, actualValue) {
			result.fail(fmt.Sprintf("wrong arg %s: expected %v, got %v", key, expectedValue, actualValue))
		}
	}
}

// compareValues compares expected and actual values, tolerating the
// numeric widening JSON decoding introduces.
func compareValues(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	switch ev.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if av.Kind() == reflect.Float64 {
			return float64(ev.Int()) == av.Float()
		}
	case reflect.Float32, reflect.Float64:
		if av.Kind() == reflect.Float64 {
			return ev.Float() == av.Float()
		}
	}

	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := 0; i < ev.Len(); i++ {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

// FormatMetrics returns a human-readable summary of an evaluation run.
func FormatMetrics(metrics *Metrics, suiteName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n=== %s ===\n", suiteName))
	b.WriteString(fmt.Sprintf("Total: %d tests\n", metrics.TotalTests))
	b.WriteString(fmt.Sprintf("Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100))
	b.WriteString(fmt.Sprintf("Failed: %d\n", metrics.FailedTests))

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for cat, m := range metrics.ByCategory {
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				b.WriteString(fmt.Sprintf("  %-30s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc))
			}
		}
	}

	if n := len(metrics.FailedDetails); n > 0 {
		shown := metrics.FailedDetails
		if n > 10 {
			b.WriteString(fmt.Sprintf("\nFailed Tests (showing first 10 of %d):\n", n))
			shown = shown[:10]
		} else {
			b.WriteString("\nFailed Tests:\n")
		}
		for _, detail := range shown {
			b.WriteString(fmt.Sprintf("  - %s\n", detail))
		}
	}

	return b.String()
}
