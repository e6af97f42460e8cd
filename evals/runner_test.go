package evals

import (
	"path/filepath"
	"strings"
	"testing"
)

// MockToolSelector implements ToolSelector for testing
type MockToolSelector struct {
	// Responses maps input strings to tool selections
	Responses map[string]struct {
		Tool string
		Args map[string]any
	}
	// DefaultTool is returned if input isn't in Responses
	DefaultTool string
}

func (m *MockToolSelector) SelectTool(input string) (string, map[string]any, error) {
	if resp, ok := m.Responses[input]; ok {
		return resp.Tool, resp.Args, nil
	}
	return m.DefaultTool, nil, nil
}

// PerfectToolSelector answers every test with its expected tool.
type PerfectToolSelector struct {
	suite *ToolSelectionSuite
}

func (p *PerfectToolSelector) SelectTool(input string) (string, map[string]any, error) {
	for _, test := range p.suite.Tests {
		if test.Input == input {
			return test.ExpectedTool, test.ExpectedArgs, nil
		}
	}
	return "", nil, nil
}

func TestLoadToolSelectionSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load tool selection suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}
	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}

	test := suite.Tests[0]
	if test.ID == "" {
		t.Error("Test ID should not be empty")
	}
	if test.Input == "" {
		t.Error("Test input should not be empty")
	}
	if test.ExpectedTool == "" {
		t.Error("Expected tool should not be empty")
	}
}

func TestLoadConfusionPairSuite(t *testing.T) {
	suite, err := LoadConfusionPairSuite(filepath.Join(".", "confusion_pairs.json"))
	if err != nil {
		t.Fatalf("Failed to load confusion pair suite: %v", err)
	}

	if len(suite.Pairs) == 0 {
		t.Fatal("Suite should have confusion pairs")
	}

	pair := suite.Pairs[0]
	if pair.ID == "" {
		t.Error("Pair ID should not be empty")
	}
	if len(pair.Tools) < 2 {
		t.Error("Pair should have at least 2 tools")
	}
	if len(pair.Tests) == 0 {
		t.Error("Pair should have tests")
	}
}

func TestLoadArgumentSuite(t *testing.T) {
	suite, err := LoadArgumentSuite(filepath.Join(".", "argument_correctness.json"))
	if err != nil {
		t.Fatalf("Failed to load argument suite: %v", err)
	}

	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}
	for _, test := range suite.Tests {
		if test.Tool == "" {
			t.Errorf("Test %s has no tool", test.ID)
		}
	}
}

func TestSuitesReferenceOnlyKnownTools(t *testing.T) {
	selection, confusion, arguments, err := LoadAllEvals(".")
	if err != nil {
		t.Fatalf("Failed to load evals: %v", err)
	}

	for _, problem := range ValidateSuites(selection, confusion, arguments) {
		t.Error(problem)
	}
}

func TestEvaluateToolSelectionPerfect(t *testing.T) {
	suite, err := LoadToolSelectionSuite("tool_selection.json")
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	metrics, results := EvaluateToolSelection(suite, &PerfectToolSelector{suite: suite})

	if metrics.Accuracy != 1.0 {
		t.Errorf("perfect selector accuracy = %v, want 1.0; failures: %v",
			metrics.Accuracy, metrics.FailedDetails)
	}
	if len(results) != len(suite.Tests) {
		t.Errorf("got %d results for %d tests", len(results), len(suite.Tests))
	}
}

func TestEvaluateToolSelectionWrongTool(t *testing.T) {
	suite := &ToolSelectionSuite{
		Name: "test",
		Tests: []ToolSelectionTest{
			{
				ID:           "t1",
				Category:     "search",
				Input:        "find diabetes trials",
				ExpectedTool: "search_trials_by_condition",
				NotTools:     []string{"search_trials_by_intervention"},
			},
		},
	}

	selector := &MockToolSelector{DefaultTool: "search_trials_by_intervention"}
	metrics, results := EvaluateToolSelection(suite, selector)

	if metrics.PassedTests != 0 || metrics.FailedTests != 1 {
		t.Errorf("passed=%d failed=%d, want 0/1", metrics.PassedTests, metrics.FailedTests)
	}
	if results[0].Passed {
		t.Error("result should have failed")
	}
	// Wrong tool AND forbidden tool both reported.
	if len(results[0].Errors) < 2 {
		t.Errorf("expected two errors, got %v", results[0].Errors)
	}
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite, err := LoadConfusionPairSuite("confusion_pairs.json")
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	// A selector that always answers condition search fails every test
	// expecting something else.
	selector := &MockToolSelector{DefaultTool: "search_trials_by_condition"}
	metrics, _ := EvaluateConfusionPairs(suite, selector)

	if metrics.TotalTests == 0 {
		t.Fatal("no tests ran")
	}
	if metrics.PassedTests == metrics.TotalTests {
		t.Error("a constant selector should not pass every disambiguation test")
	}
}

func TestEvaluateArguments(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "test",
		Tests: []ArgumentTest{
			{
				ID:            "a1",
				Tool:          "search_trials_by_condition",
				Input:         "find up to 10 breast cancer trials",
				RequiredArgs:  []string{"conditions"},
				ExpectedArgs:  map[string]any{"max_studies": 10},
				ForbiddenArgs: []string{"sponsors"},
			},
		},
	}

	t.Run("correct arguments pass", func(t *testing.T) {
		selector := &MockToolSelector{
			Responses: map[string]struct {
				Tool string
				Args map[string]any
			}{
				"find up to 10 breast cancer trials": {
					Tool: "search_trials_by_condition",
					Args: map[string]any{
						"conditions":  []any{"breast cancer"},
						"max_studies": float64(10),
					},
				},
			},
		}

		metrics, _ := EvaluateArguments(suite, selector)
		if metrics.PassedTests != 1 {
			t.Errorf("passed=%d, details: %v", metrics.PassedTests, metrics.FailedDetails)
		}
	})

	t.Run("forbidden argument fails", func(t *testing.T) {
		selector := &MockToolSelector{
			Responses: map[string]struct {
				Tool string
				Args map[string]any
			}{
				"find up to 10 breast cancer trials": {
					Tool: "search_trials_by_condition",
					Args: map[string]any{
						"conditions":  []any{"breast cancer"},
						"max_studies": float64(10),
						"sponsors":    []any{"Pfizer"},
					},
				},
			},
		}

		metrics, _ := EvaluateArguments(suite, selector)
		if metrics.FailedTests != 1 {
			t.Error("forbidden argument should fail the test")
		}
	})
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"int vs float64", 10, float64(10), true},
		{"int vs wrong float64", 10, float64(11), false},
		{"equal slices", []any{"x"}, []any{"x"}, true},
		{"different length slices", []any{"x"}, []any{"x", "y"}, false},
		{"both nil", nil, nil, true},
		{"one nil", nil, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.expected, tt.actual); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := newMetrics()
	metrics.record("search", Result{TestID: "t1", Input: "x", Passed: true})
	metrics.record("search", Result{TestID: "t2", Input: "y", Passed: false, Errors: []string{"wrong tool"}})
	metrics.finish()

	out := FormatMetrics(metrics, "Test Suite")
	for _, want := range []string{"Test Suite", "Total: 2", "Passed: 1", "Failed: 1", "search", "wrong tool"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatMetrics output missing %q:\n%s", want, out)
		}
	}
}
