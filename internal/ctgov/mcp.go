package ctgov

import (
	"context"
	"math"
	"strings"

	cterrors "github.com/olgasafonova/clinicaltrials-mcp-server/internal/errors"
	"github.com/olgasafonova/clinicaltrials-mcp-server/metrics"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration. Every search fetches full records from the registry and
// applies normalization + projection locally.

// searchAndProject runs a search and trims each study to the requested
// fields. An empty field list falls back to DefaultStudyFields.
func (c *Client) searchAndProject(ctx context.Context, query SearchQuery, fields []string) (SearchResult, error) {
	resp, err := c.SearchStudies(ctx, query)
	if err != nil {
		return SearchResult{}, err
	}

	canonical := NormalizeFields(fields)
	if len(canonical) == 0 {
		canonical = DefaultStudyFields
	}
	metrics.ProjectedFields.Observe(float64(len(canonical)))

	studies := ProjectAll(resp.Studies, canonical)
	return SearchResult{
		Studies:    studies,
		Count:      len(studies),
		TotalCount: resp.TotalCount,
	}, nil
}

// SearchByConditionMCP is the MCP wrapper for condition search.
func (c *Client) SearchByConditionMCP(ctx context.Context, args SearchByConditionArgs) (SearchResult, error) {
	if len(args.Conditions) == 0 {
		return SearchResult{}, cterrors.NewValidationError("conditions", "", "at least one condition is required")
	}
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return SearchResult{}, err
	}

	return c.searchAndProject(ctx, SearchQuery{
		Conditions: args.Conditions,
		MaxStudies: args.MaxStudies,
	}, args.Fields)
}

// SearchByInterventionMCP is the MCP wrapper for intervention search.
func (c *Client) SearchByInterventionMCP(ctx context.Context, args SearchByInterventionArgs) (SearchResult, error) {
	if len(args.Interventions) == 0 {
		return SearchResult{}, cterrors.NewValidationError("interventions", "", "at least one intervention is required")
	}
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return SearchResult{}, err
	}

	return c.searchAndProject(ctx, SearchQuery{
		Interventions: args.Interventions,
		MaxStudies:    args.MaxStudies,
	}, args.Fields)
}

// SearchBySponsorMCP is the MCP wrapper for sponsor search.
func (c *Client) SearchBySponsorMCP(ctx context.Context, args SearchBySponsorArgs) (SearchResult, error) {
	if len(args.Sponsors) == 0 {
		return SearchResult{}, cterrors.NewValidationError("sponsors", "", "at least one sponsor is required")
	}
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return SearchResult{}, err
	}

	return c.searchAndProject(ctx, SearchQuery{
		Sponsors:   args.Sponsors,
		MaxStudies: args.MaxStudies,
	}, args.Fields)
}

// SearchByAcronymMCP searches by study acronym. The registry has no
// acronym-only filter, so this fetches full records via a title/acronym
// query and applies the acronym match locally before projection.
func (c *Client) SearchByAcronymMCP(ctx context.Context, args SearchByAcronymArgs) (SearchResult, error) {
	acronym := strings.TrimSpace(args.Acronym)
	if acronym == "" {
		return SearchResult{}, cterrors.NewValidationError("acronym", "", "acronym is required")
	}
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return SearchResult{}, err
	}

	resp, err := c.SearchStudies(ctx, SearchQuery{
		Titles:     []string{acronym},
		MaxStudies: args.MaxStudies,
	})
	if err != nil {
		return SearchResult{}, err
	}

	matched := filterByAcronym(resp.Studies, acronym, args.ExactMatch)

	canonical := NormalizeFields(args.Fields)
	if len(canonical) == 0 {
		canonical = DefaultStudyFields
	}

	studies := ProjectAll(matched, canonical)
	return SearchResult{Studies: studies, Count: len(studies)}, nil
}

// filterByAcronym keeps studies whose acronym matches the query,
// case-insensitively, by substring or exact comparison.
func filterByAcronym(studies []Study, acronym string, exact bool) []Study {
	want := strings.ToLower(acronym)
	matched := make([]Study, 0, len(studies))
	for _, study := range studies {
		have := strings.ToLower(study.Acronym())
		if have == "" {
			continue
		}
		if exact && have == want || !exact && strings.Contains(have, want) {
			matched = append(matched, study)
		}
	}
	return matched
}

// SearchCombinedMCP is the MCP wrapper for multi-criteria search.
func (c *Client) SearchCombinedMCP(ctx context.Context, args SearchCombinedArgs) (SearchResult, error) {
	if !hasAnyFilter(args.Conditions, args.Interventions, args.Sponsors, args.Terms, args.NCTIDs) {
		return SearchResult{}, cterrors.NewValidationError("", "", "at least one search filter is required")
	}
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return SearchResult{}, err
	}

	return c.searchAndProject(ctx, SearchQuery{
		Conditions:    args.Conditions,
		Interventions: args.Interventions,
		Sponsors:      args.Sponsors,
		Terms:         args.Terms,
		NCTIDs:        normalizeNCTIDList(args.NCTIDs),
		MaxStudies:    args.MaxStudies,
	}, args.Fields)
}

// SearchByNCTIDsMCP retrieves studies for an explicit ID list, preserving
// the caller's ordering.
func (c *Client) SearchByNCTIDsMCP(ctx context.Context, args SearchByNCTIDsArgs) (SearchResult, error) {
	if len(args.NCTIDs) == 0 {
		return SearchResult{}, cterrors.NewValidationError("nct_ids", "", "at least one NCT ID is required")
	}
	for _, id := range args.NCTIDs {
		if err := ValidateNCTID(id); err != nil {
			return SearchResult{}, err
		}
	}

	studies, err := c.GetStudiesByIDs(ctx, args.NCTIDs)
	if err != nil {
		return SearchResult{}, err
	}

	canonical := NormalizeFields(args.Fields)
	if len(canonical) == 0 {
		canonical = DefaultStudyFields
	}

	projected := ProjectAll(studies, canonical)
	return SearchResult{Studies: projected, Count: len(projected)}, nil
}

// GetTrialDetailsMCP retrieves one study. Without a field list the full
// record is returned untouched.
func (c *Client) GetTrialDetailsMCP(ctx context.Context, args GetTrialDetailsArgs) (GetTrialDetailsResult, error) {
	if err := ValidateNCTID(args.NCTID); err != nil {
		return GetTrialDetailsResult{}, err
	}

	study, err := c.GetStudy(ctx, NormalizeNCTID(args.NCTID))
	if err != nil {
		return GetTrialDetailsResult{}, err
	}

	return GetTrialDetailsResult{Study: Project(study, NormalizeFields(args.Fields))}, nil
}

// NCTIDsOnlyMCP is a lightweight discovery search projecting down to the
// minimal field set.
func (c *Client) NCTIDsOnlyMCP(ctx context.Context, args NCTIDsOnlyArgs) (SearchResult, error) {
	if !hasAnyFilter(args.Conditions, args.Interventions, args.Sponsors, args.Terms) {
		return SearchResult{}, cterrors.NewValidationError("", "", "at least one search filter is required")
	}
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return SearchResult{}, err
	}

	maxStudies := args.MaxStudies
	if maxStudies == 0 {
		maxStudies = 100
	}

	resp, err := c.SearchStudies(ctx, SearchQuery{
		Conditions:    args.Conditions,
		Interventions: args.Interventions,
		Sponsors:      args.Sponsors,
		Terms:         args.Terms,
		MaxStudies:    maxStudies,
	})
	if err != nil {
		return SearchResult{}, err
	}

	studies := ProjectAll(resp.Studies, MinimalStudyFields)
	return SearchResult{Studies: studies, Count: len(studies), TotalCount: resp.TotalCount}, nil
}

// AnalyzePhasesMCP computes the phase distribution for studies matching
// the given filters.
func (c *Client) AnalyzePhasesMCP(ctx context.Context, args AnalyzePhasesArgs) (AnalyzePhasesResult, error) {
	if err := ValidateMaxStudies(args.MaxStudies); err != nil {
		return AnalyzePhasesResult{}, err
	}

	maxStudies := args.MaxStudies
	if maxStudies == 0 {
		maxStudies = MaxPageSize
	}

	resp, err := c.SearchStudies(ctx, SearchQuery{
		Conditions:    args.Conditions,
		Interventions: args.Interventions,
		Sponsors:      args.Sponsors,
		MaxStudies:    maxStudies,
	})
	if err != nil {
		return AnalyzePhasesResult{}, err
	}

	counts := make(map[string]int)
	for _, study := range resp.Studies {
		for _, phase := range study.Phases() {
			counts[phase]++
		}
	}

	total := len(resp.Studies)
	percentages := make(map[string]float64, len(counts))
	for phase, count := range counts {
		if total > 0 {
			percentages[phase] = math.Round(float64(count)/float64(total)*10000) / 100
		} else {
			percentages[phase] = 0
		}
	}

	return AnalyzePhasesResult{
		TotalStudies:      total,
		PhaseDistribution: counts,
		PhasePercentages:  percentages,
	}, nil
}

// FieldStatsMCP retrieves field value statistics.
func (c *Client) FieldStatsMCP(ctx context.Context, args FieldStatsArgs) (FieldStatsResult, error) {
	if err := ValidateFieldStatsTypes(args.FieldTypes); err != nil {
		return FieldStatsResult{}, err
	}

	stats, err := c.FieldStats(ctx, args.FieldNames, args.FieldTypes)
	if err != nil {
		return FieldStatsResult{}, err
	}
	return FieldStatsResult{Stats: stats}, nil
}

// AvailableFieldsMCP lists the field vocabulary. An unknown category
// falls back to the full listing rather than erroring.
func (c *Client) AvailableFieldsMCP(ctx context.Context, args AvailableFieldsArgs) (AvailableFieldsResult, error) {
	if args.Category != "" {
		for _, cat := range FieldCategories {
			if cat.Name == args.Category {
				return AvailableFieldsResult{
					Category:    cat.Name,
					Description: cat.Description,
					Fields:      cat.Fields,
				}, nil
			}
		}
	}

	return AvailableFieldsResult{
		DefaultFields: DefaultStudyFields,
		MinimalFields: MinimalStudyFields,
		Categories:    FieldCategories,
	}, nil
}

// normalizeNCTIDList trims, uppercases and deduplicates an NCT ID list,
// preserving first-seen order.
func normalizeNCTIDList(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = NormalizeNCTID(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
