package ctgov

// SearchByConditionArgs contains parameters for condition search.
type SearchByConditionArgs struct {
	Conditions []string `json:"conditions" jsonschema:"required" jsonschema_description:"Medical conditions to search for (OR semantics)"`
	MaxStudies int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to return (default 50, max 1000)"`
	Fields     []string `json:"fields,omitempty" jsonschema_description:"Field names to include in results; defaults to a curated set"`
}

// SearchByInterventionArgs contains parameters for intervention search.
type SearchByInterventionArgs struct {
	Interventions []string `json:"interventions" jsonschema:"required" jsonschema_description:"Interventions or treatments to search for (OR semantics)"`
	MaxStudies    int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to return (default 50, max 1000)"`
	Fields        []string `json:"fields,omitempty" jsonschema_description:"Field names to include in results; defaults to a curated set"`
}

// SearchBySponsorArgs contains parameters for sponsor search.
type SearchBySponsorArgs struct {
	Sponsors   []string `json:"sponsors" jsonschema:"required" jsonschema_description:"Sponsor organizations to search for (OR semantics)"`
	MaxStudies int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to return (default 50, max 1000)"`
	Fields     []string `json:"fields,omitempty" jsonschema_description:"Field names to include in results; defaults to a curated set"`
}

// SearchByAcronymArgs contains parameters for acronym search.
type SearchByAcronymArgs struct {
	Acronym    string   `json:"acronym" jsonschema:"required" jsonschema_description:"Study acronym to search for (e.g. RECOVERY, SOLIDARITY)"`
	ExactMatch bool     `json:"exact_match,omitempty" jsonschema_description:"Require an exact acronym match instead of substring matching"`
	MaxStudies int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to return (default 50, max 1000)"`
	Fields     []string `json:"fields,omitempty" jsonschema_description:"Field names to include in results; defaults to a curated set"`
}

// SearchCombinedArgs contains parameters for multi-criteria search.
type SearchCombinedArgs struct {
	Conditions    []string `json:"conditions,omitempty" jsonschema_description:"Medical conditions to search for"`
	Interventions []string `json:"interventions,omitempty" jsonschema_description:"Interventions or treatments to search for"`
	Sponsors      []string `json:"sponsors,omitempty" jsonschema_description:"Sponsor organizations to search for"`
	Terms         []string `json:"terms,omitempty" jsonschema_description:"General free-text search terms"`
	NCTIDs        []string `json:"nct_ids,omitempty" jsonschema_description:"Specific NCT IDs to include"`
	MaxStudies    int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to return (default 50, max 1000)"`
	Fields        []string `json:"fields,omitempty" jsonschema_description:"Field names to include in results; defaults to a curated set"`
}

// SearchResult is the common result shape for search tools.
type SearchResult struct {
	Studies    []Study `json:"studies"`
	Count      int     `json:"count"`
	TotalCount int     `json:"total_count,omitempty"`
}

// SearchByNCTIDsArgs contains parameters for batched detail retrieval.
type SearchByNCTIDsArgs struct {
	NCTIDs []string `json:"nct_ids" jsonschema:"required" jsonschema_description:"NCT IDs to retrieve, e.g. ['NCT04280705','NCT04280718']; results keep this order"`
	Fields []string `json:"fields,omitempty" jsonschema_description:"Field names to include in results; defaults to a curated set"`
}

// GetTrialDetailsArgs contains parameters for single-study retrieval.
type GetTrialDetailsArgs struct {
	NCTID  string   `json:"nct_id" jsonschema:"required" jsonschema_description:"NCT ID of the trial to retrieve, e.g. 'NCT04280705'"`
	Fields []string `json:"fields,omitempty" jsonschema_description:"Field names to include; omit for the full record"`
}

// GetTrialDetailsResult is the result of single-study retrieval.
type GetTrialDetailsResult struct {
	Study Study `json:"study"`
}

// NCTIDsOnlyArgs contains parameters for lightweight discovery search.
type NCTIDsOnlyArgs struct {
	Conditions    []string `json:"conditions,omitempty" jsonschema_description:"Medical conditions to search for"`
	Interventions []string `json:"interventions,omitempty" jsonschema_description:"Interventions or treatments to search for"`
	Sponsors      []string `json:"sponsors,omitempty" jsonschema_description:"Sponsor organizations to search for"`
	Terms         []string `json:"terms,omitempty" jsonschema_description:"General free-text search terms"`
	MaxStudies    int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to return (default 100, max 1000)"`
}

// AnalyzePhasesArgs contains parameters for phase distribution analysis.
type AnalyzePhasesArgs struct {
	Conditions    []string `json:"conditions,omitempty" jsonschema_description:"Medical conditions to filter the analysis"`
	Interventions []string `json:"interventions,omitempty" jsonschema_description:"Interventions to filter the analysis"`
	Sponsors      []string `json:"sponsors,omitempty" jsonschema_description:"Sponsors to filter the analysis"`
	MaxStudies    int      `json:"max_studies,omitempty" jsonschema_description:"Maximum number of studies to analyze (default 1000)"`
}

// AnalyzePhasesResult is the phase distribution for a set of studies.
type AnalyzePhasesResult struct {
	TotalStudies      int                `json:"total_studies"`
	PhaseDistribution map[string]int     `json:"phase_distribution"`
	PhasePercentages  map[string]float64 `json:"phase_percentages"`
}

// FieldStatsArgs contains parameters for field statistics retrieval.
type FieldStatsArgs struct {
	FieldNames []string `json:"field_names,omitempty" jsonschema_description:"Field names to get statistics for"`
	FieldTypes []string `json:"field_types,omitempty" jsonschema_description:"Field types to filter by (ENUM, STRING, DATE, INTEGER, NUMBER, BOOLEAN)"`
}

// FieldStatsResult wraps the raw statistics document from the registry.
type FieldStatsResult struct {
	Stats map[string]any `json:"stats"`
}

// AvailableFieldsArgs contains parameters for field discovery.
type AvailableFieldsArgs struct {
	Category string `json:"category,omitempty" jsonschema_description:"Specific category to return (identification, status, conditions, design, interventions, arms, outcomes, eligibility, locations, sponsors, descriptions, contacts, results)"`
}

// AvailableFieldsResult lists the field vocabulary. When a known category
// is requested only that category is populated; otherwise the full
// listing with defaults is returned.
type AvailableFieldsResult struct {
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	Fields        []string        `json:"fields,omitempty"`
	DefaultFields []string        `json:"default_fields,omitempty"`
	MinimalFields []string        `json:"minimal_fields,omitempty"`
	Categories    []FieldCategory `json:"categories,omitempty"`
}
