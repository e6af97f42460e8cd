package tools

// AllTools contains all tool specifications for the Clinical Trials MCP
// server. Tool descriptions follow a structured format for optimal LLM
// tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "search_trials_by_condition",
		Method:   "SearchByCondition",
		Title:    "Search Trials by Condition",
		Category: "search",
		Description: `Search clinical trials by medical condition(s).

USE WHEN: User asks "find trials for X", "what studies exist for diabetes", or names a disease or condition.

NOT FOR: Searching by drug or treatment (use search_trials_by_intervention). Not for retrieving known NCT IDs (use search_trials_by_nct_ids).

PARAMETERS:
- conditions: Medical conditions, OR semantics (required), e.g. ['cancer', 'diabetes']
- max_studies: Max results (default 50, max 1000)
- fields: Field names to include (default: curated set)

RETURNS: Matching studies trimmed to the requested fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_trials_by_intervention",
		Method:   "SearchByIntervention",
		Title:    "Search Trials by Intervention",
		Category: "search",
		Description: `Search clinical trials by intervention or treatment.

USE WHEN: User asks about trials testing a specific drug, device, procedure, or therapy, e.g. "trials using aspirin".

NOT FOR: Searching by disease (use search_trials_by_condition).

PARAMETERS:
- interventions: Treatments, OR semantics (required), e.g. ['aspirin', 'chemotherapy']
- max_studies: Max results (default 50, max 1000)
- fields: Field names to include (default: curated set)

RETURNS: Matching studies trimmed to the requested fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_trials_by_sponsor",
		Method:   "SearchBySponsor",
		Title:    "Search Trials by Sponsor",
		Category: "search",
		Description: `Search clinical trials by sponsoring organization.

USE WHEN: User asks "what trials does Pfizer run", "studies sponsored by NIH".

NOT FOR: Searching by condition or treatment.

PARAMETERS:
- sponsors: Organizations, OR semantics (required), e.g. ['National Cancer Institute', 'Pfizer']
- max_studies: Max results (default 50, max 1000)
- fields: Field names to include (default: curated set)

RETURNS: Matching studies trimmed to the requested fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_trials_by_acronym",
		Method:   "SearchByAcronym",
		Title:    "Search Trials by Acronym",
		Category: "search",
		Description: `Find clinical trials by their study acronym.

USE WHEN: User names a trial by acronym, e.g. "the RECOVERY trial", "find SOLIDARITY".

NOT FOR: Free-text topic searches (use search_trials_combined with terms).

PARAMETERS:
- acronym: Study acronym (required)
- exact_match: Require exact acronym equality instead of substring (default false)
- max_studies: Max results (default 50, max 1000)
- fields: Field names to include (default: curated set)

RETURNS: Studies whose acronym matches, trimmed to the requested fields.

NOTE: The registry has no acronym filter; matching happens locally after a title search.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_trials_combined",
		Method:   "SearchCombined",
		Title:    "Combined Trial Search",
		Category: "search",
		Description: `Search clinical trials using several criteria at once.

USE WHEN: User combines filters, e.g. "Pfizer trials for covid using remdesivir", or uses general keywords.

NOT FOR: Single-criterion searches (the dedicated tools give better results).

PARAMETERS:
- conditions, interventions, sponsors, terms, nct_ids: Filter lists, all optional but at least one required
- max_studies: Max results (default 50, max 1000)
- fields: Field names to include (default: curated set)

RETURNS: Matching studies trimmed to the requested fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DETAIL TOOLS
	// ==========================================================================
	{
		Name:     "search_trials_by_nct_ids",
		Method:   "SearchByNCTIDs",
		Title:    "Get Trials by NCT IDs",
		Category: "detail",
		Description: `Retrieve multiple specific trials by their NCT IDs.

USE WHEN: User has a list of NCT IDs and wants their records, e.g. "fetch NCT04280705 and NCT04280718".

NOT FOR: A single trial (use get_trial_details). Not for discovering trials (use the search tools).

PARAMETERS:
- nct_ids: NCT IDs to retrieve (required); results keep this order
- fields: Field names to include (default: curated set)

RETURNS: Studies in the same order as the input IDs. Unknown IDs are omitted.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_trial_details",
		Method:   "GetTrialDetails",
		Title:    "Get Trial Details",
		Category: "detail",
		Description: `Get comprehensive details for a single clinical trial.

USE WHEN: User asks about one specific trial by NCT ID, e.g. "details for NCT04280705".

NOT FOR: Multiple IDs (use search_trials_by_nct_ids).

PARAMETERS:
- nct_id: NCT ID (required)
- fields: Field names to include; omit for the complete record

RETURNS: The full (or field-trimmed) study record.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DISCOVERY TOOLS
	// ==========================================================================
	{
		Name:     "search_trials_nct_ids_only",
		Method:   "NCTIDsOnly",
		Title:    "Lightweight NCT ID Search",
		Category: "discovery",
		Description: `Lightweight search returning only NCT IDs, titles, and status.

USE WHEN: User wants to discover which trials exist before fetching details, or needs many results cheaply.

NOT FOR: Full study data (use the search tools or get_trial_details afterwards).

PARAMETERS:
- conditions, interventions, sponsors, terms: Filter lists, at least one required
- max_studies: Max results (default 100, max 1000)

RETURNS: Minimal records: NCT ID, brief title, overall status.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_available_fields",
		Method:   "AvailableFields",
		Title:    "List Available Fields",
		Category: "discovery",
		Description: `List the field names accepted by the 'fields' parameter of other tools.

USE WHEN: User asks what data can be requested, or a field name needs checking.

NOT FOR: Fetching study data.

PARAMETERS:
- category: Optional category filter (identification, status, conditions, design, interventions, arms, outcomes, eligibility, locations, sponsors, descriptions, contacts, results)

RETURNS: Field names grouped by category, plus the default and minimal field sets.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  false,
	},

	// ==========================================================================
	// ANALYSIS TOOLS
	// ==========================================================================
	{
		Name:     "analyze_trial_phases",
		Method:   "AnalyzePhases",
		Title:    "Analyze Trial Phases",
		Category: "analysis",
		Description: `Analyze the distribution of trial phases for given search criteria.

USE WHEN: User asks "how many phase 3 trials for X", "phase breakdown of Y studies".

NOT FOR: Listing individual trials (use the search tools).

PARAMETERS:
- conditions, interventions, sponsors: Optional filter lists
- max_studies: Max studies to analyze (default 1000)

RETURNS: Phase counts and percentages across the matching studies.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_field_statistics",
		Method:   "FieldStats",
		Title:    "Get Field Statistics",
		Category: "analysis",
		Description: `Get statistical information about field values across the registry.

USE WHEN: User asks about value distributions, e.g. "what values does OverallStatus take".

NOT FOR: Statistics about a specific set of trials (use analyze_trial_phases or a search).

PARAMETERS:
- field_names: Field names to get statistics for
- field_types: Types to filter by (ENUM, STRING, DATE, INTEGER, NUMBER, BOOLEAN)

RETURNS: The registry's raw field value statistics document.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByCategory returns all tool specs in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
