// Command benchmark measures field normalization and projection
// throughput over a synthetic study record. It runs entirely locally so
// numbers reflect the projection engine, not registry latency.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/olgasafonova/clinicaltrials-mcp-server/internal/ctgov"
)

const syntheticStudy = `{
	"protocolSection": {
		"identificationModule": {
			"nctId": "NCT01234567",
			"briefTitle": "A Phase 3 Study of Example Drug in Example Disease",
			"officialTitle": "A Randomized, Double-Blind, Placebo-Controlled Phase 3 Study of Example Drug",
			"acronym": "EXAMPLE-3",
			"secondaryIdInfos": [{"id": "EX-301", "type": "OTHER"}]
		},
		"statusModule": {
			"overallStatus": "RECRUITING",
			"statusVerifiedDate": "2025-06",
			"startDateStruct": {"date": "2024-01-15", "type": "ACTUAL"},
			"primaryCompletionDateStruct": {"date": "2026-06-30", "type": "ESTIMATED"},
			"completionDateStruct": {"date": "2027-01-31", "type": "ESTIMATED"},
			"lastUpdatePostDateStruct": {"date": "2025-06-01", "type": "ACTUAL"}
		},
		"conditionsModule": {
			"conditions": ["Example Disease", "Related Syndrome"],
			"keywords": ["example drug", "phase 3", "randomized"]
		},
		"designModule": {
			"studyType": "INTERVENTIONAL",
			"phases": ["PHASE3"],
			"designInfo": {
				"allocation": "RANDOMIZED",
				"interventionModel": "PARALLEL",
				"primaryPurpose": "TREATMENT",
				"maskingInfo": {"masking": "DOUBLE"}
			}
		},
		"armsInterventionsModule": {
			"armGroups": [
				{"label": "Example Drug", "type": "EXPERIMENTAL", "description": "Example drug 10 mg daily"},
				{"label": "Placebo", "type": "PLACEBO_COMPARATOR", "description": "Matching placebo daily"}
			],
			"interventions": [
				{"type": "DRUG", "name": "Example Drug", "description": "10 mg oral tablet"},
				{"type": "DRUG", "name": "Placebo", "description": "Matching oral tablet"}
			]
		},
		"outcomesModule": {
			"primaryOutcomes": [{"measure": "Change in symptom score", "timeFrame": "Week 52"}],
			"secondaryOutcomes": [{"measure": "Quality of life", "timeFrame": "Week 52"}]
		},
		"eligibilityModule": {
			"eligibilityCriteria": "Inclusion Criteria: adults 18-75 with confirmed diagnosis...",
			"healthyVolunteers": false,
			"sex": "ALL",
			"minimumAge": "18 Years",
			"maximumAge": "75 Years",
			"stdAges": ["ADULT", "OLDER_ADULT"]
		},
		"contactsLocationsModule": {
			"locations": [
				{"facility": "Example Medical Center", "city": "Boston", "state": "Massachusetts", "country": "United States"},
				{"facility": "Example University Hospital", "city": "Chicago", "state": "Illinois", "country": "United States"}
			]
		},
		"sponsorCollaboratorsModule": {
			"leadSponsor": {"name": "Example Pharma Inc.", "class": "INDUSTRY"},
			"collaborators": [{"name": "Example University", "class": "OTHER"}],
			"responsibleParty": {"type": "SPONSOR"}
		},
		"descriptionModule": {
			"briefSummary": "This study evaluates example drug versus placebo.",
			"detailedDescription": "A longer description of the study design and rationale."
		}
	},
	"hasResults": false
}`

func main() {
	fmt.Println("Clinical Trials MCP Server - Projection Benchmarks")
	fmt.Println("==================================================")
	fmt.Println()

	var study ctgov.Study
	if err := json.Unmarshal([]byte(syntheticStudy), &study); err != nil {
		panic(err)
	}

	measureNormalization()
	measureProjection(study)
	measureBatchProjection(study)
}

func measureNormalization() {
	inputs := []string{
		"nctid", "brief title", "sponsor", "PHASES", "conditions",
		"intervention", "EligibilityCriteria", "hasresults", "collaborators",
	}

	const iterations = 100000
	start := time.Now()
	for i := 0; i < iterations; i++ {
		ctgov.NormalizeFields(inputs)
	}
	elapsed := time.Since(start)

	fmt.Println("1. Field Normalization:")
	fmt.Printf("   %d fields per call, %d iterations\n", len(inputs), iterations)
	fmt.Printf("   Total: %v, per call: %v\n", elapsed, elapsed/iterations)
	fmt.Println()
}

func measureProjection(study ctgov.Study) {
	fieldSets := map[string][]string{
		"minimal (3 fields)":  ctgov.MinimalStudyFields,
		"default (24 fields)": ctgov.DefaultStudyFields,
		"nested paths only":   {"DesignAllocation", "DesignMasking", "LeadSponsorName", "StartDate"},
	}

	const iterations = 50000

	fmt.Println("2. Single-Study Projection:")
	for name, fields := range fieldSets {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			ctgov.Project(study, fields)
		}
		elapsed := time.Since(start)
		fmt.Printf("   %-20s: %v per projection\n", name, elapsed/iterations)
	}
	fmt.Println()
}

func measureBatchProjection(study ctgov.Study) {
	const pageSize = 1000
	studies := make([]ctgov.Study, pageSize)
	for i := range studies {
		studies[i] = study
	}

	start := time.Now()
	ctgov.ProjectAll(studies, ctgov.DefaultStudyFields)
	elapsed := time.Since(start)

	fmt.Println("3. Full-Page Projection (1000 studies, default fields):")
	fmt.Printf("   Total: %v, per study: %v\n", elapsed, elapsed/pageSize)
	fmt.Println()
}
