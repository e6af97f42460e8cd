package ctgov

import (
	"reflect"
	"testing"
)

func TestNormalizeFields(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "empty input",
			input: nil,
			want:  []string{},
		},
		{
			name:  "canonical names pass through",
			input: []string{"NCTId", "Condition", "BriefTitle"},
			want:  []string{"NCTId", "Condition", "BriefTitle"},
		},
		{
			name:  "case insensitive aliases",
			input: []string{"nctid", "Phase", "PHASES"},
			want:  []string{"NCTId", "Phase"},
		},
		{
			name:  "sponsor expands to two fields",
			input: []string{"sponsor"},
			want:  []string{"LeadSponsorName", "CollaboratorName"},
		},
		{
			name:  "sponsor expansion skips already present fields",
			input: []string{"CollaboratorName", "sponsors"},
			want:  []string{"CollaboratorName", "LeadSponsorName"},
		},
		{
			name:  "dedup across aliases",
			input: []string{"Condition", "conditions", "Condition"},
			want:  []string{"Condition"},
		},
		{
			name:  "intervention variants",
			input: []string{"intervention", "interventions", "InterventionName"},
			want:  []string{"InterventionName"},
		},
		{
			name:  "whitespace insensitive matching",
			input: []string{"brief title", "  BriefTitle  "},
			want:  []string{"BriefTitle"},
		},
		{
			name:  "blank entries ignored",
			input: []string{"", "   ", "Phase"},
			want:  []string{"Phase"},
		},
		{
			name:  "unknown tokens pass through trimmed",
			input: []string{"  NotARealField  "},
			want:  []string{"NotARealField"},
		},
		{
			name:  "hasresults alias",
			input: []string{"hasresults"},
			want:  []string{"HasResults"},
		},
		{
			name:  "leadsponsor and collaborator shorthand",
			input: []string{"leadsponsor", "collaborators"},
			want:  []string{"LeadSponsorName", "CollaboratorName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeFields(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFieldsIdempotent(t *testing.T) {
	inputs := [][]string{
		{"sponsor", "phase", "nctid"},
		{"Condition", "conditions", "brief title"},
		{"intervention", "collaborator", "hasresults", "Unknown"},
		DefaultStudyFields,
		MinimalStudyFields,
	}

	for _, input := range inputs {
		once := NormalizeFields(input)
		twice := NormalizeFields(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("NormalizeFields not idempotent for %v: first %v, second %v", input, once, twice)
		}
	}
}

func TestFieldMappingsCoverCategories(t *testing.T) {
	// Every field listed in a category must either map to a module+path
	// or be the top-level HasResults flag.
	for _, cat := range FieldCategories {
		for _, field := range cat.Fields {
			if field == FieldHasResults {
				continue
			}
			if _, ok := fieldMappings[field]; !ok {
				t.Errorf("category %s lists field %s with no mapping", cat.Name, field)
			}
		}
	}
}

func TestDefaultFieldsAreCanonical(t *testing.T) {
	for _, field := range DefaultStudyFields {
		if _, ok := fieldMappings[field]; !ok && field != FieldHasResults {
			t.Errorf("default field %s has no mapping", field)
		}
	}
	for _, field := range MinimalStudyFields {
		if _, ok := fieldMappings[field]; !ok {
			t.Errorf("minimal field %s has no mapping", field)
		}
	}
}

func TestFieldMappingModules(t *testing.T) {
	// Spot-check the dotted paths that the projector depends on.
	tests := []struct {
		field  string
		module string
		path   string
	}{
		{FieldNCTId, "identificationModule", "nctId"},
		{FieldDesignAllocation, "designModule", "designInfo.allocation"},
		{FieldDesignMasking, "designModule", "designInfo.maskingInfo.masking"},
		{FieldLeadSponsorName, "sponsorCollaboratorsModule", "leadSponsor.name"},
		{FieldLastUpdatePostDate, "statusModule", "lastUpdatePostDateStruct.date"},
		{FieldCondition, "conditionsModule", "conditions"},
	}

	for _, tt := range tests {
		m, ok := fieldMappings[tt.field]
		if !ok {
			t.Errorf("no mapping for %s", tt.field)
			continue
		}
		if m.Module != tt.module || m.Path != tt.path {
			t.Errorf("mapping for %s = (%s, %s), want (%s, %s)", tt.field, m.Module, m.Path, tt.module, tt.path)
		}
	}
}
