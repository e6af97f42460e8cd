package ctgov

import (
	"reflect"
	"testing"
)

func TestStudyAccessors(t *testing.T) {
	study := sampleStudy()

	if study.NCTID() != "NCT01234567" {
		t.Errorf("NCTID = %q", study.NCTID())
	}
	if study.Acronym() != "SOS" {
		t.Errorf("Acronym = %q", study.Acronym())
	}
	if got := study.Phases(); !reflect.DeepEqual(got, []string{"PHASE3"}) {
		t.Errorf("Phases = %v", got)
	}
	if v, ok := study.HasResults(); !ok || v {
		t.Errorf("HasResults = %v, %v", v, ok)
	}
}

func TestStudyAccessorsOnEmptyRecord(t *testing.T) {
	var study Study

	// Accessors must tolerate any missing level without panicking.
	if study.NCTID() != "" {
		t.Errorf("NCTID = %q", study.NCTID())
	}
	if study.Acronym() != "" {
		t.Errorf("Acronym = %q", study.Acronym())
	}
	if got := study.Phases(); !reflect.DeepEqual(got, []string{"Unknown"}) {
		t.Errorf("Phases = %v, want [Unknown]", got)
	}
	if _, ok := study.HasResults(); ok {
		t.Error("HasResults should report absence")
	}
	if study.Module("designModule") != nil {
		t.Error("Module on empty record should be nil")
	}
}

func TestStudyPhasesNonStringEntries(t *testing.T) {
	study := Study{
		"protocolSection": map[string]any{
			"designModule": map[string]any{
				"phases": []any{1.0, true},
			},
		},
	}
	if got := study.Phases(); !reflect.DeepEqual(got, []string{"Unknown"}) {
		t.Errorf("Phases = %v, want [Unknown]", got)
	}
}
