package ctgov

// Study is one ClinicalTrials.gov study record as returned by the API:
// an optional top-level hasResults flag plus a protocolSection object
// keyed by module name. The tree is read-only once decoded; projection
// builds new trees instead of modifying it.
type Study map[string]any

// SearchResponse is the wire shape of GET /studies.
type SearchResponse struct {
	Studies       []Study `json:"studies"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
	TotalCount    int     `json:"totalCount,omitempty"`
}

// ProtocolSection returns the study's protocolSection object, or nil.
func (s Study) ProtocolSection() map[string]any {
	section, _ := s["protocolSection"].(map[string]any)
	return section
}

// Module returns the named module within the protocol section, or nil.
func (s Study) Module(name string) map[string]any {
	module, _ := s.ProtocolSection()[name].(map[string]any)
	return module
}

// NCTID returns the study's NCT ID, or "" when absent.
func (s Study) NCTID() string {
	id, _ := s.Module("identificationModule")["nctId"].(string)
	return id
}

// Acronym returns the study's acronym, or "" when absent.
func (s Study) Acronym() string {
	acronym, _ := s.Module("identificationModule")["acronym"].(string)
	return acronym
}

// Phases returns the study's phase list. Studies without a designModule
// phases entry report ["Unknown"], matching how phase distribution
// analysis buckets them.
func (s Study) Phases() []string {
	raw, ok := s.Module("designModule")["phases"].([]any)
	if !ok || len(raw) == 0 {
		return []string{"Unknown"}
	}
	phases := make([]string, 0, len(raw))
	for _, p := range raw {
		if phase, ok := p.(string); ok {
			phases = append(phases, phase)
		}
	}
	if len(phases) == 0 {
		return []string{"Unknown"}
	}
	return phases
}

// HasResults reports the top-level results flag and whether it was present.
func (s Study) HasResults() (value, ok bool) {
	value, ok = s["hasResults"].(bool)
	return value, ok
}
