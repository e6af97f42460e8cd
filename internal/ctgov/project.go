package ctgov

import "strings"

// Project slices a full study record down to the requested canonical
// fields, preserving the record's nested module shape. An empty field list
// means no filtering was requested and the record is returned as-is.
//
// Projection never fails: fields with no mapping, absent modules, and
// broken nested paths are all dropped silently so that upstream schema
// drift can never break a request whose other fields still resolve. The
// input record is never mutated.
func Project(study Study, fields []string) Study {
	if len(fields) == 0 {
		return study
	}

	out := Study{}

	// The top-level results flag is carried over whenever the source has
	// one, whether or not HasResults was requested.
	if hasResults, ok := study["hasResults"]; ok {
		out["hasResults"] = hasResults
	}

	section, _ := study["protocolSection"].(map[string]any)
	outSection := map[string]any{}

	for _, field := range fields {
		if field == FieldHasResults {
			// Already handled above; requesting it is a no-op here.
			continue
		}

		mapping, ok := fieldMappings[field]
		if !ok {
			continue
		}

		module, ok := section[mapping.Module].(map[string]any)
		if !ok || len(module) == 0 {
			continue
		}

		projectPath(module, outSection, mapping.Module, mapping.Path)
	}

	out["protocolSection"] = outSection
	return out
}

// projectPath copies the value at a dotted key chain from a source module
// into the output section, mirroring intermediate objects. The output
// module itself is only created once a value actually lands in it.
func projectPath(srcModule map[string]any, outSection map[string]any, moduleName, path string) {
	segments := strings.Split(path, ".")

	// Walk the source chain first. Every intermediate segment must be an
	// object; bail out silently otherwise.
	cur := srcModule
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			return
		}
		cur = next
	}

	leaf := segments[len(segments)-1]
	value, ok := cur[leaf]
	if !ok {
		return
	}

	// The full chain resolved; mirror it into the output.
	outModule, ok := outSection[moduleName].(map[string]any)
	if !ok {
		outModule = map[string]any{}
		outSection[moduleName] = outModule
	}

	dst := outModule
	for _, seg := range segments[:len(segments)-1] {
		next, ok := dst[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			dst[seg] = next
		}
		dst = next
	}
	dst[leaf] = value
}

// ProjectAll applies Project to each study in a slice.
func ProjectAll(studies []Study, fields []string) []Study {
	if len(fields) == 0 {
		return studies
	}
	out := make([]Study, 0, len(studies))
	for _, study := range studies {
		out = append(out, Project(study, fields))
	}
	return out
}
