package domain

// SpecDef is one sub-spec declaration from an entry's index descriptor.
type SpecDef struct {
	Type  string         `yaml:"type"`
	Extra map[string]any `yaml:",inline"`
}

// IndexDescriptor is the parsed index.yaml of one entry. Fields other than
// schemaVersion and specDef are carried verbatim into the published index
// document.
type IndexDescriptor struct {
	SchemaVersion string         `yaml:"schemaVersion,omitempty"`
	SpecDef       []SpecDef      `yaml:"specDef"`
	Extra         map[string]any `yaml:",inline"`
}

// Entry is one loaded source entry, identified by its all-digit directory
// name. Specs holds one document per declared sub-spec type.
type Entry struct {
	ID    string
	Index IndexDescriptor
	Specs map[string]Document
}

// SpecTypes returns the declared sub-spec types in declaration order.
func (e *Entry) SpecTypes() []string {
	types := make([]string, 0, len(e.Index.SpecDef))
	for _, def := range e.Index.SpecDef {
		types = append(types, def.Type)
	}
	return types
}

// HasSpec reports whether the entry declares a sub-spec of the given type.
func (e *Entry) HasSpec(specType string) bool {
	for _, def := range e.Index.SpecDef {
		if def.Type == specType {
			return true
		}
	}
	return false
}

// Events returns the entry's events document, if declared and loaded.
func (e *Entry) Events() (Events, bool) {
	doc, ok := e.Specs[SpecEvents].(Events)
	return doc, ok
}

// Schedule returns the entry's schedule document, if declared and loaded.
func (e *Entry) Schedule() (Schedule, bool) {
	doc, ok := e.Specs[SpecSchedule].(Schedule)
	return doc, ok
}

// SchemaVersion resolves the schema version for this entry, falling back to
// the given default when the index descriptor carries no override.
func (e *Entry) SchemaVersion(defaultVersion string) string {
	if e.Index.SchemaVersion != "" {
		return e.Index.SchemaVersion
	}
	return defaultVersion
}
