package domain

// QASummaryItem correlates one non-lightning event with its schedule record.
type QASummaryItem struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Period  string `json:"period"`
}

// GlobalIndexEntry is one record of the global index written at the end of a
// build, pointing at an entry's published location and its schema set.
type GlobalIndexEntry struct {
	ID      string `json:"id"`
	EntryID string `json:"entryId"`
	URL     string `json:"url"`
	Schema  string `json:"schema"`
}

// Schema is one JSON Schema definition read from disk. Definition is the raw
// schema object; the publisher injects the canonical $id before writing.
type Schema struct {
	Name       string
	Definition map[string]any
}

// SearchRecord is the flattened form of a published record, indexed into the
// search backend when the export is enabled.
type SearchRecord struct {
	ID      string `json:"id"`
	EntryID string `json:"entryId"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Record  any    `json:"record,omitempty"`
}

// DocID returns the search index document id, unique across entries and
// sub-spec types.
func (r SearchRecord) DocID() string {
	return r.EntryID + "-" + r.Type + "-" + r.ID
}
