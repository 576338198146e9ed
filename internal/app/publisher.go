package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/utxo-foundation/entries-publisher/internal/config"
	"github.com/utxo-foundation/entries-publisher/internal/domain"
	"github.com/utxo-foundation/entries-publisher/internal/ports"
)

// PublisherService handles the business logic for publishing entries: load
// the source tree once, then materialize the full output tree in one pass.
type PublisherService struct {
	source        ports.EntrySource
	store         ports.SiteStore
	schemas       ports.SchemaSource
	search        ports.SearchIndex // nil disables the search export
	sourceDir     string
	publish       config.PublishConfig
	schemaVersion string
	searchIndex   string
	recordMapping string
	entries       []*domain.Entry
	now           func() time.Time
	logger        *slog.Logger
}

// NewPublisherService creates a new PublisherService, receiving context as
// first parameter to retrieve configuration, along with the required port
// dependencies. Pass a nil search index to disable the search export.
func NewPublisherService(
	ctx context.Context,
	source ports.EntrySource,
	store ports.SiteStore,
	schemas ports.SchemaSource,
	search ports.SearchIndex,
	recordMapping string,
) *PublisherService {
	return NewPublisherServiceWithConfig(config.GetConfig(ctx), source, store, schemas, search, recordMapping)
}

// NewPublisherServiceWithConfig creates a new PublisherService with explicit
// configuration. This constructor is primarily intended for testing purposes.
func NewPublisherServiceWithConfig(
	cfg *config.Config,
	source ports.EntrySource,
	store ports.SiteStore,
	schemas ports.SchemaSource,
	search ports.SearchIndex,
	recordMapping string,
) *PublisherService {
	return &PublisherService{
		source:        source,
		store:         store,
		schemas:       schemas,
		search:        search,
		sourceDir:     cfg.Source.Dir,
		publish:       cfg.Publish,
		schemaVersion: cfg.Schema.DefaultVersion,
		searchIndex:   cfg.Elasticsearch.Index,
		recordMapping: recordMapping,
		now:           time.Now,
		logger:        slog.Default().With("component", "publisher"),
	}
}

// Load populates the in-memory entries from the source tree.
func (s *PublisherService) Load(ctx context.Context) error {
	entries, err := s.source.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	s.entries = entries
	s.logger.Info("entries loaded", "count", len(entries))
	return nil
}

// Entries returns the loaded entries in discovery order.
func (s *PublisherService) Entries() []*domain.Entry {
	return s.entries
}

// Build materializes the full publish tree under outDir. The output
// directory is recreated from scratch on every run; there is no incremental
// reuse. Requires a prior successful Load.
func (s *PublisherService) Build(ctx context.Context, outDir string) error {
	if s.entries == nil {
		return fmt.Errorf("no entries loaded, call Load first")
	}

	s.logger.Info("starting build", "outDir", outDir, "entries", len(s.entries))

	if err := s.store.EnsureEmptyDir(outDir); err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}

	globalIndex := make([]domain.GlobalIndexEntry, 0, len(s.entries))
	versions := map[string]bool{s.schemaVersion: true}

	for _, entry := range s.entries {
		record, err := s.publishEntry(ctx, outDir, entry)
		if err != nil {
			return fmt.Errorf("failed to publish entry %s: %w", entry.ID, err)
		}
		globalIndex = append(globalIndex, record)
		versions[entry.SchemaVersion(s.schemaVersion)] = true
	}

	for _, version := range sortedVersions(versions) {
		if err := s.publishSchemas(ctx, outDir, version); err != nil {
			return fmt.Errorf("failed to publish schemas for version %s: %w", version, err)
		}
	}

	if err := s.store.WriteDocument(filepath.Join(outDir, "index.json"), globalIndex); err != nil {
		return fmt.Errorf("failed to write global index: %w", err)
	}

	if s.search != nil {
		if err := s.exportSearch(ctx); err != nil {
			return fmt.Errorf("failed to export search records: %w", err)
		}
	}

	s.logger.Info("build completed successfully",
		"entries", len(s.entries),
		"schemaVersions", len(versions),
	)

	return nil
}

// publishEntry writes one entry's output directory and returns its global
// index record. All derived documents are computed before anything is
// written, so an integrity violation leaves no output for the entry.
func (s *PublisherService) publishEntry(ctx context.Context, outDir string, entry *domain.Entry) (domain.GlobalIndexEntry, error) {
	var qaSummary []domain.QASummaryItem
	hasSchedule := entry.HasSpec(domain.SpecSchedule)
	if hasSchedule {
		var err error
		qaSummary, err = s.correlateSchedule(entry)
		if err != nil {
			return domain.GlobalIndexEntry{}, err
		}
	}

	specURLs := make(map[string]string, len(entry.Specs))
	counts := make(map[string]int, len(entry.Specs))
	for _, specType := range entry.SpecTypes() {
		specURLs[specType] = s.publish.URL(entry.ID, specType+".json")
		counts[specType] = entry.Specs[specType].Len()
	}

	generated := s.now().UTC().Format(time.RFC3339)
	indexDoc := buildIndexDocument(entry, specURLs, counts, generated)
	bundleDoc := buildBundleDocument(entry, counts, generated)

	entryDir := filepath.Join(outDir, entry.ID)
	if err := s.store.EnsureEmptyDir(entryDir); err != nil {
		return domain.GlobalIndexEntry{}, fmt.Errorf("failed to prepare entry directory: %w", err)
	}

	for _, specType := range entry.SpecTypes() {
		path := filepath.Join(entryDir, specType+".json")
		if err := s.store.WriteDocument(path, entry.Specs[specType]); err != nil {
			return domain.GlobalIndexEntry{}, err
		}
	}

	if err := s.store.WriteDocument(filepath.Join(entryDir, "index.json"), indexDoc); err != nil {
		return domain.GlobalIndexEntry{}, err
	}
	if err := s.store.WriteDocument(filepath.Join(entryDir, "bundle.json"), bundleDoc); err != nil {
		return domain.GlobalIndexEntry{}, err
	}

	// Entries always have a photos directory; its absence is fatal.
	photosSrc := filepath.Join(s.sourceDir, entry.ID, "photos")
	if err := s.store.CopyTree(photosSrc, filepath.Join(entryDir, "photos")); err != nil {
		return domain.GlobalIndexEntry{}, fmt.Errorf("failed to copy photos: %w", err)
	}

	// media-kit is optional; a missing source directory is skipped.
	mediaKitSrc := filepath.Join(s.sourceDir, entry.ID, "media-kit")
	if s.store.Exists(mediaKitSrc) {
		if err := s.store.CopyTree(mediaKitSrc, filepath.Join(entryDir, "media-kit")); err != nil {
			return domain.GlobalIndexEntry{}, fmt.Errorf("failed to copy media-kit: %w", err)
		}
	}

	if hasSchedule {
		if err := s.store.WriteDocument(filepath.Join(entryDir, "qa-summary.json"), qaSummary); err != nil {
			return domain.GlobalIndexEntry{}, err
		}
	}

	s.logger.InfoContext(ctx, "published entry",
		"entryID", entry.ID,
		"specs", len(entry.Specs),
		"schedule", hasSchedule,
	)

	version := entry.SchemaVersion(s.schemaVersion)
	return domain.GlobalIndexEntry{
		ID:      s.publish.IDPrefix + entry.ID,
		EntryID: entry.ID,
		URL:     s.publish.URL(entry.ID) + "/",
		Schema:  s.publish.URL("schema", version) + "/",
	}, nil
}

// correlateSchedule produces the QA summary for one entry: every
// non-lightning event matched to its schedule record. A missing match is a
// data-integrity violation and aborts the build. When several schedule
// records reference the same event the first one in document order wins and
// a warning is logged.
func (s *PublisherService) correlateSchedule(entry *domain.Entry) ([]domain.QASummaryItem, error) {
	events, _ := entry.Events()
	schedule, _ := entry.Schedule()

	summary := make([]domain.QASummaryItem, 0, len(events))
	for _, event := range events {
		if event.IsLightning() {
			continue
		}

		matches := 0
		var first domain.ScheduleItem
		for _, item := range schedule {
			if item.Event == event.ID {
				if matches == 0 {
					first = item
				}
				matches++
			}
		}

		if matches == 0 {
			return nil, fmt.Errorf("%w: event %s", domain.ErrScheduleNotFound, event.ID)
		}
		if matches > 1 {
			s.logger.Warn("multiple schedule records for event, using first",
				"entryID", entry.ID,
				"eventID", event.ID,
				"matches", matches,
			)
		}

		summary = append(summary, domain.QASummaryItem{
			ID:      first.ID,
			EventID: event.ID,
			Name:    event.Name,
			Period:  first.Period,
		})
	}

	return summary, nil
}

// publishSchemas writes every schema definition for one version, each tagged
// with its canonical $id, plus the combined bundle document.
func (s *PublisherService) publishSchemas(ctx context.Context, outDir, version string) error {
	schemas, err := s.schemas.LoadSchemas(ctx, version)
	if err != nil {
		return err
	}

	schemaDir := filepath.Join(outDir, "schema", version)
	definitions := make(map[string]any, len(schemas))

	for _, schema := range schemas {
		doc := make(map[string]any, len(schema.Definition)+1)
		for key, value := range schema.Definition {
			doc[key] = value
		}
		doc["$id"] = s.publish.URL("schema", version, schema.Name+".json")

		if err := s.store.WriteDocument(filepath.Join(schemaDir, schema.Name+".json"), doc); err != nil {
			return err
		}
		definitions[schema.Name] = doc
	}

	bundle := map[string]any{"definitions": definitions}
	if err := s.store.WriteDocument(filepath.Join(schemaDir, "bundle.json"), bundle); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "published schemas", "version", version, "count", len(schemas))
	return nil
}

// exportSearch recreates the records index and bulk-indexes every published
// record, mirroring the full-rebuild semantics of the output tree.
func (s *PublisherService) exportSearch(ctx context.Context) error {
	records := collectSearchRecords(s.entries)

	exists, err := s.search.IndexExists(ctx, s.searchIndex)
	if err != nil {
		return fmt.Errorf("failed to check if index %s exists: %w", s.searchIndex, err)
	}
	if exists {
		s.logger.Info("recreating records index", "index", s.searchIndex)
	}

	if err := s.search.DeleteIndex(ctx, s.searchIndex); err != nil {
		return fmt.Errorf("failed to delete index %s: %w", s.searchIndex, err)
	}
	if err := s.search.CreateIndex(ctx, s.searchIndex, s.recordMapping); err != nil {
		return fmt.Errorf("failed to create index %s: %w", s.searchIndex, err)
	}

	if len(records) == 0 {
		s.logger.Warn("no records to export")
		return nil
	}

	if err := s.search.BulkIndex(ctx, s.searchIndex, records); err != nil {
		return fmt.Errorf("failed to index records: %w", err)
	}

	s.logger.Info("search export completed", "index", s.searchIndex, "count", len(records))
	return nil
}

// buildIndexDocument derives the published index document from named fields
// of the entry: the descriptor's own fields minus specDef, plus the resolved
// sub-spec URLs, record counts and generation time.
func buildIndexDocument(entry *domain.Entry, specURLs map[string]string, counts map[string]int, generated string) map[string]any {
	doc := make(map[string]any, len(entry.Index.Extra)+4)
	for key, value := range entry.Index.Extra {
		doc[key] = value
	}
	if entry.Index.SchemaVersion != "" {
		doc["schemaVersion"] = entry.Index.SchemaVersion
	}
	doc["spec"] = specURLs
	doc["stats"] = map[string]any{"counts": counts}
	doc["time"] = generated
	return doc
}

// buildBundleDocument derives the published bundle document: the index
// document shape with spec holding the full inline sub-spec documents. Built
// from scratch so index and bundle never alias each other.
func buildBundleDocument(entry *domain.Entry, counts map[string]int, generated string) map[string]any {
	specs := make(map[string]domain.Document, len(entry.Specs))
	for specType, doc := range entry.Specs {
		specs[specType] = doc
	}

	doc := make(map[string]any, len(entry.Index.Extra)+4)
	for key, value := range entry.Index.Extra {
		doc[key] = value
	}
	if entry.Index.SchemaVersion != "" {
		doc["schemaVersion"] = entry.Index.SchemaVersion
	}
	doc["spec"] = specs
	doc["stats"] = map[string]any{"counts": counts}
	doc["time"] = generated
	return doc
}

// collectSearchRecords flattens every entry's named records into search
// documents. Schedule rows and generic sub-specs carry no display name and
// are not exported.
func collectSearchRecords(entries []*domain.Entry) []domain.SearchRecord {
	var records []domain.SearchRecord
	for _, entry := range entries {
		for _, specType := range entry.SpecTypes() {
			switch doc := entry.Specs[specType].(type) {
			case domain.Speakers:
				for _, r := range doc {
					records = append(records, domain.SearchRecord{ID: r.ID, EntryID: entry.ID, Type: specType, Name: r.Name, Record: r})
				}
			case domain.Projects:
				for _, r := range doc {
					records = append(records, domain.SearchRecord{ID: r.ID, EntryID: entry.ID, Type: specType, Name: r.Name, Record: r})
				}
			case domain.Partners:
				for _, r := range doc {
					records = append(records, domain.SearchRecord{ID: r.ID, EntryID: entry.ID, Type: specType, Name: r.Name, Record: r})
				}
			case domain.Events:
				for _, r := range doc {
					records = append(records, domain.SearchRecord{ID: r.ID, EntryID: entry.ID, Type: specType, Name: r.Name, Record: r})
				}
			}
		}
	}
	return records
}

// sortedVersions returns the version set in ascending order.
func sortedVersions(versions map[string]bool) []string {
	out := make([]string, 0, len(versions))
	for version := range versions {
		out = append(out, version)
	}
	sort.Strings(out)
	return out
}
