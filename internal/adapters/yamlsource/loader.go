package yamlsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/utxo-foundation/entries-publisher/internal/config"
	"github.com/utxo-foundation/entries-publisher/internal/domain"
)

// entryDirPattern matches source subdirectories that are entries. Anything
// else under the source root is skipped silently.
var entryDirPattern = regexp.MustCompile(`^[0-9]+$`)

// Loader implements the EntrySource interface for a YAML source tree.
type Loader struct {
	root     string
	collator *collate.Collator
	logger   *slog.Logger
}

// New creates a new Loader, retrieving configuration from context.
func New(ctx context.Context) (*Loader, error) {
	cfg := config.GetConfig(ctx)
	return NewWithRoot(cfg.Source.Dir, cfg.Source.Locale)
}

// NewWithRoot creates a new Loader with an explicit source root and collation
// locale. This constructor is primarily intended for testing purposes.
func NewWithRoot(root, locale string) (*Loader, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid collation locale %q: %w", locale, err)
	}

	return &Loader{
		root:     root,
		collator: collate.New(tag),
		logger:   slog.Default().With("component", "loader"),
	}, nil
}

// LoadEntries enumerates all-digit subdirectories of the source root and
// loads each one as an entry. Discovery order is the lexical directory
// order, which downstream publishing preserves.
func (l *Loader) LoadEntries(ctx context.Context) ([]*domain.Entry, error) {
	dirents, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read source root %s: %w", l.root, err)
	}

	var entries []*domain.Entry
	for _, dirent := range dirents {
		if !dirent.IsDir() || !entryDirPattern.MatchString(dirent.Name()) {
			continue
		}

		entry, err := l.loadEntry(dirent.Name())
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", dirent.Name(), err)
		}

		l.logger.InfoContext(ctx, "loaded entry",
			"entryID", entry.ID,
			"specs", len(entry.Specs),
		)

		entries = append(entries, entry)
	}

	l.logger.InfoContext(ctx, "loaded all entries", "count", len(entries))
	return entries, nil
}

// loadEntry reads one entry directory: the index descriptor first, then
// every declared sub-spec document.
func (l *Loader) loadEntry(id string) (*domain.Entry, error) {
	dir := filepath.Join(l.root, id)

	var index domain.IndexDescriptor
	if err := l.readYAML(filepath.Join(dir, "index.yaml"), &index); err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		ID:    id,
		Index: index,
		Specs: make(map[string]domain.Document, len(index.SpecDef)),
	}

	for _, def := range index.SpecDef {
		doc, err := l.loadSpec(dir, id, def.Type)
		if err != nil {
			return nil, err
		}
		entry.Specs[def.Type] = doc
	}

	return entry, nil
}

// loadSpec reads one sub-spec document and runs the post-processing that
// applies to its type: photo enrichment for speakers, projects and partners,
// plus the locale-aware sort for speakers.
func (l *Loader) loadSpec(dir, entryID, specType string) (domain.Document, error) {
	path := filepath.Join(dir, specType+".yaml")

	switch specType {
	case domain.SpecSpeakers:
		var records domain.Speakers
		if err := l.readYAML(path, &records); err != nil {
			return nil, err
		}
		l.enrichPhotos(entryID, specType, carriers(records))
		sort.SliceStable(records, func(i, j int) bool {
			return l.collator.CompareString(records[i].Name, records[j].Name) < 0
		})
		return records, nil

	case domain.SpecProjects:
		var records domain.Projects
		if err := l.readYAML(path, &records); err != nil {
			return nil, err
		}
		l.enrichPhotos(entryID, specType, carriers(records))
		return records, nil

	case domain.SpecPartners:
		var records domain.Partners
		if err := l.readYAML(path, &records); err != nil {
			return nil, err
		}
		l.enrichPhotos(entryID, specType, carriers(records))
		return records, nil

	case domain.SpecEvents:
		var records domain.Events
		if err := l.readYAML(path, &records); err != nil {
			return nil, err
		}
		return records, nil

	case domain.SpecSchedule:
		var records domain.Schedule
		if err := l.readYAML(path, &records); err != nil {
			return nil, err
		}
		return records, nil

	default:
		var records domain.GenericRecords
		if err := l.readYAML(path, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
}

// enrichPhotos attaches a tag for every photo variant file present on disk,
// in catalog order. Records without discovered variants end up with an empty
// tag sequence, never a missing one.
func (l *Loader) enrichPhotos(entryID, specType string, records []domain.PhotoCarrier) {
	for _, record := range records {
		tags := record.PhotoTags()
		if *tags == nil {
			*tags = []string{}
		}

		for _, variant := range domain.PhotoCatalog {
			path := filepath.Join(l.root, entryID, "photos", specType, variant.FileName(record.PhotoID()))
			if _, err := os.Stat(path); err == nil {
				*tags = append(*tags, variant.Tag())
			}
		}
	}
}

// readYAML reads and unmarshals one source file, mapping the failure modes
// onto the domain sentinels.
func (l *Loader) readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrMissingSpecFile, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedSpec, path, err)
	}

	return nil
}

// carriers adapts a typed record slice to the PhotoCarrier view used by
// enrichment, without copying the records.
func carriers[T any, P interface {
	*T
	domain.PhotoCarrier
}](records []T) []domain.PhotoCarrier {
	out := make([]domain.PhotoCarrier, len(records))
	for i := range records {
		out[i] = P(&records[i])
	}
	return out
}
