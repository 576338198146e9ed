package domain

// Known sub-spec types. An entry's index descriptor may declare additional
// types; those are loaded as generic records.
const (
	SpecSpeakers = "speakers"
	SpecProjects = "projects"
	SpecPartners = "partners"
	SpecEvents   = "events"
	SpecSchedule = "schedule"
)

// EventTypeLightning marks events that are excluded from schedule correlation.
const EventTypeLightning = "lightning"

// Document is an ordered sequence of sub-spec records. It is marshaled to
// JSON as-is when publishing.
type Document interface {
	Len() int
}

// Speaker is one record of the speakers sub-spec.
type Speaker struct {
	ID      string            `yaml:"id" json:"id"`
	Name    string            `yaml:"name" json:"name"`
	Project string            `yaml:"project,omitempty" json:"project,omitempty"`
	Country string            `yaml:"country,omitempty" json:"country,omitempty"`
	Bio     string            `yaml:"bio,omitempty" json:"bio,omitempty"`
	Links   map[string]string `yaml:"links,omitempty" json:"links,omitempty"`
	Photos  []string          `yaml:"photos" json:"photos"`
}

// Project is one record of the projects sub-spec.
type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	URL         string   `yaml:"url,omitempty" json:"url,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Photos      []string `yaml:"photos" json:"photos"`
}

// Partner is one record of the partners sub-spec.
type Partner struct {
	ID     string   `yaml:"id" json:"id"`
	Name   string   `yaml:"name" json:"name"`
	URL    string   `yaml:"url,omitempty" json:"url,omitempty"`
	Level  string   `yaml:"level,omitempty" json:"level,omitempty"`
	Photos []string `yaml:"photos" json:"photos"`
}

// Event is one record of the events sub-spec.
type Event struct {
	ID          string   `yaml:"id" json:"id"`
	Type        string   `yaml:"type" json:"type"`
	Name        string   `yaml:"name" json:"name"`
	Speakers    []string `yaml:"speakers,omitempty" json:"speakers,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// ScheduleItem is one record of the schedule sub-spec. Event references an
// Event record by id.
type ScheduleItem struct {
	ID     string `yaml:"id" json:"id"`
	Event  string `yaml:"event" json:"event"`
	Period string `yaml:"period" json:"period"`
	Stage  string `yaml:"stage,omitempty" json:"stage,omitempty"`
}

// IsLightning reports whether the event is a lightning talk.
func (e Event) IsLightning() bool {
	return e.Type == EventTypeLightning
}

type (
	Speakers []Speaker
	Projects []Project
	Partners []Partner
	Events   []Event
	Schedule []ScheduleItem

	// GenericRecords holds records of a declared sub-spec type the loader
	// has no dedicated shape for.
	GenericRecords []map[string]any
)

func (d Speakers) Len() int       { return len(d) }
func (d Projects) Len() int       { return len(d) }
func (d Partners) Len() int       { return len(d) }
func (d Events) Len() int         { return len(d) }
func (d Schedule) Len() int       { return len(d) }
func (d GenericRecords) Len() int { return len(d) }

// PhotoCarrier is implemented by record types that carry discovered photo
// variant tags.
type PhotoCarrier interface {
	PhotoID() string
	PhotoTags() *[]string
}

func (s *Speaker) PhotoID() string      { return s.ID }
func (s *Speaker) PhotoTags() *[]string { return &s.Photos }

func (p *Project) PhotoID() string      { return p.ID }
func (p *Project) PhotoTags() *[]string { return &p.Photos }

func (p *Partner) PhotoID() string      { return p.ID }
func (p *Partner) PhotoTags() *[]string { return &p.Photos }
