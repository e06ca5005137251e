package services

import "sort"

// PsychologistDirectory is the bundled, read-only psychologist dataset.
type PsychologistDirectory interface {
	ListPsychologists() []*Psychologist
	GetPsychologist(id string) *Psychologist
}

type Concern string

const (
	ConcernReading    Concern = "Reading"
	ConcernFocus      Concern = "Focus"
	ConcernConfidence Concern = "Confidence"
)

type ContactMethod string

const (
	ContactChat  ContactMethod = "Chat"
	ContactVideo ContactMethod = "Video"
	ContactCall  ContactMethod = "Call"
)

// concernSpecialties maps each area of concern to the specialties that
// qualify a psychologist for it. Kept as data so it stays inspectable.
var concernSpecialties = map[Concern][]string{
	ConcernReading:    {"Learning Disabilities", "Child Development", "Education"},
	ConcernFocus:      {"ADHD", "Concentration", "Child Development"},
	ConcernConfidence: {"Anxiety", "Self-Esteem", "Social Skills"},
}

type MatchCriteria struct {
	// ChildAgeRange is collected by the form but intentionally unused in
	// filtering.
	ChildAgeRange     string          `json:"child_age_range"`
	PreferredLanguage string          `json:"preferred_language"`
	AreasOfConcern    []Concern       `json:"areas_of_concern"`
	ContactMethods    []ContactMethod `json:"contact_methods"`
}

const maxMatches = 2

type MatchService struct {
	directory PsychologistDirectory
}

func NewMatchService(directory PsychologistDirectory) *MatchService {
	return &MatchService{directory: directory}
}

// Match filters the directory by language and areas of concern, ranks by
// rating descending (stable for ties), and returns at most two records.
// An empty result is a valid outcome, not an error.
func (s *MatchService) Match(c MatchCriteria) []*Psychologist {
	matches := append([]*Psychologist(nil), s.directory.ListPsychologists()...)

	if c.PreferredLanguage != "" {
		kept := matches[:0]
		for _, p := range matches {
			if containsString(p.Languages, c.PreferredLanguage) {
				kept = append(kept, p)
			}
		}
		matches = kept
	}

	if len(c.AreasOfConcern) > 0 {
		kept := matches[:0]
		for _, p := range matches {
			if matchesAnyConcern(p, c.AreasOfConcern) {
				kept = append(kept, p)
			}
		}
		matches = kept
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Rating > matches[j].Rating })

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// A record qualifies if any selected concern maps to any of its specialties.
func matchesAnyConcern(p *Psychologist, concerns []Concern) bool {
	for _, concern := range concerns {
		for _, specialty := range concernSpecialties[concern] {
			if containsString(p.Specialties, specialty) {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
