package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuizStore persists in-progress quiz state keyed by quiz-session id.
type QuizStore interface {
	SaveQuizState(st *QuizState) error
	GetQuizState(id string) (*QuizState, error)
	DeleteQuizState(id string) error
}

type QuizService struct {
	store     QuizStore
	questions []QuizQuestion
	now       func() time.Time
	idGen     func() string
}

func NewQuizService(store QuizStore, questions []QuizQuestion) *QuizService {
	return &QuizService{
		store:     store,
		questions: questions,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:12] },
	}
}

// Questions returns the fixed question set. Immutable reference data.
func (s *QuizService) Questions() []QuizQuestion {
	return s.questions
}

// Start creates a fresh quiz session with an empty answer map at step 1.
func (s *QuizService) Start() (*QuizState, error) {
	st := &QuizState{
		ID:          s.idGen(),
		Answers:     map[int]string{},
		CurrentStep: 1,
		StartedAt:   s.now(),
	}
	if err := s.store.SaveQuizState(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *QuizService) Get(id string) (*QuizState, error) {
	st, err := s.store.GetQuizState(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, NewNotFoundError("quiz session not found")
	}
	return st, nil
}

// SetAnswer upserts one entry of the answer map: last write wins, no
// duplicate keys. The step must be a valid question number and the value one
// of that question's options.
func (s *QuizService) SetAnswer(id string, step int, value string) (*QuizState, error) {
	if step < 1 || step > len(s.questions) {
		return nil, NewInvalidError("step out of range")
	}
	q := s.questions[step-1]
	if !containsString(q.Options, value) {
		return nil, NewInvalidError("value is not an option for this question")
	}
	st, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if st.Answers == nil {
		st.Answers = map[int]string{}
	}
	st.Answers[step] = value
	if err := s.store.SaveQuizState(st); err != nil {
		return nil, err
	}
	return st, nil
}

// SetStep moves the step pointer. Steps beyond the question count are not an
// error here; the consuming surface redirects to the results view.
func (s *QuizService) SetStep(id string, step int) (*QuizState, error) {
	if step < 1 {
		return nil, NewInvalidError("step must be positive")
	}
	st, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	st.CurrentStep = step
	if err := s.store.SaveQuizState(st); err != nil {
		return nil, err
	}
	return st, nil
}

// Reset clears the answer map and returns the pointer to step 1.
func (s *QuizService) Reset(id string) (*QuizState, error) {
	st, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	st.Answers = map[int]string{}
	st.CurrentStep = 1
	if err := s.store.SaveQuizState(st); err != nil {
		return nil, err
	}
	return st, nil
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

type QuizAnalysis struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	AnsweredCount   int       `json:"answered_count"`
	Recommendations []string  `json:"recommendations"`
}

// Analyze scores the recorded answers: "Often", "Always" and "Yes" count as
// high concern, "Sometimes" as medium. Five or more high-concern answers is a
// high risk level; three high, or two high with three medium, is medium.
func (s *QuizService) Analyze(id string) (*QuizAnalysis, error) {
	st, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(st.Answers) == 0 {
		return nil, NewInvalidError("quiz has no answers")
	}
	high, medium := 0, 0
	for _, answer := range st.Answers {
		switch answer {
		case "Often", "Always", "Yes":
			high++
		case "Sometimes":
			medium++
		}
	}
	a := &QuizAnalysis{AnsweredCount: len(st.Answers)}
	switch {
	case high >= 5:
		a.RiskLevel = RiskHigh
		a.Title = "Significant Dyslexia Indicators"
		a.Description = "Based on your responses, there are several indicators that suggest your child may be experiencing challenges consistent with dyslexia."
	case high >= 3 || (high >= 2 && medium >= 3):
		a.RiskLevel = RiskMedium
		a.Title = "Moderate Dyslexia Indicators"
		a.Description = "Based on your responses, there are some indicators that your child may be experiencing reading challenges that could be related to dyslexia."
	default:
		a.RiskLevel = RiskLow
		a.Title = "Few Dyslexia Indicators"
		a.Description = "Based on your responses, there are few indicators associated with dyslexia. However, it's still beneficial to support your child's reading development."
	}
	a.Recommendations = recommendationsFor(a.RiskLevel)
	return a, nil
}

func recommendationsFor(level RiskLevel) []string {
	common := []string{
		"Use multi-sensory learning approaches (visual, auditory, tactile)",
		"Practice reading regularly with texts at an appropriate level",
		"Focus on phonological awareness skills",
	}
	switch level {
	case RiskHigh:
		return append(common,
			"Consider a professional evaluation by an educational psychologist",
			"Explore structured literacy programs specifically designed for dyslexia",
			"Discuss accommodations with your child's school",
		)
	case RiskMedium:
		return append(common,
			"Monitor your child's reading progress closely",
			"Try strategies like colored overlays or dyslexia-friendly fonts",
			"Consider additional reading support through tutoring",
		)
	default:
		return append(common,
			"Continue supporting regular reading practice",
			"Encourage reading for enjoyment with high-interest materials",
			"Build vocabulary through conversation and reading aloud",
		)
	}
}
