package quiz

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownCategory is returned when the requested category is not in the bank.
var ErrUnknownCategory = errors.New("unknown quiz category")

// DefaultQuestionsPerCategory is used when a request does not set a count.
const DefaultQuestionsPerCategory = 2

// GeneratedTest is the response of a generate call. The same structure is
// echoed back to evaluate, answers included; the bank is not a secret.
type GeneratedTest struct {
	TestID    string                `json:"testId"`
	UserID    string                `json:"user_id"`
	Timestamp time.Time             `json:"timestamp"`
	Test      map[string][]Question `json:"test"`
}

// Result carries per-category scores for one evaluated test.
type Result struct {
	Score    map[string]int `json:"score"`
	MaxScore map[string]int `json:"max_score"`
}

// Service generates and evaluates static-bank tests.
type Service struct {
	shuffle func(n int, swap func(i, j int))
	now     func() time.Time
}

// NewService constructs a Service with the default random source.
func NewService() *Service {
	return &Service{shuffle: rand.Shuffle, now: time.Now}
}

// Generate samples numQuestions random questions from each selected category.
// An empty category selects every category; numQuestions <= 0 falls back to
// the default. Sampling is capped at the category size.
func (s *Service) Generate(userID, category string, numQuestions int) (GeneratedTest, error) {
	if numQuestions <= 0 {
		numQuestions = DefaultQuestionsPerCategory
	}

	selected := categoryOrder
	if category != "" {
		if _, ok := questionBank[category]; !ok {
			return GeneratedTest{}, ErrUnknownCategory
		}
		selected = []string{category}
	}

	test := make(map[string][]Question, len(selected))
	for _, cat := range selected {
		test[cat] = s.sample(questionBank[cat], numQuestions)
	}

	return GeneratedTest{
		TestID:    uuid.NewString(),
		UserID:    userID,
		Timestamp: s.now().UTC(),
		Test:      test,
	}, nil
}

// Evaluate scores user answers against the generated test. Coding questions
// pass when any expected keyword appears in the answer text; all other
// questions require an exact answer match. Answers are keyed by category and
// stringified question id.
func (s *Service) Evaluate(test GeneratedTest, answers map[string]map[string]string) Result {
	result := Result{
		Score:    make(map[string]int, len(test.Test)),
		MaxScore: make(map[string]int, len(test.Test)),
	}
	for cat, questions := range test.Test {
		result.Score[cat] = 0
		result.MaxScore[cat] = len(questions)
		for _, q := range questions {
			given := answers[cat][strconv.Itoa(q.ID)]
			if isCorrect(cat, q, given) {
				result.Score[cat]++
			}
		}
	}
	return result
}

func isCorrect(category string, q Question, given string) bool {
	if category == CategoryCoding {
		for _, keyword := range q.ExpectedKeywords {
			if strings.Contains(given, keyword) {
				return true
			}
		}
		return false
	}
	return given != "" && given == q.Answer
}

func (s *Service) sample(questions []Question, n int) []Question {
	picked := append([]Question(nil), questions...)
	s.shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if n < len(picked) {
		picked = picked[:n]
	}
	return picked
}
