package quiz

import (
	"errors"
	"testing"
	"time"
)

// fixedService disables shuffling and pins the clock so sampling is
// deterministic.
func fixedService() *Service {
	return &Service{
		shuffle: func(n int, swap func(i, j int)) {},
		now:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestGenerateAllCategories(t *testing.T) {
	svc := fixedService()

	test, err := svc.Generate("user-1", "", 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if test.TestID == "" {
		t.Fatalf("TestID is empty")
	}
	if test.UserID != "user-1" {
		t.Fatalf("UserID = %q", test.UserID)
	}
	if len(test.Test) != len(categoryOrder) {
		t.Fatalf("got %d categories, want %d", len(test.Test), len(categoryOrder))
	}
	for _, cat := range categoryOrder {
		questions, ok := test.Test[cat]
		if !ok {
			t.Fatalf("category %q missing", cat)
		}
		if len(questions) != DefaultQuestionsPerCategory {
			t.Fatalf("category %q has %d questions, want %d", cat, len(questions), DefaultQuestionsPerCategory)
		}
	}
}

func TestGenerateSingleCategory(t *testing.T) {
	svc := fixedService()

	test, err := svc.Generate("user-1", "logic", 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(test.Test) != 1 {
		t.Fatalf("got %d categories, want 1", len(test.Test))
	}
	if len(test.Test["logic"]) != 3 {
		t.Fatalf("got %d logic questions, want 3", len(test.Test["logic"]))
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	svc := fixedService()

	if _, err := svc.Generate("user-1", "astrology", 2); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestGenerateCountCappedAtBankSize(t *testing.T) {
	svc := fixedService()

	test, err := svc.Generate("user-1", "logic", 50)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got, bank := len(test.Test["logic"]), len(questionBank["logic"]); got != bank {
		t.Fatalf("got %d questions, want full bank of %d", got, bank)
	}
}

func TestGenerateUniqueQuestions(t *testing.T) {
	svc := NewService()

	test, err := svc.Generate("user-1", "mathematics", 6)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seen := make(map[int]bool)
	for _, q := range test.Test["mathematics"] {
		if seen[q.ID] {
			t.Fatalf("question %d sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	svc := fixedService()
	test := GeneratedTest{
		Test: map[string][]Question{
			"logic": {
				{ID: 1, Text: "q1", Answer: "B"},
				{ID: 2, Text: "q2", Answer: "C"},
			},
		},
	}

	result := svc.Evaluate(test, map[string]map[string]string{
		"logic": {"1": "B", "2": "A"},
	})

	if result.Score["logic"] != 1 {
		t.Fatalf("score = %d, want 1", result.Score["logic"])
	}
	if result.MaxScore["logic"] != 2 {
		t.Fatalf("max score = %d, want 2", result.MaxScore["logic"])
	}
}

func TestEvaluateEmptyAnswerNeverScores(t *testing.T) {
	svc := fixedService()
	test := GeneratedTest{
		Test: map[string][]Question{
			"logic": {{ID: 1, Text: "q1", Answer: ""}},
		},
	}

	result := svc.Evaluate(test, map[string]map[string]string{
		"logic": {"1": ""},
	})
	if result.Score["logic"] != 0 {
		t.Fatalf("empty answer scored: %d", result.Score["logic"])
	}
}

func TestEvaluateCodingKeywords(t *testing.T) {
	svc := fixedService()
	test := GeneratedTest{
		Test: map[string][]Question{
			CategoryCoding: {
				{ID: 1, Text: "palindrome", ExpectedKeywords: []string{"def", "return"}},
				{ID: 2, Text: "factorial", ExpectedKeywords: []string{"recursion"}},
			},
		},
	}

	result := svc.Evaluate(test, map[string]map[string]string{
		CategoryCoding: {
			"1": "def is_pal(s): ...",
			"2": "I would use a loop",
		},
	})

	if result.Score[CategoryCoding] != 1 {
		t.Fatalf("score = %d, want 1", result.Score[CategoryCoding])
	}
	if result.MaxScore[CategoryCoding] != 2 {
		t.Fatalf("max score = %d, want 2", result.MaxScore[CategoryCoding])
	}
}

func TestEvaluateMissingCategoryAnswers(t *testing.T) {
	svc := fixedService()
	test := GeneratedTest{
		Test: map[string][]Question{
			"logic": {{ID: 1, Text: "q1", Answer: "A"}},
		},
	}

	result := svc.Evaluate(test, nil)
	if result.Score["logic"] != 0 || result.MaxScore["logic"] != 1 {
		t.Fatalf("result = %+v", result)
	}
}

func TestBankShape(t *testing.T) {
	for _, cat := range categoryOrder {
		questions, ok := questionBank[cat]
		if !ok {
			t.Fatalf("category %q missing from bank", cat)
		}
		if len(questions) == 0 {
			t.Fatalf("category %q is empty", cat)
		}
		for _, q := range questions {
			if cat == CategoryCoding {
				if len(q.ExpectedKeywords) == 0 {
					t.Fatalf("coding question %d has no keywords", q.ID)
				}
				continue
			}
			if q.Answer == "" {
				t.Fatalf("question %s/%d has no answer", cat, q.ID)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.Answer {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("question %s/%d answer %q not among options %v", cat, q.ID, q.Answer, q.Options)
			}
		}
	}
}
