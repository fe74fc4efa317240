package summarizer

import (
	"context"
	"strings"
	"testing"

	"career-backend/internal/recommend"
)

func TestBuildPromptIncludesProfileAndRoles(t *testing.T) {
	payload := recommend.Payload{
		NormalizedUserSkills:    []string{"Python", "SQL"},
		ExtractedSkillsFromText: []string{"Excel"},
		InterestDomain:          "Data Science",
		FreeText:                "I enjoy working with data",
		Roles: []recommend.RoleCandidate{
			{
				Title:         "Data Analyst",
				DomainName:    "Data Science",
				BranchName:    "Engineering",
				Similarity:    2.0 / 3.0,
				MissingSkills: []string{"Excel"},
			},
		},
	}

	prompt := BuildPrompt(payload)

	for _, want := range []string{
		"- Current Skills: Python, SQL",
		"- Skills inferred from text: Excel",
		"- Interested Domain: Data Science",
		`- User's Note: "I enjoy working with data"`,
		"- Data Analyst (Data Science/Engineering): Match 66%, Missing skills: Excel",
		"### USER PROFILE ###",
		"### ANALYSIS (Matching Roles & Gaps) ###",
		"### TASK ###",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptEmptyPayload(t *testing.T) {
	prompt := BuildPrompt(recommend.Payload{})

	if !strings.Contains(prompt, "- Current Skills: None listed") {
		t.Fatalf("prompt missing empty-skills line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- No roles found based on the user's current skills.") {
		t.Fatalf("prompt missing empty-roles line:\n%s", prompt)
	}
	if strings.Contains(prompt, "Interested Domain") {
		t.Fatalf("prompt mentions a domain that was never matched:\n%s", prompt)
	}
}

func TestBuildPromptNoGapRoles(t *testing.T) {
	payload := recommend.Payload{
		Roles: []recommend.RoleCandidate{
			{Title: "Data Analyst", DomainName: "Data Science", BranchName: "Engineering", Similarity: 1.0},
		},
	}

	prompt := BuildPrompt(payload)
	if !strings.Contains(prompt, "Match 100%, Missing skills: no major gaps detected") {
		t.Fatalf("prompt = %s", prompt)
	}
}

type stubGenerator struct {
	prompt string
	out    string
	err    error
}

func (g *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.out, g.err
}

func TestServiceSummarizePassesBuiltPrompt(t *testing.T) {
	gen := &stubGenerator{out: "a summary"}
	svc := NewService(gen)

	payload := recommend.Payload{NormalizedUserSkills: []string{"Python"}}
	summary, err := svc.Summarize(context.Background(), payload)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary != "a summary" {
		t.Fatalf("summary = %q", summary)
	}
	if !strings.Contains(gen.prompt, "- Current Skills: Python") {
		t.Fatalf("generator got prompt without skills:\n%s", gen.prompt)
	}
}

func TestServiceSummarizeWithoutGenerator(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Summarize(context.Background(), recommend.Payload{}); err == nil {
		t.Fatalf("expected error when no generator is configured")
	}
}
