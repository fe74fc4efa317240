package recommend

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"career-backend/internal/catalog"
	"career-backend/internal/shared/telemetry"
)

// FallbackSummary is returned when the summarizer fails, times out, or
// produces empty output. A degraded summary never fails the request.
const FallbackSummary = "We couldn't generate a polished summary automatically. Please try again."

const defaultSummarizerTimeout = 30 * time.Second

// Summarizer turns an assembled payload into a narrative summary. It is an
// external collaborator and may fail.
type Summarizer interface {
	Summarize(ctx context.Context, payload Payload) (string, error)
}

// Service composes normalization, domain matching and role scoring into one
// request/response cycle.
type Service struct {
	Catalog           catalog.Reader
	Summarizer        Summarizer
	SummarizerTimeout time.Duration
	DomainThreshold   int
}

// NewService constructs a Service with default tuning.
func NewService(store catalog.Reader, summarizer Summarizer) *Service {
	return &Service{
		Catalog:           store,
		Summarizer:        summarizer,
		SummarizerTimeout: defaultSummarizerTimeout,
		DomainThreshold:   DefaultDomainThreshold,
	}
}

// Recommend runs the full recommendation cycle. Normalization and domain
// matching have no data dependency and run concurrently; scoring waits on
// both. All computation is total over well-typed input; only catalogue reads
// can return an error.
func (s *Service) Recommend(ctx context.Context, req Request) (Payload, error) {
	var (
		skills     []catalog.Skill
		normalized NormalizedSkillSet
		domains    []catalog.Domain
		matched    string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = s.Catalog.AllSkills(gctx)
		if err != nil {
			return err
		}
		normalized = NormalizeSkills(skills, req.Skills, req.FreeText)
		return nil
	})
	g.Go(func() error {
		var err error
		domains, err = s.Catalog.AllDomains(gctx)
		if err != nil {
			return err
		}
		matched = MatchDomain(req.InterestDomain, domainNames(domains), s.threshold())
		return nil
	})
	if err := g.Wait(); err != nil {
		return Payload{}, err
	}

	roles, err := scoreRoles(ctx, s.Catalog, normalized, matched)
	if err != nil {
		return Payload{}, err
	}

	gaps := make(map[string][]string, len(roles))
	for _, role := range roles {
		gaps[role.Title] = role.MissingSkills
	}

	payload := Payload{
		Roles:                   emptyAsList(roles),
		NormalizedUserSkills:    emptyAsList(normalized.CanonicalNames),
		ExtractedSkillsFromText: emptyAsList(normalized.ExtractedFromText),
		SkillGapsByRoleTitle:    gaps,
		AllSkillNames:           skillNames(skills),
		AllDomainNames:          domainNames(domains),
		InterestDomain:          matched,
		FreeText:                req.FreeText,
	}
	payload.Summary = s.summarize(ctx, payload)
	return payload, nil
}

// summarize runs the single summarizer attempt under a bounded timeout.
func (s *Service) summarize(ctx context.Context, payload Payload) string {
	if s.Summarizer == nil {
		return FallbackSummary
	}

	timeout := s.SummarizerTimeout
	if timeout <= 0 {
		timeout = defaultSummarizerTimeout
	}
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	summary, err := s.Summarizer.Summarize(sctx, payload)
	if err != nil {
		telemetry.Error("summarizer.failed", map[string]any{"error": err.Error()})
		return FallbackSummary
	}
	if strings.TrimSpace(summary) == "" {
		telemetry.Error("summarizer.empty", nil)
		return FallbackSummary
	}
	return summary
}

func (s *Service) threshold() int {
	if s.DomainThreshold > 0 {
		return s.DomainThreshold
	}
	return DefaultDomainThreshold
}

func skillNames(skills []catalog.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func domainNames(domains []catalog.Domain) []string {
	names := make([]string, 0, len(domains))
	for _, d := range domains {
		names = append(names, d.Name)
	}
	return names
}

func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
