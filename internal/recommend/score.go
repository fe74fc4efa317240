package recommend

import (
	"context"

	"career-backend/internal/catalog"
)

// fallbackRoleLimit caps fallback-mode results when no skill signal exists.
const fallbackRoleLimit = 5

// RoleCandidate is one scored role. Constructed fresh per request, never
// persisted.
type RoleCandidate struct {
	RoleID            int64    `json:"roleId"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	DomainName        string   `json:"domainName"`
	DomainDescription string   `json:"domainDescription,omitempty"`
	BranchName        string   `json:"branchName"`
	RequiredSkills    []string `json:"requiredSkills"`
	Similarity        float64  `json:"similarity"`
	MissingSkills     []string `json:"missingSkills"`
}

// scoreRoles retrieves and scores candidate roles.
//
// Skill-driven mode (non-empty skill ids): every role linked to at least one
// matched skill, optionally domain-filtered, scored against the role's
// complete required-skill list. No cap is applied.
//
// Fallback mode (no skill ids): top roles by distinct linked-skill count,
// at most fallbackRoleLimit, with similarity 0.0 and no gap claimed since
// there is no skill basis to compute one. RequiredSkills is left empty in
// fallback mode; it was not fetched.
func scoreRoles(ctx context.Context, store catalog.Reader, normalized NormalizedSkillSet, domainFilter string) ([]RoleCandidate, error) {
	if len(normalized.IDs) == 0 {
		infos, err := store.TopRolesBySkillCount(ctx, domainFilter, fallbackRoleLimit)
		if err != nil {
			return nil, err
		}
		candidates := make([]RoleCandidate, 0, len(infos))
		for _, info := range infos {
			candidates = append(candidates, RoleCandidate{
				RoleID:            info.RoleID,
				Title:             info.Title,
				Description:       info.Description,
				DomainName:        info.DomainName,
				DomainDescription: info.DomainDescription,
				BranchName:        info.BranchName,
				RequiredSkills:    []string{},
				Similarity:        0.0,
				MissingSkills:     []string{},
			})
		}
		return candidates, nil
	}

	infos, err := store.RolesBySkillIDs(ctx, normalized.IDs, domainFilter)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(normalized.CanonicalNames))
	for _, name := range normalized.CanonicalNames {
		owned[name] = true
	}

	candidates := make([]RoleCandidate, 0, len(infos))
	for _, info := range infos {
		required, err := store.RoleSkillNames(ctx, info.RoleID)
		if err != nil {
			return nil, err
		}
		// Canonical-name equality is case-sensitive: both sides come from
		// the same catalogue source.
		matched := 0
		missing := make([]string, 0, len(required))
		for _, name := range required {
			if owned[name] {
				matched++
			} else {
				missing = append(missing, name)
			}
		}
		candidates = append(candidates, RoleCandidate{
			RoleID:            info.RoleID,
			Title:             info.Title,
			Description:       info.Description,
			DomainName:        info.DomainName,
			DomainDescription: info.DomainDescription,
			BranchName:        info.BranchName,
			RequiredSkills:    required,
			Similarity:        float64(matched) / float64(max(len(required), 1)),
			MissingSkills:     missing,
		})
	}
	return candidates, nil
}
