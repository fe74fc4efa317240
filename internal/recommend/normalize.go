package recommend

import (
	"strings"

	"career-backend/internal/catalog"
)

// NormalizedSkillSet is the result of mapping user input onto the skill
// catalogue. CanonicalNames keeps insertion order: explicit list matches
// first, then text-extracted matches, duplicates suppressed by name.
type NormalizedSkillSet struct {
	CanonicalNames    []string
	IDs               []int64
	ExtractedFromText []string
}

// NormalizeSkills maps user-entered skill strings and optional free text onto
// canonical catalogue skills. List entries are matched by case-insensitive
// exact name equality; free text is scanned for case-insensitive substring
// containment of each catalogue skill name. Matching is deliberately exact
// substring/equality only; a skill name appearing inside an unrelated word
// counts as a match. Empty inputs yield empty sets.
func NormalizeSkills(catalogSkills []catalog.Skill, userSkills []string, freeText string) NormalizedSkillSet {
	byLower := make(map[string]catalog.Skill, len(catalogSkills))
	for _, s := range catalogSkills {
		byLower[strings.ToLower(s.Name)] = s
	}

	var set NormalizedSkillSet
	have := make(map[string]bool)
	add := func(s catalog.Skill) {
		if have[s.Name] {
			return
		}
		have[s.Name] = true
		set.CanonicalNames = append(set.CanonicalNames, s.Name)
		set.IDs = append(set.IDs, s.ID)
	}

	for _, raw := range userSkills {
		if s, ok := byLower[strings.ToLower(raw)]; ok {
			add(s)
		}
	}

	if freeText != "" {
		lowered := strings.ToLower(freeText)
		for _, s := range catalogSkills {
			if strings.Contains(lowered, strings.ToLower(s.Name)) {
				set.ExtractedFromText = append(set.ExtractedFromText, s.Name)
				add(s)
			}
		}
	}
	return set
}
