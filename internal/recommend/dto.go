package recommend

// Request is the single logical recommendation input.
//
// TopK is accepted for contract stability but currently has no effect on
// result size: skill-driven results are uncapped and fallback results are
// capped at a fixed 5. Capping skill-driven results at TopK is a candidate
// behavior change that has deliberately not been made.
type Request struct {
	Skills         []string `json:"skills"`
	InterestDomain string   `json:"interest_domain"`
	FreeText       string   `json:"free_text"`
	TopK           int      `json:"top_k"`
}

// Payload is the assembled recommendation response.
//
// SkillGapsByRoleTitle is keyed by role title, not role id: when two roles
// share a title the later one in iteration order overwrites the earlier
// entry. That is a known limitation of the contract, kept as-is.
type Payload struct {
	Roles                   []RoleCandidate     `json:"roles"`
	NormalizedUserSkills    []string            `json:"normalizedUserSkills"`
	ExtractedSkillsFromText []string            `json:"extractedSkillsFromText"`
	SkillGapsByRoleTitle    map[string][]string `json:"skillGapsByRoleTitle"`
	AllSkillNames           []string            `json:"allSkillNames"`
	AllDomainNames          []string            `json:"allDomainNames"`
	InterestDomain          string              `json:"interestDomain"`
	FreeText                string              `json:"freeText"`
	Summary                 string              `json:"summary"`
}
