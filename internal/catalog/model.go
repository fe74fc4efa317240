package catalog

// Branch is a top-level grouping of domains (e.g. Engineering, Science).
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Domain is a field of work within a branch.
type Domain struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BranchID    int64  `json:"branchId"`
}

// Skill is a canonical skill. Name casing here is the canonical casing.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JobRole is a role within a domain.
type JobRole struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	DomainID    int64  `json:"domainId"`
	Description string `json:"description,omitempty"`
}

// RoleSkillLink connects a role to one of its required skills.
type RoleSkillLink struct {
	RoleID  int64 `json:"roleId"`
	SkillID int64 `json:"skillId"`
}

// BranchUpdate is a partial update; nil fields are left unchanged.
type BranchUpdate struct {
	Name *string `json:"name"`
}

// DomainUpdate is a partial update; nil fields are left unchanged.
type DomainUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BranchID    *int64  `json:"branchId"`
}

// SkillUpdate is a partial update; nil fields are left unchanged.
type SkillUpdate struct {
	Name *string `json:"name"`
}

// JobRoleUpdate is a partial update; nil fields are left unchanged.
type JobRoleUpdate struct {
	Title       *string `json:"title"`
	DomainID    *int64  `json:"domainId"`
	Description *string `json:"description"`
}

// RoleInfo is the denormalized role row consumed by the recommendation engine.
type RoleInfo struct {
	RoleID            int64
	Title             string
	Description       string
	DomainName        string
	DomainDescription string
	BranchName        string
	SkillCount        int
}
