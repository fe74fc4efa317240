package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExists is returned when a unique constraint would be violated.
	ErrExists = errors.New("already exists")
)

// Reader is the read-only view the recommendation engine consumes.
type Reader interface {
	AllSkills(ctx context.Context) ([]Skill, error)
	AllDomains(ctx context.Context) ([]Domain, error)
	// RolesBySkillIDs returns every role linked to at least one of the given
	// skills, in first-seen link order, optionally restricted to roles whose
	// domain name contains domainFilter (case-insensitive substring).
	RolesBySkillIDs(ctx context.Context, skillIDs []int64, domainFilter string) ([]RoleInfo, error)
	// TopRolesBySkillCount ranks roles by distinct linked skill count,
	// descending, with the same optional domain filter. Ordering among equal
	// counts follows store iteration order.
	TopRolesBySkillCount(ctx context.Context, domainFilter string, limit int) ([]RoleInfo, error)
	// RoleSkillNames returns the complete required-skill name list for a role.
	RoleSkillNames(ctx context.Context, roleID int64) ([]string, error)
}

// Repo is the full catalogue store: Reader plus the CRUD surface.
type Repo interface {
	Reader

	CreateBranch(ctx context.Context, branch Branch) (Branch, error)
	ListBranches(ctx context.Context, limit, offset int) ([]Branch, error)
	UpdateBranch(ctx context.Context, id int64, upd BranchUpdate) (Branch, error)
	DeleteBranch(ctx context.Context, id int64) error

	CreateDomain(ctx context.Context, domain Domain) (Domain, error)
	ListDomains(ctx context.Context, limit, offset int) ([]Domain, error)
	UpdateDomain(ctx context.Context, id int64, upd DomainUpdate) (Domain, error)
	DeleteDomain(ctx context.Context, id int64) error

	CreateSkill(ctx context.Context, skill Skill) (Skill, error)
	ListSkills(ctx context.Context, limit, offset int) ([]Skill, error)
	UpdateSkill(ctx context.Context, id int64, upd SkillUpdate) (Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	CreateRole(ctx context.Context, role JobRole) (JobRole, error)
	ListRoles(ctx context.Context, limit, offset int) ([]JobRole, error)
	UpdateRole(ctx context.Context, id int64, upd JobRoleUpdate) (JobRole, error)
	DeleteRole(ctx context.Context, id int64) error

	CreateRoleSkill(ctx context.Context, link RoleSkillLink) error
	ListRoleSkills(ctx context.Context, limit, offset int) ([]RoleSkillLink, error)
	DeleteRoleSkill(ctx context.Context, roleID, skillID int64) error
}
