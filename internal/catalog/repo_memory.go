package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. It backs tests and the
// no-database development mode.
type MemoryRepo struct {
	mu       sync.RWMutex
	branches []Branch
	domains  []Domain
	skills   []Skill
	roles    []JobRole
	links    []RoleSkillLink
	nextID   map[string]int64
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: map[string]int64{}}
}

func (r *MemoryRepo) allocID(kind string) int64 {
	r.nextID[kind]++
	return r.nextID[kind]
}

// ---- Reader ----

func (r *MemoryRepo) AllSkills(ctx context.Context) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Skill(nil), r.skills...), nil
}

func (r *MemoryRepo) AllDomains(ctx context.Context) ([]Domain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Domain(nil), r.domains...), nil
}

func (r *MemoryRepo) RolesBySkillIDs(ctx context.Context, skillIDs []int64, domainFilter string) ([]RoleInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(skillIDs) == 0 {
		return nil, nil
	}
	wanted := make(map[int64]bool, len(skillIDs))
	for _, id := range skillIDs {
		wanted[id] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool)
	var out []RoleInfo
	for _, link := range r.links {
		if !wanted[link.SkillID] || seen[link.RoleID] {
			continue
		}
		info, ok := r.roleInfoLocked(link.RoleID)
		if !ok || !domainMatches(info.DomainName, domainFilter) {
			continue
		}
		seen[link.RoleID] = true
		out = append(out, info)
	}
	return out, nil
}

func (r *MemoryRepo) TopRolesBySkillCount(ctx context.Context, domainFilter string, limit int) ([]RoleInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int64]int)
	for _, link := range r.links {
		counts[link.RoleID]++
	}

	var out []RoleInfo
	for _, role := range r.roles {
		info, ok := r.roleInfoLocked(role.ID)
		if !ok || !domainMatches(info.DomainName, domainFilter) {
			continue
		}
		info.SkillCount = counts[role.ID]
		out = append(out, info)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SkillCount > out[j].SkillCount
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) RoleSkillNames(ctx context.Context, roleID int64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[int64]string, len(r.skills))
	for _, s := range r.skills {
		names[s.ID] = s.Name
	}
	var out []string
	for _, link := range r.links {
		if link.RoleID != roleID {
			continue
		}
		if name, ok := names[link.SkillID]; ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// roleInfoLocked resolves the denormalized row for a role. Caller holds the lock.
func (r *MemoryRepo) roleInfoLocked(roleID int64) (RoleInfo, bool) {
	for _, role := range r.roles {
		if role.ID != roleID {
			continue
		}
		info := RoleInfo{
			RoleID:      role.ID,
			Title:       role.Title,
			Description: role.Description,
		}
		for _, d := range r.domains {
			if d.ID == role.DomainID {
				info.DomainName = d.Name
				info.DomainDescription = d.Description
				for _, b := range r.branches {
					if b.ID == d.BranchID {
						info.BranchName = b.Name
					}
				}
				break
			}
		}
		return info, true
	}
	return RoleInfo{}, false
}

func domainMatches(domainName, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(domainName), strings.ToLower(filter))
}

// ---- Branches ----

func (r *MemoryRepo) CreateBranch(ctx context.Context, branch Branch) (Branch, error) {
	if err := ctx.Err(); err != nil {
		return Branch{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.branches {
		if b.Name == branch.Name {
			return Branch{}, ErrExists
		}
	}
	branch.ID = r.allocID("branch")
	r.branches = append(r.branches, branch)
	return branch, nil
}

func (r *MemoryRepo) ListBranches(ctx context.Context, limit, offset int) ([]Branch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.branches, limit, offset), nil
}

func (r *MemoryRepo) UpdateBranch(ctx context.Context, id int64, upd BranchUpdate) (Branch, error) {
	if err := ctx.Err(); err != nil {
		return Branch{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.branches {
		if r.branches[i].ID == id {
			if upd.Name != nil {
				r.branches[i].Name = *upd.Name
			}
			return r.branches[i], nil
		}
	}
	return Branch{}, ErrNotFound
}

func (r *MemoryRepo) DeleteBranch(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.branches {
		if r.branches[i].ID == id {
			r.branches = append(r.branches[:i], r.branches[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Domains ----

func (r *MemoryRepo) CreateDomain(ctx context.Context, domain Domain) (Domain, error) {
	if err := ctx.Err(); err != nil {
		return Domain{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.domains {
		if d.Name == domain.Name {
			return Domain{}, ErrExists
		}
	}
	domain.ID = r.allocID("domain")
	r.domains = append(r.domains, domain)
	return domain, nil
}

func (r *MemoryRepo) ListDomains(ctx context.Context, limit, offset int) ([]Domain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.domains, limit, offset), nil
}

func (r *MemoryRepo) UpdateDomain(ctx context.Context, id int64, upd DomainUpdate) (Domain, error) {
	if err := ctx.Err(); err != nil {
		return Domain{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.domains {
		if r.domains[i].ID == id {
			if upd.Name != nil {
				r.domains[i].Name = *upd.Name
			}
			if upd.Description != nil {
				r.domains[i].Description = *upd.Description
			}
			if upd.BranchID != nil {
				r.domains[i].BranchID = *upd.BranchID
			}
			return r.domains[i], nil
		}
	}
	return Domain{}, ErrNotFound
}

func (r *MemoryRepo) DeleteDomain(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.domains {
		if r.domains[i].ID == id {
			r.domains = append(r.domains[:i], r.domains[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Skills ----

func (r *MemoryRepo) CreateSkill(ctx context.Context, skill Skill) (Skill, error) {
	if err := ctx.Err(); err != nil {
		return Skill{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.skills {
		if s.Name == skill.Name {
			return Skill{}, ErrExists
		}
	}
	skill.ID = r.allocID("skill")
	r.skills = append(r.skills, skill)
	return skill, nil
}

func (r *MemoryRepo) ListSkills(ctx context.Context, limit, offset int) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.skills, limit, offset), nil
}

func (r *MemoryRepo) UpdateSkill(ctx context.Context, id int64, upd SkillUpdate) (Skill, error) {
	if err := ctx.Err(); err != nil {
		return Skill{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.skills {
		if r.skills[i].ID == id {
			if upd.Name != nil {
				r.skills[i].Name = *upd.Name
			}
			return r.skills[i], nil
		}
	}
	return Skill{}, ErrNotFound
}

func (r *MemoryRepo) DeleteSkill(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.skills {
		if r.skills[i].ID == id {
			r.skills = append(r.skills[:i], r.skills[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Job roles ----

func (r *MemoryRepo) CreateRole(ctx context.Context, role JobRole) (JobRole, error) {
	if err := ctx.Err(); err != nil {
		return JobRole{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	role.ID = r.allocID("role")
	r.roles = append(r.roles, role)
	return role, nil
}

func (r *MemoryRepo) ListRoles(ctx context.Context, limit, offset int) ([]JobRole, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.roles, limit, offset), nil
}

func (r *MemoryRepo) UpdateRole(ctx context.Context, id int64, upd JobRoleUpdate) (JobRole, error) {
	if err := ctx.Err(); err != nil {
		return JobRole{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.roles {
		if r.roles[i].ID == id {
			if upd.Title != nil {
				r.roles[i].Title = *upd.Title
			}
			if upd.DomainID != nil {
				r.roles[i].DomainID = *upd.DomainID
			}
			if upd.Description != nil {
				r.roles[i].Description = *upd.Description
			}
			return r.roles[i], nil
		}
	}
	return JobRole{}, ErrNotFound
}

func (r *MemoryRepo) DeleteRole(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.roles {
		if r.roles[i].ID == id {
			r.roles = append(r.roles[:i], r.roles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Role-skill links ----

func (r *MemoryRepo) CreateRoleSkill(ctx context.Context, link RoleSkillLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.links {
		if l.RoleID == link.RoleID && l.SkillID == link.SkillID {
			return ErrExists
		}
	}
	r.links = append(r.links, link)
	return nil
}

func (r *MemoryRepo) ListRoleSkills(ctx context.Context, limit, offset int) ([]RoleSkillLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.links, limit, offset), nil
}

func (r *MemoryRepo) DeleteRoleSkill(ctx context.Context, roleID, skillID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.links {
		if l.RoleID == roleID && l.SkillID == skillID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]T(nil), items[offset:end]...)
}
