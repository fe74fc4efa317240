package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ---- Reader ----

func (r *PGRepo) AllSkills(ctx context.Context) ([]Skill, error) {
	const query = `SELECT skill_id, skill_name FROM skills ORDER BY skill_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *PGRepo) AllDomains(ctx context.Context) ([]Domain, error) {
	const query = `
SELECT domain_id, domain, COALESCE(domain_description, ''), branch_id
FROM domains
ORDER BY domain_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []Domain
	for rows.Next() {
		var d Domain
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.BranchID); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}

func (r *PGRepo) RolesBySkillIDs(ctx context.Context, skillIDs []int64, domainFilter string) ([]RoleInfo, error) {
	if len(skillIDs) == 0 {
		return nil, nil
	}
	const query = `
SELECT jr.role_id, jr.job_title_short, COALESCE(jr.job_description, ''),
       d.domain, COALESCE(d.domain_description, ''), b.branch_name
FROM job_roles jr
JOIN job_role_skills jrs ON jrs.role_id = jr.role_id
JOIN domains d ON d.domain_id = jr.domain_id
JOIN branches b ON b.branch_id = d.branch_id
WHERE jrs.skill_id = ANY($1)
  AND ($2 = '' OR d.domain ILIKE '%' || $2 || '%')`
	rows, err := r.DB.QueryContext(ctx, query, skillIDs, domainFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// One row per matched (role, skill) link; keep first-seen role order.
	seen := make(map[int64]bool)
	var roles []RoleInfo
	for rows.Next() {
		var info RoleInfo
		if err := rows.Scan(&info.RoleID, &info.Title, &info.Description,
			&info.DomainName, &info.DomainDescription, &info.BranchName); err != nil {
			return nil, err
		}
		if seen[info.RoleID] {
			continue
		}
		seen[info.RoleID] = true
		roles = append(roles, info)
	}
	return roles, rows.Err()
}

func (r *PGRepo) TopRolesBySkillCount(ctx context.Context, domainFilter string, limit int) ([]RoleInfo, error) {
	const query = `
SELECT jr.role_id, jr.job_title_short, COALESCE(jr.job_description, ''),
       d.domain, COALESCE(d.domain_description, ''), b.branch_name,
       COUNT(jrs.skill_id) AS skill_count
FROM job_roles jr
JOIN domains d ON d.domain_id = jr.domain_id
JOIN branches b ON b.branch_id = d.branch_id
LEFT JOIN job_role_skills jrs ON jrs.role_id = jr.role_id
WHERE ($1 = '' OR d.domain ILIKE '%' || $1 || '%')
GROUP BY jr.role_id, jr.job_title_short, jr.job_description,
         d.domain, d.domain_description, b.branch_name
ORDER BY COUNT(jrs.skill_id) DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, domainFilter, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []RoleInfo
	for rows.Next() {
		var info RoleInfo
		if err := rows.Scan(&info.RoleID, &info.Title, &info.Description,
			&info.DomainName, &info.DomainDescription, &info.BranchName, &info.SkillCount); err != nil {
			return nil, err
		}
		roles = append(roles, info)
	}
	return roles, rows.Err()
}

func (r *PGRepo) RoleSkillNames(ctx context.Context, roleID int64) ([]string, error) {
	const query = `
SELECT s.skill_name
FROM skills s
JOIN job_role_skills jrs ON jrs.skill_id = s.skill_id
WHERE jrs.role_id = $1
ORDER BY s.skill_id`
	rows, err := r.DB.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ---- Branches ----

func (r *PGRepo) CreateBranch(ctx context.Context, branch Branch) (Branch, error) {
	const query = `INSERT INTO branches (branch_name) VALUES ($1) RETURNING branch_id`
	if err := r.DB.QueryRowContext(ctx, query, branch.Name).Scan(&branch.ID); err != nil {
		return Branch{}, mapWriteErr(err)
	}
	return branch, nil
}

func (r *PGRepo) ListBranches(ctx context.Context, limit, offset int) ([]Branch, error) {
	const query = `
SELECT branch_id, branch_name FROM branches ORDER BY branch_id LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []Branch
	for rows.Next() {
		var b Branch
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *PGRepo) UpdateBranch(ctx context.Context, id int64, upd BranchUpdate) (Branch, error) {
	const query = `
UPDATE branches SET branch_name = COALESCE($2, branch_name)
WHERE branch_id = $1
RETURNING branch_id, branch_name`
	var b Branch
	err := r.DB.QueryRowContext(ctx, query, id, upd.Name).Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Branch{}, ErrNotFound
		}
		return Branch{}, err
	}
	return b, nil
}

func (r *PGRepo) DeleteBranch(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM branches WHERE branch_id = $1`, id)
}

// ---- Domains ----

func (r *PGRepo) CreateDomain(ctx context.Context, domain Domain) (Domain, error) {
	const query = `
INSERT INTO domains (domain, domain_description, branch_id)
VALUES ($1, $2, $3)
RETURNING domain_id`
	err := r.DB.QueryRowContext(ctx, query,
		domain.Name, nullableString(domain.Description), domain.BranchID,
	).Scan(&domain.ID)
	if err != nil {
		return Domain{}, mapWriteErr(err)
	}
	return domain, nil
}

func (r *PGRepo) ListDomains(ctx context.Context, limit, offset int) ([]Domain, error) {
	const query = `
SELECT domain_id, domain, COALESCE(domain_description, ''), branch_id
FROM domains
ORDER BY domain_id
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []Domain
	for rows.Next() {
		var d Domain
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.BranchID); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}

func (r *PGRepo) UpdateDomain(ctx context.Context, id int64, upd DomainUpdate) (Domain, error) {
	const query = `
UPDATE domains SET
  domain = COALESCE($2, domain),
  domain_description = COALESCE($3, domain_description),
  branch_id = COALESCE($4, branch_id)
WHERE domain_id = $1
RETURNING domain_id, domain, COALESCE(domain_description, ''), branch_id`
	var d Domain
	err := r.DB.QueryRowContext(ctx, query, id, upd.Name, upd.Description, upd.BranchID).
		Scan(&d.ID, &d.Name, &d.Description, &d.BranchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Domain{}, ErrNotFound
		}
		return Domain{}, err
	}
	return d, nil
}

func (r *PGRepo) DeleteDomain(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM domains WHERE domain_id = $1`, id)
}

// ---- Skills ----

func (r *PGRepo) CreateSkill(ctx context.Context, skill Skill) (Skill, error) {
	const query = `INSERT INTO skills (skill_name) VALUES ($1) RETURNING skill_id`
	if err := r.DB.QueryRowContext(ctx, query, skill.Name).Scan(&skill.ID); err != nil {
		return Skill{}, mapWriteErr(err)
	}
	return skill, nil
}

func (r *PGRepo) ListSkills(ctx context.Context, limit, offset int) ([]Skill, error) {
	const query = `
SELECT skill_id, skill_name FROM skills ORDER BY skill_id LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *PGRepo) UpdateSkill(ctx context.Context, id int64, upd SkillUpdate) (Skill, error) {
	const query = `
UPDATE skills SET skill_name = COALESCE($2, skill_name)
WHERE skill_id = $1
RETURNING skill_id, skill_name`
	var s Skill
	err := r.DB.QueryRowContext(ctx, query, id, upd.Name).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Skill{}, ErrNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PGRepo) DeleteSkill(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM skills WHERE skill_id = $1`, id)
}

// ---- Job roles ----

func (r *PGRepo) CreateRole(ctx context.Context, role JobRole) (JobRole, error) {
	const query = `
INSERT INTO job_roles (job_title_short, domain_id, job_description)
VALUES ($1, $2, $3)
RETURNING role_id`
	err := r.DB.QueryRowContext(ctx, query,
		role.Title, role.DomainID, nullableString(role.Description),
	).Scan(&role.ID)
	if err != nil {
		return JobRole{}, err
	}
	return role, nil
}

func (r *PGRepo) ListRoles(ctx context.Context, limit, offset int) ([]JobRole, error) {
	const query = `
SELECT role_id, job_title_short, domain_id, COALESCE(job_description, '')
FROM job_roles
ORDER BY role_id
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []JobRole
	for rows.Next() {
		var role JobRole
		if err := rows.Scan(&role.ID, &role.Title, &role.DomainID, &role.Description); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *PGRepo) UpdateRole(ctx context.Context, id int64, upd JobRoleUpdate) (JobRole, error) {
	const query = `
UPDATE job_roles SET
  job_title_short = COALESCE($2, job_title_short),
  domain_id = COALESCE($3, domain_id),
  job_description = COALESCE($4, job_description)
WHERE role_id = $1
RETURNING role_id, job_title_short, domain_id, COALESCE(job_description, '')`
	var role JobRole
	err := r.DB.QueryRowContext(ctx, query, id, upd.Title, upd.DomainID, upd.Description).
		Scan(&role.ID, &role.Title, &role.DomainID, &role.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobRole{}, ErrNotFound
		}
		return JobRole{}, err
	}
	return role, nil
}

func (r *PGRepo) DeleteRole(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM job_roles WHERE role_id = $1`, id)
}

// ---- Role-skill links ----

func (r *PGRepo) CreateRoleSkill(ctx context.Context, link RoleSkillLink) error {
	const query = `INSERT INTO job_role_skills (role_id, skill_id) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, link.RoleID, link.SkillID)
	return mapWriteErr(err)
}

func (r *PGRepo) ListRoleSkills(ctx context.Context, limit, offset int) ([]RoleSkillLink, error) {
	const query = `
SELECT role_id, skill_id FROM job_role_skills
ORDER BY role_id, skill_id
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []RoleSkillLink
	for rows.Next() {
		var link RoleSkillLink
		if err := rows.Scan(&link.RoleID, &link.SkillID); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *PGRepo) DeleteRoleSkill(ctx context.Context, roleID, skillID int64) error {
	const query = `DELETE FROM job_role_skills WHERE role_id = $1 AND skill_id = $2`
	res, err := r.DB.ExecContext(ctx, query, roleID, skillID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) deleteByID(ctx context.Context, query string, id int64) error {
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// mapWriteErr converts unique-violation errors to ErrExists.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrExists
	}
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
