package recommend

import (
	"context"
	"reflect"
	"testing"

	"career-backend/internal/catalog"
)

// seedCatalog builds a small in-memory catalogue:
//
//	Engineering / Data Science:    Data Analyst    (Python, SQL, Excel)
//	Engineering / Web Development: Frontend Dev    (JavaScript)
func seedCatalog(t *testing.T) *catalog.MemoryRepo {
	t.Helper()
	ctx := context.Background()
	repo := catalog.NewMemoryRepo()

	branch, err := repo.CreateBranch(ctx, catalog.Branch{Name: "Engineering"})
	if err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	ds, err := repo.CreateDomain(ctx, catalog.Domain{Name: "Data Science", Description: "Data work", BranchID: branch.ID})
	if err != nil {
		t.Fatalf("seed domain: %v", err)
	}
	web, err := repo.CreateDomain(ctx, catalog.Domain{Name: "Web Development", Description: "Web work", BranchID: branch.ID})
	if err != nil {
		t.Fatalf("seed domain: %v", err)
	}

	skillIDs := map[string]int64{}
	for _, name := range []string{"Python", "SQL", "Excel", "JavaScript"} {
		s, err := repo.CreateSkill(ctx, catalog.Skill{Name: name})
		if err != nil {
			t.Fatalf("seed skill %s: %v", name, err)
		}
		skillIDs[name] = s.ID
	}

	analyst, err := repo.CreateRole(ctx, catalog.JobRole{Title: "Data Analyst", DomainID: ds.ID, Description: "Analyzes data"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}
	frontend, err := repo.CreateRole(ctx, catalog.JobRole{Title: "Frontend Dev", DomainID: web.ID, Description: "Builds UIs"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}

	for _, link := range []catalog.RoleSkillLink{
		{RoleID: analyst.ID, SkillID: skillIDs["Python"]},
		{RoleID: analyst.ID, SkillID: skillIDs["SQL"]},
		{RoleID: analyst.ID, SkillID: skillIDs["Excel"]},
		{RoleID: frontend.ID, SkillID: skillIDs["JavaScript"]},
	} {
		if err := repo.CreateRoleSkill(ctx, link); err != nil {
			t.Fatalf("seed link: %v", err)
		}
	}
	return repo
}

func TestScoreRolesPartialOverlap(t *testing.T) {
	repo := seedCatalog(t)
	set := NormalizeSkills(mustAllSkills(t, repo), []string{"python", "SQL"}, "")

	roles, err := scoreRoles(context.Background(), repo, set, "")
	if err != nil {
		t.Fatalf("scoreRoles: %v", err)
	}
	if len(roles) != 1 {
		t.Fatalf("got %d roles, want 1", len(roles))
	}
	got := roles[0]
	if got.Title != "Data Analyst" {
		t.Fatalf("Title = %q, want Data Analyst", got.Title)
	}
	if want := 2.0 / 3.0; got.Similarity != want {
		t.Fatalf("Similarity = %v, want %v", got.Similarity, want)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"Excel"}) {
		t.Fatalf("MissingSkills = %v, want [Excel]", got.MissingSkills)
	}
	if !reflect.DeepEqual(got.RequiredSkills, []string{"Python", "SQL", "Excel"}) {
		t.Fatalf("RequiredSkills = %v, want required-list order", got.RequiredSkills)
	}
	if got.DomainName != "Data Science" || got.BranchName != "Engineering" {
		t.Fatalf("denormalized context = %q/%q", got.DomainName, got.BranchName)
	}
}

func TestScoreRolesFullOverlap(t *testing.T) {
	repo := seedCatalog(t)
	set := NormalizeSkills(mustAllSkills(t, repo), []string{"python", "sql", "excel"}, "")

	roles, err := scoreRoles(context.Background(), repo, set, "")
	if err != nil {
		t.Fatalf("scoreRoles: %v", err)
	}
	if roles[0].Similarity != 1.0 {
		t.Fatalf("Similarity = %v, want 1.0", roles[0].Similarity)
	}
	if len(roles[0].MissingSkills) != 0 {
		t.Fatalf("MissingSkills = %v, want empty", roles[0].MissingSkills)
	}
}

func TestScoreRolesDomainFilter(t *testing.T) {
	repo := seedCatalog(t)
	set := NormalizeSkills(mustAllSkills(t, repo), []string{"python", "javascript"}, "")

	roles, err := scoreRoles(context.Background(), repo, set, "Web Development")
	if err != nil {
		t.Fatalf("scoreRoles: %v", err)
	}
	if len(roles) != 1 || roles[0].Title != "Frontend Dev" {
		t.Fatalf("roles = %+v, want only Frontend Dev", roles)
	}
}

func TestScoreRolesFallbackOrderedBySkillCount(t *testing.T) {
	repo := seedCatalog(t)

	roles, err := scoreRoles(context.Background(), repo, NormalizedSkillSet{}, "")
	if err != nil {
		t.Fatalf("scoreRoles: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("got %d roles, want 2", len(roles))
	}
	// Data Analyst has 3 linked skills, Frontend Dev 1.
	if roles[0].Title != "Data Analyst" || roles[1].Title != "Frontend Dev" {
		t.Fatalf("fallback order = [%q %q]", roles[0].Title, roles[1].Title)
	}
	for _, r := range roles {
		if r.Similarity != 0.0 {
			t.Fatalf("fallback Similarity = %v, want 0.0", r.Similarity)
		}
		if len(r.MissingSkills) != 0 || len(r.RequiredSkills) != 0 {
			t.Fatalf("fallback role carries skill detail: %+v", r)
		}
	}
}

func TestScoreRolesFallbackLimit(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewMemoryRepo()
	branch, _ := repo.CreateBranch(ctx, catalog.Branch{Name: "Engineering"})
	domain, _ := repo.CreateDomain(ctx, catalog.Domain{Name: "Software", BranchID: branch.ID})
	skill, _ := repo.CreateSkill(ctx, catalog.Skill{Name: "Python"})
	for i := 0; i < fallbackRoleLimit+2; i++ {
		role, err := repo.CreateRole(ctx, catalog.JobRole{Title: "Role", DomainID: domain.ID})
		if err != nil {
			t.Fatalf("seed role: %v", err)
		}
		if err := repo.CreateRoleSkill(ctx, catalog.RoleSkillLink{RoleID: role.ID, SkillID: skill.ID}); err != nil {
			t.Fatalf("seed link: %v", err)
		}
	}

	roles, err := scoreRoles(ctx, repo, NormalizedSkillSet{}, "")
	if err != nil {
		t.Fatalf("scoreRoles: %v", err)
	}
	if len(roles) != fallbackRoleLimit {
		t.Fatalf("got %d fallback roles, want %d", len(roles), fallbackRoleLimit)
	}
}

func mustAllSkills(t *testing.T, repo catalog.Reader) []catalog.Skill {
	t.Helper()
	skills, err := repo.AllSkills(context.Background())
	if err != nil {
		t.Fatalf("AllSkills: %v", err)
	}
	return skills
}
