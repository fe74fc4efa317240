package recommend

import (
	"reflect"
	"testing"

	"career-backend/internal/catalog"
)

func testSkills() []catalog.Skill {
	return []catalog.Skill{
		{ID: 1, Name: "Python"},
		{ID: 2, Name: "SQL"},
		{ID: 3, Name: "Excel"},
		{ID: 4, Name: "Go"},
	}
}

func TestNormalizeSkillsExactMatchKeepsCanonicalCasing(t *testing.T) {
	set := NormalizeSkills(testSkills(), []string{"python", "sql"}, "")

	want := []string{"Python", "SQL"}
	if !reflect.DeepEqual(set.CanonicalNames, want) {
		t.Fatalf("CanonicalNames = %v, want %v", set.CanonicalNames, want)
	}
	if !reflect.DeepEqual(set.IDs, []int64{1, 2}) {
		t.Fatalf("IDs = %v, want [1 2]", set.IDs)
	}
	if len(set.ExtractedFromText) != 0 {
		t.Fatalf("ExtractedFromText = %v, want empty", set.ExtractedFromText)
	}
}

func TestNormalizeSkillsSkipsUnknownAndDuplicates(t *testing.T) {
	set := NormalizeSkills(testSkills(), []string{"Python", "PYTHON", "Rust"}, "")

	if !reflect.DeepEqual(set.CanonicalNames, []string{"Python"}) {
		t.Fatalf("CanonicalNames = %v, want [Python]", set.CanonicalNames)
	}
	if !reflect.DeepEqual(set.IDs, []int64{1}) {
		t.Fatalf("IDs = %v, want [1]", set.IDs)
	}
}

func TestNormalizeSkillsExtractsFromFreeText(t *testing.T) {
	set := NormalizeSkills(testSkills(), []string{"python"}, "I know some sql and a bit of excel")

	if !reflect.DeepEqual(set.ExtractedFromText, []string{"SQL", "Excel"}) {
		t.Fatalf("ExtractedFromText = %v, want [SQL Excel]", set.ExtractedFromText)
	}
	// List matches come first, then text-extracted, insertion order.
	want := []string{"Python", "SQL", "Excel"}
	if !reflect.DeepEqual(set.CanonicalNames, want) {
		t.Fatalf("CanonicalNames = %v, want %v", set.CanonicalNames, want)
	}
	if !reflect.DeepEqual(set.IDs, []int64{1, 2, 3}) {
		t.Fatalf("IDs = %v, want [1 2 3]", set.IDs)
	}
}

func TestNormalizeSkillsTextMatchDoesNotDuplicateListMatch(t *testing.T) {
	set := NormalizeSkills(testSkills(), []string{"sql"}, "mostly SQL work")

	if !reflect.DeepEqual(set.CanonicalNames, []string{"SQL"}) {
		t.Fatalf("CanonicalNames = %v, want [SQL]", set.CanonicalNames)
	}
	// Extraction still records the text hit even when the list already had it.
	if !reflect.DeepEqual(set.ExtractedFromText, []string{"SQL"}) {
		t.Fatalf("ExtractedFromText = %v, want [SQL]", set.ExtractedFromText)
	}
}

func TestNormalizeSkillsSubstringFalsePositiveIsKept(t *testing.T) {
	// "Go" is a substring of "Django"; plain containment matching accepts it.
	set := NormalizeSkills(testSkills(), nil, "I build sites with Django")

	if !reflect.DeepEqual(set.ExtractedFromText, []string{"Go"}) {
		t.Fatalf("ExtractedFromText = %v, want [Go]", set.ExtractedFromText)
	}
}

func TestNormalizeSkillsEmptyInputs(t *testing.T) {
	set := NormalizeSkills(testSkills(), nil, "")
	if len(set.CanonicalNames) != 0 || len(set.IDs) != 0 || len(set.ExtractedFromText) != 0 {
		t.Fatalf("expected empty set, got %+v", set)
	}

	set = NormalizeSkills(nil, []string{"python"}, "sql everywhere")
	if len(set.CanonicalNames) != 0 || len(set.IDs) != 0 || len(set.ExtractedFromText) != 0 {
		t.Fatalf("expected empty set against empty catalogue, got %+v", set)
	}
}
