package quizgen

import "testing"

func TestAllUnits_CoversMatrixPlusSoftSkills(t *testing.T) {
	careers := len(AllCareers())
	units := AllUnits()

	want := careers*MaxLevel + 1
	if len(units) != want {
		t.Fatalf("expected %d units, got %d", want, len(units))
	}
	if !units[len(units)-1].SoftSkills {
		t.Fatal("expected soft-skills unit last")
	}
}

func TestUnitKey(t *testing.T) {
	u := Unit{Sector: "finance", Career: "auditor", Level: 3}
	if u.Key() != "finance_auditor_lvl3" {
		t.Errorf("unexpected key: %s", u.Key())
	}
	if (Unit{SoftSkills: true}).Key() != "soft_skills" {
		t.Error("unexpected soft-skills key")
	}
}

func TestBranchFor(t *testing.T) {
	if got := BranchFor("finance", "auditor"); got != "Accounting & Auditing" {
		t.Errorf("auditor branch = %q", got)
	}
	if got := BranchFor("technology", "BACKEND_DEVELOPER"); got != "Software Development" {
		t.Errorf("backend branch = %q", got)
	}
	if got := BranchFor("finance", "nonexistent"); got != "" {
		t.Errorf("expected empty branch, got %q", got)
	}
}

func TestValidSectorAndCareer(t *testing.T) {
	if !ValidSector("construction") {
		t.Error("construction should be valid")
	}
	if ValidSector("agriculture") {
		t.Error("agriculture should be invalid")
	}
	if !ValidCareer("education", "teacher") {
		t.Error("teacher should be valid in education")
	}
	if ValidCareer("education", "nurse") {
		t.Error("nurse should be invalid in education")
	}
}

func TestUnitsForCareer(t *testing.T) {
	units, err := UnitsForCareer("health_social_care", "nurse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != MaxLevel {
		t.Fatalf("expected %d units, got %d", MaxLevel, len(units))
	}
	for i, u := range units {
		if u.Level != i+1 {
			t.Errorf("unit %d has level %d", i, u.Level)
		}
	}

	if _, err := UnitsForCareer("health_social_care", "plumber"); err == nil {
		t.Fatal("expected error for unknown career")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("health_social_care"); got != "health social care" {
		t.Errorf("got %q", got)
	}
}

func TestSectorSummaries(t *testing.T) {
	summaries := SectorSummaries()
	if len(summaries) != len(Sectors()) {
		t.Fatalf("expected %d summaries, got %d", len(Sectors()), len(summaries))
	}
	for _, s := range summaries {
		if s.Description == "" {
			t.Errorf("sector %s has no description", s.Name)
		}
		if len(s.Careers) == 0 || len(s.Branches) == 0 {
			t.Errorf("sector %s missing careers or branches", s.Name)
		}
	}
}
