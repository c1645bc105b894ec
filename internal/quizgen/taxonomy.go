package quizgen

import (
	"fmt"
	"sort"
	"strings"
)

// Branch groups related careers within a sector.
type Branch struct {
	Name    string
	Careers []string
}

// sectorOrder fixes the iteration order for deterministic full runs.
var sectorOrder = []string{
	"technology",
	"finance",
	"health_social_care",
	"education",
	"construction",
}

var sectorBranches = map[string][]Branch{
	"technology": {
		{Name: "Software Development", Careers: []string{
			"FRONTEND_DEVELOPER",
			"BACKEND_DEVELOPER",
		}},
		{Name: "Mobile Development", Careers: []string{
			"IOS_DEVELOPER",
			"ANDROID_DEVELOPER",
			"MOBILE_DEVELOPMENT_CROSS_PLATFORM",
		}},
		{Name: "Data Science & AI", Careers: []string{
			"DATA_SCIENTIST",
			"DATA_ANALYST",
			"DATA_ENGINEER",
			"AI_ML_ENGINEER",
		}},
		{Name: "Infrastructure & Cloud Operations", Careers: []string{
			"DEVOPS_ENGINEER",
			"CLOUD_ENGINEER",
			"DATABASE_ADMINISTRATOR_DBA",
			"NETWORK_ENGINEER",
			"SYSTEMS_ADMINISTRATOR",
		}},
		{Name: "Cybersecurity", Careers: []string{
			"CYBERSECURITY_ANALYST",
		}},
		{Name: "Quality Assurance", Careers: []string{
			"QA_AUTOMATION_ENGINEER_SET",
		}},
		{Name: "Product & Design", Careers: []string{
			"UX_UI_DESIGNER",
			"TECHNICAL_PRODUCT_MANAGER",
			"TECHNICAL_PROJECT_MANAGER_SCRUM_MASTER",
		}},
	},
	"finance": {
		{Name: "Investment Banking & Asset Management", Careers: []string{
			"investment_banker",
			"portfolio_manager",
			"trader",
			"fund_manager",
			"wealth_manager",
		}},
		{Name: "Financial Analysis & Planning", Careers: []string{
			"financial_analyst",
			"financial_planner",
			"budget_analyst",
		}},
		{Name: "Accounting & Auditing", Careers: []string{
			"accountant",
			"tax_consultant",
			"auditor",
		}},
		{Name: "Risk Management & Compliance", Careers: []string{
			"risk_manager",
			"compliance_officer",
			"credit_analyst",
			"insurance_underwriter",
		}},
	},
	"health_social_care": {
		{Name: "Nursing & Midwifery", Careers: []string{
			"nurse",
			"midwife",
		}},
		{Name: "Allied Health & Therapy", Careers: []string{
			"occupational_therapist",
			"physiotherapist",
			"mental_health_counselor",
		}},
		{Name: "Social Care & Support", Careers: []string{
			"care_worker",
			"social_worker",
			"healthcare_assistant",
		}},
		{Name: "Public Health", Careers: []string{
			"public_health_officer",
		}},
	},
	"education": {
		{Name: "Teaching & Instruction", Careers: []string{
			"teacher",
			"special_need_educator",
		}},
	},
	"construction": {
		{Name: "Engineering & Design", Careers: []string{
			"civil_engineer",
			"architect",
			"structural_engineer",
		}},
		{Name: "Construction Management & Cost", Careers: []string{
			"site_manager",
			"quantity_surveyor",
			"project_manager",
		}},
		{Name: "Trades & Labour", Careers: []string{
			"construction_worker",
		}},
	},
}

var sectorDescriptions = map[string]string{
	"technology":         "Software, data, infrastructure and security roles across the digital economy.",
	"finance":            "Banking, investment, accounting, risk and compliance professions.",
	"health_social_care": "Clinical, therapeutic and social support roles in health and care settings.",
	"education":          "Teaching and learner support roles across schools and special education.",
	"construction":       "Engineering, site management and trade roles in the built environment.",
}

// MinLevel and MaxLevel bound the difficulty range for every career.
const (
	MinLevel = 1
	MaxLevel = 5
)

// Sectors returns all sector names in generation order.
func Sectors() []string {
	out := make([]string, len(sectorOrder))
	copy(out, sectorOrder)
	return out
}

// ValidSector reports whether the sector exists in the taxonomy.
func ValidSector(sector string) bool {
	_, ok := sectorBranches[sector]
	return ok
}

// Branches returns the branches of a sector, or nil for an unknown sector.
func Branches(sector string) []Branch {
	return sectorBranches[sector]
}

// Careers returns the flat career list for a sector across all branches.
func Careers(sector string) []string {
	var out []string
	for _, b := range sectorBranches[sector] {
		out = append(out, b.Careers...)
	}
	return out
}

// AllCareers returns every career across all sectors, sector order first.
func AllCareers() []string {
	var out []string
	for _, s := range sectorOrder {
		out = append(out, Careers(s)...)
	}
	return out
}

// BranchFor returns the branch name a career belongs to, or "" if unknown.
func BranchFor(sector, career string) string {
	for _, b := range sectorBranches[sector] {
		for _, c := range b.Careers {
			if c == career {
				return b.Name
			}
		}
	}
	return ""
}

// ValidCareer reports whether the career exists within the sector.
func ValidCareer(sector, career string) bool {
	return BranchFor(sector, career) != ""
}

// SectorDescription returns a short description of the sector, or "".
func SectorDescription(sector string) string {
	return sectorDescriptions[sector]
}

// RoleContext carries the prompt grounding for one sector/career pair.
// The sector description may be empty for an unknown sector.
type RoleContext struct {
	SectorDescription string
	Branch            string
}

// ContextFor assembles the role context used by the generator prompt.
func ContextFor(sector, career string) RoleContext {
	return RoleContext{
		SectorDescription: SectorDescription(sector),
		Branch:            BranchFor(sector, career),
	}
}

// UnitsForSector expands one sector into its career×level work items.
func UnitsForSector(sector string) []Unit {
	var units []Unit
	for _, career := range Careers(sector) {
		for level := MinLevel; level <= MaxLevel; level++ {
			units = append(units, Unit{Sector: sector, Career: career, Level: level})
		}
	}
	return units
}

// UnitsForCareer expands one career into its level work items.
func UnitsForCareer(sector, career string) ([]Unit, error) {
	if !ValidCareer(sector, career) {
		return nil, fmt.Errorf("unknown career %q in sector %q", career, sector)
	}
	units := make([]Unit, 0, MaxLevel)
	for level := MinLevel; level <= MaxLevel; level++ {
		units = append(units, Unit{Sector: sector, Career: career, Level: level})
	}
	return units, nil
}

// AllUnits expands the full matrix plus the trailing soft-skills unit.
func AllUnits() []Unit {
	var units []Unit
	for _, sector := range sectorOrder {
		units = append(units, UnitsForSector(sector)...)
	}
	units = append(units, Unit{SoftSkills: true})
	return units
}

// DisplayName renders a career or sector identifier for prompts,
// e.g. "FRONTEND_DEVELOPER" becomes "FRONTEND DEVELOPER" and
// "health_social_care" becomes "health social care".
func DisplayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// SectorSummary describes a sector for the HTTP listing endpoint.
type SectorSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Branches    []string `json:"branches"`
	Careers     []string `json:"careers"`
}

// SectorSummaries returns the listing for every sector, sorted by name.
func SectorSummaries() []SectorSummary {
	out := make([]SectorSummary, 0, len(sectorBranches))
	for _, name := range sectorOrder {
		s := SectorSummary{
			Name:        name,
			Description: SectorDescription(name),
			Careers:     Careers(name),
		}
		for _, b := range Branches(name) {
			s.Branches = append(s.Branches, b.Name)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
