// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Confidence values a user can assign to an extracted skill.
const (
	ConfidenceKnow     = "know"
	ConfidencePractice = "practice"
)

// AnalysisRecord represents one job-description analysis: the extracted
// skills, the readiness scores, and the templated prep material derived
// from them. BaseScore is computed once at creation and never changes;
// FinalScore and SkillConfidenceMap are the only mutable fields.
type AnalysisRecord struct {
	ID                 string            `json:"id"`
	CreatedAt          string            `json:"createdAt"`
	UpdatedAt          string            `json:"updatedAt"`
	Company            string            `json:"company"`
	Role               string            `json:"role"`
	JDText             string            `json:"jdText"`
	ExtractedSkills    ExtractedSkills   `json:"extractedSkills"`
	CompanyIntel       CompanyIntel      `json:"companyIntel"`
	RoundMapping       []Round           `json:"roundMapping"`
	Checklist          []ChecklistRound  `json:"checklist"`
	Plan7Days          []PlanDay         `json:"plan7Days"`
	Questions          []string          `json:"questions"`
	BaseScore          int               `json:"baseScore"`
	SkillConfidenceMap map[string]string `json:"skillConfidenceMap"`
	FinalScore         int               `json:"finalScore"`
}

// Malformed reports whether a stored record is missing the fields the rest
// of the system depends on. Such records are shown as inert placeholders and
// excluded from interaction; they are never repaired or deleted.
func (r *AnalysisRecord) Malformed() bool {
	return r.ID == "" || r.BaseScore == 0
}

// ExtractedSkills groups matched skill names by category. Every category is
// always present; a category with no matches is an empty (non-nil) slice.
type ExtractedSkills struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// NewExtractedSkills returns an ExtractedSkills with every category
// initialized to an empty slice, so JSON output always carries all keys.
func NewExtractedSkills() ExtractedSkills {
	return ExtractedSkills{
		CoreCS:    []string{},
		Languages: []string{},
		Web:       []string{},
		Data:      []string{},
		Cloud:     []string{},
		Testing:   []string{},
		Other:     []string{},
	}
}

// SkillCategory pairs a category's JSON key and display label with its
// matched skills, in the fixed category order.
type SkillCategory struct {
	Key    string
	Label  string
	Skills []string
}

// Categories returns the skill categories in their fixed order with the
// display labels used in reports.
func (s ExtractedSkills) Categories() []SkillCategory {
	return []SkillCategory{
		{Key: "coreCS", Label: "Core CS", Skills: s.CoreCS},
		{Key: "languages", Label: "Languages", Skills: s.Languages},
		{Key: "web", Label: "Web", Skills: s.Web},
		{Key: "data", Label: "Data", Skills: s.Data},
		{Key: "cloud", Label: "Cloud/DevOps", Skills: s.Cloud},
		{Key: "testing", Label: "Testing", Skills: s.Testing},
		{Key: "other", Label: "General Skills", Skills: s.Other},
	}
}

// All returns every extracted skill across categories, in category order.
func (s ExtractedSkills) All() []string {
	var all []string
	for _, cat := range s.Categories() {
		all = append(all, cat.Skills...)
	}
	return all
}

// Empty reports whether no skills were matched in any category.
func (s ExtractedSkills) Empty() bool {
	for _, cat := range s.Categories() {
		if len(cat.Skills) > 0 {
			return false
		}
	}
	return true
}

// CompanyIntel holds the heuristic, non-authoritative company classification
// derived from the company name and JD text.
type CompanyIntel struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	HiringFocus string `json:"hiringFocus"`
}

// Round represents one interview round in the templated roadmap.
type Round struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistRound mirrors round information as a flat checklist for export.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one entry of the 7-day study plan. Entries cover day ranges
// (Day 1–2, Day 3–4, ...), so the plan always has exactly 5 entries.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}
