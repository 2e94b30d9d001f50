// Package analysis implements the placement readiness engine: a pure,
// deterministic mapping from a raw job description to a structured
// AnalysisRecord (extracted skills, readiness score, interview roadmap,
// study plan, and question list).
package analysis

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prepstack/placement-prep/internal/types"
)

const (
	// questionCount is the fixed length of the question list.
	questionCount = 10

	// Base score components.
	scoreFloor         = 35
	scorePerCategory   = 5
	scoreCategoryCap   = 30
	scoreCompanyBonus  = 10
	scoreRoleBonus     = 10
	scoreLongJDBonus   = 10
	longJDThreshold    = 800
	planEntryCount     = 5
	checklistSpecIndex = 2 // "Round 3: Specialization"
)

// skillPatterns caches one compiled whole-word pattern per known skill.
// Built once at init since the category tables are fixed.
var skillPatterns = buildSkillPatterns()

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, cat := range skillCategories {
		for _, skill := range cat.skills {
			patterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
		}
	}
	return patterns
}

// Analyze turns a job description into an AnalysisRecord. It never fails:
// inputs that match nothing degrade to fallback content. For fixed
// (company, role, jdText) every field except ID and the timestamps is
// deterministic.
func Analyze(company, role, jdText string) *types.AnalysisRecord {
	normalized := strings.ToLower(jdText)

	extracted := types.NewExtractedSkills()
	totalCategories := 0
	for _, cat := range skillCategories {
		found := matchSkills(cat.skills, normalized)
		if len(found) == 0 {
			continue
		}
		totalCategories++
		switch cat.key {
		case "coreCS":
			extracted.CoreCS = found
		case "languages":
			extracted.Languages = found
		case "web":
			extracted.Web = found
		case "data":
			extracted.Data = found
		case "cloud":
			extracted.Cloud = found
		case "testing":
			extracted.Testing = found
		}
	}

	// Default behavior if no skills detected.
	if extracted.Empty() {
		extracted.Other = append([]string{}, fallbackSkills...)
	}

	isEnterprise := classifyEnterprise(company)
	intel := types.CompanyIntel{
		Name:        company,
		Industry:    classifyIndustry(normalized),
		Size:        sizeStartup,
		HiringFocus: focusStartup,
	}
	if isEnterprise {
		intel.Size = sizeEnterprise
		intel.HiringFocus = focusEnterprise
	}

	rounds := buildRoundMapping(isEnterprise, len(extracted.CoreCS) > 0)
	baseScore := computeBaseScore(company, role, jdText, totalCategories)

	now := time.Now().UTC().Format(time.RFC3339)
	return &types.AnalysisRecord{
		ID:                 uuid.NewString(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    extracted,
		CompanyIntel:       intel,
		RoundMapping:       rounds,
		Checklist:          buildChecklist(extracted.Web),
		Plan7Days:          buildPlan(),
		Questions:          buildQuestions(normalized),
		BaseScore:          baseScore,
		SkillConfidenceMap: map[string]string{},
		FinalScore:         baseScore,
	}
}

// matchSkills returns the skills from the category's predefined list that
// appear in the normalized text as case-insensitive whole words, preserving
// the category's order.
func matchSkills(skills []string, normalized string) []string {
	var found []string
	for _, skill := range skills {
		if skillPatterns[skill].MatchString(normalized) {
			found = append(found, skill)
		}
	}
	return found
}

// classifyEnterprise reports whether the company name contains any known
// large-company fragment.
func classifyEnterprise(company string) bool {
	name := strings.ToLower(company)
	for _, fragment := range enterpriseCompanies {
		if strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}

// classifyIndustry picks an industry from JD keywords. Finance keywords win
// over health keywords; anything else falls back to the generic default.
func classifyIndustry(normalized string) string {
	if strings.Contains(normalized, "finance") || strings.Contains(normalized, "bank") {
		return industryFinTech
	}
	if strings.Contains(normalized, "medical") || strings.Contains(normalized, "health") {
		return industryHealthTech
	}
	return industryDefault
}

// buildRoundMapping selects the round template by company classification.
// Non-enterprise JDs that require core CS skills get an extra Technical
// Screening round inserted after the first round.
func buildRoundMapping(isEnterprise, hasCoreCS bool) []types.Round {
	template := startupRounds
	if isEnterprise {
		template = enterpriseRounds
	}

	rounds := make([]types.Round, 0, len(template)+1)
	for _, r := range template {
		rounds = append(rounds, types.Round{
			RoundTitle:   r.name,
			FocusAreas:   []string{r.focus},
			WhyItMatters: r.why,
		})
	}

	if !isEnterprise && hasCoreCS {
		screening := types.Round{
			RoundTitle:   technicalScreeningRound.name,
			FocusAreas:   []string{technicalScreeningRound.focus},
			WhyItMatters: technicalScreeningRound.why,
		}
		rounds = append(rounds[:1], append([]types.Round{screening}, rounds[1:]...)...)
	}

	return rounds
}

// computeBaseScore derives the one-time base score from JD content and
// metadata. The floor is 35 and the result is capped at 100.
func computeBaseScore(company, role, jdText string, totalCategories int) int {
	score := scoreFloor

	categoryBonus := totalCategories * scorePerCategory
	if categoryBonus > scoreCategoryCap {
		categoryBonus = scoreCategoryCap
	}
	score += categoryBonus

	if strings.TrimSpace(company) != "" {
		score += scoreCompanyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += scoreRoleBonus
	}
	if len(jdText) > longJDThreshold {
		score += scoreLongJDBonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

// buildChecklist returns the fixed 4-round verification checklist, with a
// derived "<skill> Principles" item per extracted web skill appended to the
// Specialization round.
func buildChecklist(webSkills []string) []types.ChecklistRound {
	checklist := []types.ChecklistRound{
		{RoundTitle: "Round 1: Aptitude", Items: []string{"Quantitative Aptitude", "Logical Reasoning", "Verbal Ability"}},
		{RoundTitle: "Round 2: Tech Foundation", Items: []string{"Data Structures", "Algorithms", "OOPs Concepts"}},
		{RoundTitle: "Round 3: Specialization", Items: []string{"Project Discussion", "Tech Stack"}},
		{RoundTitle: "Round 4: HR", Items: []string{"Behavioral", "Goals"}},
	}
	for _, skill := range webSkills {
		checklist[checklistSpecIndex].Items = append(checklist[checklistSpecIndex].Items, skill+" Principles")
	}
	return checklist
}

// buildPlan returns the fixed 7-day study plan. Entries cover day ranges,
// so the plan always has exactly 5 entries.
func buildPlan() []types.PlanDay {
	return []types.PlanDay{
		{Day: "Day 1–2", Focus: "Basics & Core CS", Tasks: []string{"OS Basics", "Computer Networks", "DBMS Fundamentals"}},
		{Day: "Day 3–4", Focus: "DSA & Coding", Tasks: []string{"Arrays & Strings", "Linked Lists", "Trees & Graphs"}},
		{Day: "Day 5", Focus: "Projects & Alignment", Tasks: []string{"Project Architecture", "Resume Proofreading"}},
		{Day: "Day 6", Focus: "Mock Interviews", Tasks: []string{"Behavioral Questions", "Whiteboard Coding"}},
		{Day: "Day 7", Focus: "Final Revision", Tasks: []string{"Sorting Algorithms", "Weak Areas Review"}},
	}
}

// buildQuestions assembles exactly questionCount interview questions.
// Conditional questions for SQL and React come first, then the default pool
// fills the rest cyclically by index. Deduplication is intentionally not
// enforced.
func buildQuestions(normalized string) []string {
	questions := make([]string, 0, questionCount)
	if strings.Contains(normalized, "sql") {
		questions = append(questions, questionSQL)
	}
	if strings.Contains(normalized, "react") {
		questions = append(questions, questionReact)
	}

	for len(questions) < questionCount {
		questions = append(questions, defaultQuestions[len(questions)%len(defaultQuestions)])
	}
	return questions[:questionCount]
}
