package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filler produces JD padding of at least n characters that contains none of
// the known skill keywords or industry keywords.
func filler(n int) string {
	sentence := "We are seeking a motivated engineer to join our growing team and deliver quality features. "
	var sb strings.Builder
	for sb.Len() < n {
		sb.WriteString(sentence)
	}
	return sb.String()
}

func TestAnalyze_Deterministic(t *testing.T) {
	jd := "Looking for Java and React experience with SQL. " + filler(100)

	first := Analyze("Google", "SWE", jd)
	second := Analyze("Google", "SWE", jd)

	assert.Equal(t, first.ExtractedSkills, second.ExtractedSkills)
	assert.Equal(t, first.BaseScore, second.BaseScore)
	assert.Equal(t, first.RoundMapping, second.RoundMapping)
	assert.Equal(t, first.CompanyIntel, second.CompanyIntel)
	assert.Equal(t, first.Questions, second.Questions)
	assert.Equal(t, first.Plan7Days, second.Plan7Days)
	assert.Equal(t, first.Checklist, second.Checklist)

	// Only id and timestamps may differ between calls.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAnalyze_CategoryCompleteness(t *testing.T) {
	record := Analyze("", "", "")

	assert.NotNil(t, record.ExtractedSkills.CoreCS)
	assert.NotNil(t, record.ExtractedSkills.Languages)
	assert.NotNil(t, record.ExtractedSkills.Web)
	assert.NotNil(t, record.ExtractedSkills.Data)
	assert.NotNil(t, record.ExtractedSkills.Cloud)
	assert.NotNil(t, record.ExtractedSkills.Testing)
	assert.NotNil(t, record.ExtractedSkills.Other)
}

func TestAnalyze_FallbackWhenNoSkillsMatch(t *testing.T) {
	record := Analyze("Acme", "Intern", filler(100))

	assert.Equal(t, []string{"Communication", "Problem solving", "Basic coding", "Projects"}, record.ExtractedSkills.Other)
	assert.Empty(t, record.ExtractedSkills.CoreCS)
	assert.Empty(t, record.ExtractedSkills.Languages)
	assert.Empty(t, record.ExtractedSkills.Web)
	assert.Empty(t, record.ExtractedSkills.Data)
	assert.Empty(t, record.ExtractedSkills.Cloud)
	assert.Empty(t, record.ExtractedSkills.Testing)
}

func TestAnalyze_QuestionCountAlwaysTen(t *testing.T) {
	inputs := []string{
		"",
		"short",
		"We use SQL heavily.",
		"React and SQL and Java everywhere. " + filler(1000),
	}
	for _, jd := range inputs {
		record := Analyze("", "", jd)
		assert.Len(t, record.Questions, 10, "jd: %q", jd)
	}
}

func TestAnalyze_PlanAlwaysFiveEntries(t *testing.T) {
	record := Analyze("Netflix", "Backend Engineer", "Kubernetes and Docker experience required.")
	require.Len(t, record.Plan7Days, 5)
	assert.Equal(t, "Day 1–2", record.Plan7Days[0].Day)
	assert.Equal(t, "Day 7", record.Plan7Days[4].Day)
}

func TestAnalyze_EnterpriseExample(t *testing.T) {
	jd := "We need strong Java skills, React frontend experience, and solid SQL. " + filler(900)
	require.Greater(t, len(jd), 800)

	record := Analyze("Google", "SWE", jd)

	assert.Equal(t, []string{"Java"}, record.ExtractedSkills.Languages)
	assert.Equal(t, []string{"React"}, record.ExtractedSkills.Web)
	assert.Equal(t, []string{"SQL"}, record.ExtractedSkills.Data)

	// 3 categories matched: 35 + 15 + 10 (company) + 10 (role) + 10 (length).
	assert.Equal(t, 80, record.BaseScore)
	assert.Equal(t, record.BaseScore, record.FinalScore)

	// Enterprise classification selects the 4-round template.
	require.Len(t, record.RoundMapping, 4)
	assert.Equal(t, "Online Assessment", record.RoundMapping[0].RoundTitle)
	assert.Equal(t, "Enterprise (2000+)", record.CompanyIntel.Size)
	assert.Equal(t, "Structured DSA + Core Fundamentals", record.CompanyIntel.HiringFocus)

	// Conditional questions come before the cyclic fill.
	assert.Equal(t, "Explain indexing and when it helps optimization.", record.Questions[0])
	assert.Equal(t, "Explain state management options in React (Context vs Redux).", record.Questions[1])
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	record := Analyze("", "", "short")

	assert.Equal(t, 35, record.BaseScore)
	assert.Equal(t, 35, record.FinalScore)
	assert.Equal(t, []string{"Communication", "Problem solving", "Basic coding", "Projects"}, record.ExtractedSkills.Other)
	assert.Empty(t, record.SkillConfidenceMap)
	assert.NotEmpty(t, record.ID)
	assert.NotEmpty(t, record.CreatedAt)
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
}

func TestAnalyze_WhitespaceOnlyCompanyGetsNoBonus(t *testing.T) {
	record := Analyze("   ", "\t", "short")
	assert.Equal(t, 35, record.BaseScore)
}

func TestAnalyze_StartupTechnicalScreeningInserted(t *testing.T) {
	record := Analyze("Acme Labs", "Engineer", "Must know DSA fundamentals.")

	require.Len(t, record.RoundMapping, 4)
	assert.Equal(t, "Practical Coding", record.RoundMapping[0].RoundTitle)
	assert.Equal(t, "Technical Screening", record.RoundMapping[1].RoundTitle)
	assert.Equal(t, []string{"Fundamentals + Logic"}, record.RoundMapping[1].FocusAreas)
	assert.Equal(t, "System Discussion", record.RoundMapping[2].RoundTitle)
	assert.Equal(t, "Culture Fit", record.RoundMapping[3].RoundTitle)
}

func TestAnalyze_StartupWithoutCoreCS(t *testing.T) {
	record := Analyze("Acme Labs", "Engineer", "Must know React.")

	require.Len(t, record.RoundMapping, 3)
	assert.Equal(t, "Startup (<200)", record.CompanyIntel.Size)
	assert.Equal(t, "Practical Problem Solving + Stack Depth", record.CompanyIntel.HiringFocus)
}

func TestAnalyze_EnterpriseNeverGetsScreeningRound(t *testing.T) {
	record := Analyze("Amazon", "SDE", "Must know DSA fundamentals.")

	require.Len(t, record.RoundMapping, 4)
	for _, round := range record.RoundMapping {
		assert.NotEqual(t, "Technical Screening", round.RoundTitle)
	}
}

func TestAnalyze_IndustryClassification(t *testing.T) {
	tests := []struct {
		name     string
		jd       string
		industry string
	}{
		{name: "finance keyword", jd: "A finance platform role.", industry: "FinTech"},
		{name: "bank keyword", jd: "Work at a leading bank.", industry: "FinTech"},
		{name: "medical keyword", jd: "Build medical software.", industry: "HealthTech"},
		{name: "health keyword", jd: "A health records product.", industry: "HealthTech"},
		{name: "finance wins over health", jd: "A finance tool for health clinics.", industry: "FinTech"},
		{name: "default", jd: "A general engineering role.", industry: "Technology Services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Analyze("Acme", "Engineer", tt.jd)
			assert.Equal(t, tt.industry, record.CompanyIntel.Industry)
		})
	}
}

func TestAnalyze_WholeWordMatching(t *testing.T) {
	// "JavaScript" must not also count as "Java".
	record := Analyze("", "", "Strong JavaScript developer wanted.")
	assert.Equal(t, []string{"JavaScript"}, record.ExtractedSkills.Languages)

	// Skills keep category order, not JD order.
	record = Analyze("", "", "Python before Java in this text.")
	assert.Equal(t, []string{"Java", "Python"}, record.ExtractedSkills.Languages)
}

func TestAnalyze_ChecklistAdaptsToWebSkills(t *testing.T) {
	record := Analyze("", "", "React and GraphQL experience required.")

	require.Len(t, record.Checklist, 4)
	specialization := record.Checklist[2]
	assert.Equal(t, "Round 3: Specialization", specialization.RoundTitle)
	assert.Contains(t, specialization.Items, "React Principles")
	assert.Contains(t, specialization.Items, "GraphQL Principles")

	// No web skills means the base items only.
	record = Analyze("", "", "Pure SQL role.")
	assert.Equal(t, []string{"Project Discussion", "Tech Stack"}, record.Checklist[2].Items)
}

func TestAnalyze_BaseScoreBounds(t *testing.T) {
	inputs := []struct {
		company, role, jd string
	}{
		{"", "", ""},
		{"Google", "SWE", "Java Python React SQL AWS Selenium DSA. " + filler(900)},
		{"Acme", "", "React"},
	}
	for _, in := range inputs {
		record := Analyze(in.company, in.role, in.jd)
		assert.GreaterOrEqual(t, record.BaseScore, 35)
		assert.LessOrEqual(t, record.BaseScore, 100)
	}
}

func TestAnalyze_CategoryBonusCapped(t *testing.T) {
	// All 6 categories match, but the category bonus caps at 30.
	jd := "DSA Java React SQL AWS Selenium."
	record := Analyze("", "", jd)

	// 35 + min(6*5, 30) = 65; no company/role/length bonus.
	assert.Equal(t, 65, record.BaseScore)
}

func TestAnalyze_QuestionFillCycles(t *testing.T) {
	record := Analyze("", "", "")

	require.Len(t, record.Questions, 10)
	// No conditional questions, so the pool repeats from index 5.
	assert.Equal(t, record.Questions[0], record.Questions[5])
	assert.Equal(t, record.Questions[4], record.Questions[9])
	assert.Equal(t, "Describe a challenging project you worked on.", record.Questions[0])
}

func TestAnalyze_JDStoredVerbatim(t *testing.T) {
	jd := "  Mixed CASE Input with React\r\n"
	record := Analyze("Acme", "Engineer", jd)
	assert.Equal(t, jd, record.JDText)
}
