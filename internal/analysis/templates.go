package analysis

// skillCategory defines one fixed skill category: its key in
// ExtractedSkills and the known skill names tested against the JD text.
// Matched skills keep this order, not the order they appear in the JD.
type skillCategory struct {
	key    string
	skills []string
}

// skillCategories is the fixed category table, in presentation order.
var skillCategories = []skillCategory{
	{key: "coreCS", skills: []string{"DSA", "OOP", "DBMS", "OS", "Networks"}},
	{key: "languages", skills: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"}},
	{key: "web", skills: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"}},
	{key: "data", skills: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"}},
	{key: "cloud", skills: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"}},
	{key: "testing", skills: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"}},
}

// fallbackSkills populates the "other" category when no known skill
// matches anywhere in the JD.
var fallbackSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// enterpriseCompanies are name fragments that classify an employer as
// enterprise. Matching is case-insensitive substring containment.
var enterpriseCompanies = []string{
	"amazon", "google", "microsoft", "meta", "apple", "netflix",
	"infosys", "tcs", "wipro", "hcl", "accenture", "capgemini",
	"ibm", "oracle", "salesforce",
}

// roundTemplate is one interview round before conversion to types.Round.
type roundTemplate struct {
	name  string
	focus string
	why   string
}

var enterpriseRounds = []roundTemplate{
	{name: "Online Assessment", focus: "DSA + Aptitude", why: "To filter candidates based on problem-solving speed and accuracy."},
	{name: "Technical Interview I", focus: "Core DSA + Complexity", why: "Deep dive into fundamental algorithms and data structures."},
	{name: "Technical Interview II", focus: "System Design + Projects", why: "Evaluating your ability to build scalable and maintainable systems."},
	{name: "Managerial / HR", focus: "Culture + Goals", why: "Ensuring alignment with company values and long-term vision."},
}

var startupRounds = []roundTemplate{
	{name: "Practical Coding", focus: "Project Stack + Implementation", why: "Startups need engineers who can hit the ground running with their stack."},
	{name: "System Discussion", focus: "Architecture + Scalability", why: "Evaluating how you think about building features from scratch."},
	{name: "Culture Fit", focus: "Ownership + Communication", why: "Ensuring you can thrive in a fast-paced, high-ownership environment."},
}

// technicalScreeningRound is inserted after the first startup round when the
// JD asks for core CS skills.
var technicalScreeningRound = roundTemplate{
	name:  "Technical Screening",
	focus: "Fundamentals + Logic",
	why:   "Startups often add an early screen if core CS skills are required.",
}

// Company intel strings per classification branch.
const (
	industryFinTech    = "FinTech"
	industryHealthTech = "HealthTech"
	industryDefault    = "Technology Services"

	sizeEnterprise = "Enterprise (2000+)"
	sizeStartup    = "Startup (<200)"

	focusEnterprise = "Structured DSA + Core Fundamentals"
	focusStartup    = "Practical Problem Solving + Stack Depth"
)

// defaultQuestions is the pool cycled through to fill the question list to
// exactly questionCount entries. Repeats are allowed.
var defaultQuestions = []string{
	"Describe a challenging project you worked on.",
	"How do you stay updated with latest technologies?",
	"Explain a time you resolved a conflict in a team.",
	"What are your strengths and weaknesses?",
	"Why do you want to join our company?",
}

const (
	questionSQL   = "Explain indexing and when it helps optimization."
	questionReact = "Explain state management options in React (Context vs Redux)."
)
