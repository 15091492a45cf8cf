package jdmatch

import (
	"regexp"
	"strings"
)

// Catalogs are ordered: the recommender truncates in catalog order, so these
// stay slices rather than maps. They are never mutated after init.

// hardSkillWords are single-token technical skills matched as substrings.
var hardSkillWords = []string{
	// languages
	"javascript", "typescript", "python", "java", "c++", "c#", "golang", "rust",
	"ruby", "php", "swift", "kotlin", "haskell", "elixir",
	"clojure", "matlab", "sql", "html", "css", "sass", "bash",
	// frameworks
	"react", "angular", "vue.js", "svelte", "next.js", "node.js", "express",
	"django", "flask", "fastapi", "spring", "rails", "laravel", ".net",
	"graphql", "redux", "jquery", "tailwind",
	// databases
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	"dynamodb", "sqlite", "oracle", "firebase",
	// cloud / devops
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "linux", "nginx", "kafka", "rabbitmq", "microservices", "serverless",
	// data / ml
	"tensorflow", "pytorch", "pandas", "numpy", "spark", "hadoop", "tableau",
	"airflow", "scikit-learn",
}

// hardSkillPhrases are multi-word technical skills.
var hardSkillPhrases = []string{
	"machine learning", "deep learning", "data science", "data engineering",
	"data analysis", "natural language processing", "computer vision",
	"artificial intelligence", "full stack", "front end", "back end",
	"rest api", "ci/cd", "unit testing", "agile methodology", "system design",
}

var softSkills = []string{
	"communication", "leadership", "teamwork", "collaboration", "problem solving",
	"problem-solving", "critical thinking", "time management", "adaptability",
	"creativity", "attention to detail", "analytical", "mentoring", "self-motivated",
	"interpersonal", "organizational", "presentation", "negotiation",
	"decision making", "ownership",
}

var educationTerms = []string{
	"bachelor", "master", "phd", "ph.d", "doctorate", "associate degree", "mba",
	"diploma", "computer science", "software engineering", "computer engineering",
	"electrical engineering", "information technology", "information systems",
	"mathematics", "statistics", "physics", "economics", "business administration",
	"finance",
}

var toolCatalog = []string{
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack", "figma",
	"sketch", "photoshop", "postman", "webpack", "vite", "npm", "yarn", "jenkins",
	"circleci", "github actions", "datadog", "grafana", "prometheus", "splunk",
	"sentry", "tableau", "power bi", "excel", "notion", "trello", "asana",
	"vs code", "intellij", "docker",
}

// certificationAcronyms are matched case-insensitively on word boundaries and may
// be followed by "certified" or "certification".
var certificationAcronyms = []string{
	"aws", "pmp", "cissp", "ccna", "ccnp", "cisa", "cism", "comptia", "itil",
	"csm", "cpa", "cfa", "ckad", "cka", "gcp", "azure",
}

var stopWords = toSet([]string{
	"and", "the", "for", "with", "you", "are", "have", "will", "this", "that",
	"from", "our", "your", "their", "they", "work", "team", "role", "job", "join",
	"about", "which", "what", "who", "how", "can", "not", "but", "all", "also",
	"more", "than", "into", "has", "its", "was", "were", "been", "each", "new",
	"use", "using", "used", "well", "high", "good", "able", "get", "set", "such",
	"must", "should", "would", "could", "may", "any", "other", "some", "including",
	"within", "across", "while", "where", "when", "there", "these", "those", "them",
	"we're", "you'll", "looking", "required", "requirements", "preferred",
	"experience", "years", "year", "strong", "ability", "skills", "knowledge",
	"plus", "etc", "over", "like", "based", "help", "make", "part", "both",
	"only", "very", "just", "most", "many", "much", "being", "does",
	"candidate", "position", "company", "opportunity", "responsibilities",
})

var (
	experienceMarkerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)\b`),
		regexp.MustCompile(`(?i)\b(?:senior|sr)\b\.?`),
		regexp.MustCompile(`(?i)\b(?:junior|jr)\b\.?`),
		regexp.MustCompile(`(?i)\b(?:mid-level|mid level|intermediate)\b`),
		regexp.MustCompile(`(?i)\bentry[- ]level\b`),
		regexp.MustCompile(`(?i)\b(?:lead|principal|staff)\b`),
	}

	requiredYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`)

	certificationPhraseRe  = regexp.MustCompile(`(?i)\b(?:certified|certification)\s+[a-z0-9+#-]+`)
	certificationAcronymRe = regexp.MustCompile(
		`(?i)\b(?:` + joinAlternation(certificationAcronyms) + `)\b(?:\s+(?:certified|certification))?`)
)

func joinAlternation(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

func toSet(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}
