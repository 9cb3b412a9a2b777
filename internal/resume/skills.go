package resume

import "strings"

// SkillDictionaryVersion identifies the contents of the skill dictionary. Bump it
// whenever an entry is added, removed or reordered.
const SkillDictionaryVersion = "2025.1"

// skillDictionary is ordered; matched skills are reported in this order.
var skillDictionary = []string{
	// languages
	"javascript", "typescript", "python", "java", "c++", "c#", "go", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "perl",
	// frontend
	"react", "angular", "vue", "svelte", "next.js", "nextjs", "nuxt",
	"html", "css", "sass", "tailwind", "bootstrap", "webpack", "vite",
	// backend
	"node.js", "nodejs", "express", "fastify", "django", "flask", "spring",
	"spring boot", "asp.net", ".net", "rails", "laravel",
	// databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "dynamodb",
	"sqlite", "oracle", "cassandra", "elasticsearch",
	// cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"ci/cd", "github actions", "gitlab ci", "ansible", "nginx", "linux",
	// data and ml
	"machine learning", "deep learning", "tensorflow", "pytorch", "pandas",
	"numpy", "scikit-learn", "data analysis", "data science", "nlp",
	"computer vision", "spark", "hadoop",
	// tools
	"git", "jira", "figma", "postman", "graphql", "rest", "restful",
	"microservices", "agile", "scrum", "kanban",
	// mobile
	"react native", "flutter", "ios", "android",
	// other
	"api", "oauth", "jwt", "websocket", "testing", "jest", "mocha",
	"cypress", "selenium", "unit testing", "integration testing",
	"system design", "design patterns", "oop", "functional programming",
}

// shortSkillLen is the longest entry that needs whole-token matching.
const shortSkillLen = 2

// skillPatterns holds each entry in the form it takes after normalization
// ("ci/cd" is searched as "ci cd").
var skillPatterns = func() []string {
	patterns := make([]string, len(skillDictionary))
	for i, skill := range skillDictionary {
		patterns[i] = Normalize(skill)
	}
	return patterns
}()

// SkillDictionary returns a copy of the skill dictionary in declaration order.
func SkillDictionary() []string {
	return append([]string(nil), skillDictionary...)
}

// MatchSkills returns the dictionary entries present in normalized text, in
// dictionary order. The result is never nil.
func MatchSkills(text string) []string {
	matched := make([]string, 0)
	if text == "" {
		return matched
	}

	for i, skill := range skillDictionary {
		pattern := skillPatterns[i]
		if len(pattern) <= shortSkillLen {
			if containsToken(text, pattern) {
				matched = append(matched, skill)
			}
			continue
		}
		if strings.Contains(text, pattern) {
			matched = append(matched, skill)
		}
	}

	return matched
}

// containsToken reports whether token occurs in text as a standalone token.
func containsToken(text, token string) bool {
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], token)
		if idx < 0 {
			return false
		}

		start := offset + idx
		end := start + len(token)
		if (start == 0 || !isTokenByte(text, start-1)) && (end == len(text) || !isTokenByte(text, end)) {
			return true
		}

		offset = start + 1
	}

	return false
}

// isTokenByte reports whether text[i] glues neighbouring characters into one token.
// A dot only does so between two word characters ("go.dev"), not at a sentence end.
func isTokenByte(text string, i int) bool {
	c := text[i]
	switch {
	case isWordByte(c):
		return true
	case c == '-' || c == '+' || c == '#' || c == '@':
		return true
	case c == '.':
		return i > 0 && i+1 < len(text) && isWordByte(text[i-1]) && isWordByte(text[i+1])
	default:
		return false
	}
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
