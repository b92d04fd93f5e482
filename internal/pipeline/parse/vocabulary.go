package parse

// SkillVocabulary is the fixed, lowercase skill list shared by the field
// extractor and the embedding matcher's skill-overlap helper.
var SkillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"spring boot", "django", "flask", "sql", "postgresql", "mysql",
	"mongodb", "redis", "elasticsearch", "docker", "kubernetes",
	"aws", "azure", "gcp", "git", "jenkins", "ci/cd", "agile",
	"machine learning", "ai", "data science", "tensorflow", "pytorch",
}
