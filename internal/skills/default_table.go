package skills

// defaultCategories organizes the built-in vocabulary for display. Canonical
// ids are lowercase; aliases live in defaultAliases.
var defaultCategories = map[string][]string{
	"programming languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
		"go", "rust", "php", "kotlin", "swift", "scala", "perl", "sql",
		"bash", "r", "matlab",
	},
	"web development": {
		"html", "css", "react", "angular", "vue", "node.js", "express",
		"django", "flask", "spring", "asp.net", "jquery", "bootstrap",
		"tailwind", "laravel", "ruby on rails", "next.js", "graphql",
		"rest api",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "sqlite", "oracle", "sql server",
		"redis", "dynamodb", "cassandra", "firebase", "mariadb",
		"elasticsearch", "neo4j",
	},
	"cloud platforms": {
		"aws", "azure", "google cloud", "heroku", "digitalocean",
		"cloudflare", "vercel", "netlify",
	},
	"devops": {
		"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
		"terraform", "ansible", "puppet", "chef", "circleci", "prometheus",
		"grafana", "git", "ci/cd",
	},
	"data science": {
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"matplotlib", "tableau", "power bi", "hadoop", "spark", "nlp",
		"machine learning", "deep learning", "computer vision",
		"data analysis", "statistics",
	},
	"soft skills": {
		"communication", "leadership", "teamwork", "problem solving",
		"project management", "time management", "collaboration",
		"critical thinking", "attention to detail",
	},
}

// defaultAliases maps canonical skill ids to their synonyms. The canonical
// form itself is always an implicit alias.
var defaultAliases = map[string][]string{
	"go":               {"golang"},
	"javascript":       {"js", "ecmascript"},
	"typescript":       {"ts"},
	"node.js":          {"nodejs", "node js", "node"},
	"react":            {"reactjs", "react.js"},
	"vue":              {"vuejs", "vue.js"},
	"angular":          {"angularjs"},
	"next.js":          {"nextjs"},
	"kubernetes":       {"k8s"},
	"postgresql":       {"postgres"},
	"mongodb":          {"mongo"},
	"aws":              {"amazon web services"},
	"azure":            {"microsoft azure"},
	"google cloud":     {"gcp", "google cloud platform"},
	"machine learning": {"ml"},
	"deep learning":    {"neural networks"},
	"nlp":              {"natural language processing"},
	"ci/cd":            {"continuous integration", "continuous delivery"},
	"rest api":         {"rest", "restful api", "restful"},
	"c#":               {"csharp"},
	"c++":              {"cpp"},
	"scikit-learn":     {"sklearn"},
	"power bi":         {"powerbi"},
	"sql server":       {"mssql", "microsoft sql server"},
	"github actions":   {"gh actions"},
	"data analysis":    {"data analytics"},
	"problem solving":  {"problem-solving"},
}
