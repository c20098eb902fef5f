package repo

// StackInfo records the detected technology stack. Detection is presence
// based: a language, package manager, or CI provider is listed when any of
// its indicator files exist in the tree.
type StackInfo struct {
	Languages       []string
	PackageManagers []string
	CIProviders     []string
}

type indicator struct {
	name     string
	patterns []string
}

// Order matters: detected entries are reported in this order so scans of
// the same tree always list the stack identically.
var languageIndicators = []indicator{
	{"Python", []string{"**/*.py", "pyproject.toml", "setup.py", "requirements.txt"}},
	{"JavaScript", []string{"**/*.js", "**/*.jsx", "package.json"}},
	{"TypeScript", []string{"**/*.ts", "**/*.tsx", "tsconfig.json"}},
	{"Go", []string{"**/*.go", "go.mod"}},
	{"Rust", []string{"**/*.rs", "Cargo.toml"}},
	{"Java", []string{"**/*.java", "pom.xml", "build.gradle"}},
	{"Ruby", []string{"**/*.rb", "Gemfile"}},
	{"PHP", []string{"**/*.php", "composer.json"}},
	{"C#", []string{"**/*.cs", "**/*.csproj"}},
}

var packageManagerIndicators = []indicator{
	{"npm", []string{"package-lock.json"}},
	{"yarn", []string{"yarn.lock"}},
	{"pnpm", []string{"pnpm-lock.yaml"}},
	{"pip", []string{"requirements.txt"}},
	{"poetry", []string{"poetry.lock"}},
	{"uv", []string{"uv.lock"}},
	{"pipenv", []string{"Pipfile.lock"}},
	{"cargo", []string{"Cargo.lock"}},
	{"go modules", []string{"go.sum"}},
	{"maven", []string{"pom.xml"}},
	{"gradle", []string{"build.gradle", "build.gradle.kts"}},
	{"composer", []string{"composer.lock"}},
	{"bundler", []string{"Gemfile.lock"}},
}

// CIProviderIndicators maps CI providers to their config file patterns.
// Shared with the ci.config_present check so detection and checking agree.
var CIProviderIndicators = []indicator{
	{"GitHub Actions", []string{".github/workflows/*.yml", ".github/workflows/*.yaml"}},
	{"GitLab CI", []string{".gitlab-ci.yml"}},
	{"CircleCI", []string{".circleci/config.yml"}},
	{"Travis CI", []string{".travis.yml"}},
	{"Azure Pipelines", []string{"azure-pipelines.yml"}},
	{"Jenkins", []string{"Jenkinsfile"}},
}

// CIConfigPatterns returns every known CI config file pattern.
func CIConfigPatterns() []string {
	var out []string
	for _, ind := range CIProviderIndicators {
		out = append(out, ind.patterns...)
	}
	return out
}

// DetectStack detects languages, package managers, and CI providers from
// the enumerated tree.
func DetectStack(fs *FileIndex) StackInfo {
	var info StackInfo
	for _, ind := range languageIndicators {
		if fs.Exists(ind.patterns...) {
			info.Languages = append(info.Languages, ind.name)
		}
	}
	for _, ind := range packageManagerIndicators {
		if fs.Exists(ind.patterns...) {
			info.PackageManagers = append(info.PackageManagers, ind.name)
		}
	}
	for _, ind := range CIProviderIndicators {
		if fs.Exists(ind.patterns...) {
			info.CIProviders = append(info.CIProviders, ind.name)
		}
	}
	return info
}
