package config

const (
	// DefaultProjectPath is where .env, dpltest.yaml and saved runs live
	DefaultProjectPath = "."
	// DefaultFixtureDir is the default directory scanned for fixtures
	DefaultFixtureDir = "."
	// DefaultInterpreter is the interpreter binary fixtures are run through
	DefaultInterpreter = "../build/dplang"
	// DefaultExtension is the fixture file extension
	DefaultExtension = ".dpl"
	// DefaultOutputJSONFile is the default saved run file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default saved run directory
	DefaultOutputJSONDir = ".dpltest"
	// ConfigFileName is the optional config file name, without extension
	ConfigFileName = "dpltest"
	// EnvPrefix prefixes environment overrides, e.g. DPLTEST_INTERPRETER
	EnvPrefix = "DPLTEST"
)

// DefaultPathsToIgnore are the directories skipped by a recursive scan
var DefaultPathsToIgnore = []string{
	"build",
	"node_modules",
	"vendor",
}
