package app

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/aitools/pkg/errors"
)

// envPrefix is accepted in front of every environment key.
const envPrefix = "AITOOLS"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Directory configuration
	CatalogFile     string
	SimulateLatency bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// configKeys are the keys read from config files and the environment.
var configKeys = []string{
	"verbose",
	"quiet",
	"no-color",
	"output",
	"catalog_file",
	"simulate_latency",
	"log_level",
	"log_format",
	"log_output",
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables, with or without the AITOOLS_ prefix
// 3. .env files
// 4. Config file (configFile, or ~/.aitools.yaml / ./.aitools.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	for _, key := range configKeys {
		env := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key, envPrefix+"_"+env, env)
	}
	// FORMAT is accepted as an alias of OUTPUT, matching the --format flag
	_ = v.BindEnv("format", envPrefix+"_FORMAT", "FORMAT")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".aitools")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.NewConfigError("config file", "cannot read "+configFile, err)
		}
	}

	output := v.GetString("output")
	if output == "" {
		output = v.GetString("format")
	}

	return &Config{
		Verbose:         v.GetBool("verbose"),
		Quiet:           v.GetBool("quiet"),
		NoColor:         v.GetBool("no-color"),
		Output:          output,
		ConfigFile:      v.ConfigFileUsed(),
		CatalogFile:     v.GetString("catalog_file"),
		SimulateLatency: v.GetBool("simulate_latency"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		LogOutput:       v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags copies explicitly set flags over the loaded values so
// flags take precedence over config files and the environment.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "verbose":
			c.Verbose = value == "true"
		case "quiet":
			c.Quiet = value == "true"
		case "no-color":
			c.NoColor = value == "true"
		case "output", "format", "fmt":
			c.Output = value
		case "catalog":
			c.CatalogFile = value
		case "simulate-latency":
			c.SimulateLatency = value == "true"
		case "log-level":
			c.LogLevel = value
		}
	})
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so .env.local
// only fills in what .env left out.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
