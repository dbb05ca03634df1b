package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigWordList               = "word-list"
	ConfigLetterDistribution     = "letter-distribution"
	ConfigLetterDistributionPath = "letter-distribution-path"
	ConfigBingoBonus             = "bingo-bonus"
	ConfigParallel               = "parallel"
	ConfigDebug                  = "debug"
	ConfigOutput                 = "output"
	ConfigCPUProfile             = "cpu-profile"

	defaultWordList           = "./data/words.txt"
	defaultLetterDistribution = "french"
	defaultBingoBonus         = 50
	defaultOutput             = "text"
	envPrefix                 = "WORDFINDER"
	maxBingoBonus             = 1000
)

var (
	ErrBingoBonusOutOfRange = errors.New("bingo-bonus must be between 0 and 1000")
	ErrUnsupportedOutput    = errors.New("output must be one of text, json, yaml")
)

// Config holds the settings of the word finder. Values come from flags,
// then WORDFINDER_* environment variables, then defaults.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config holding only the default settings. It is
// mostly useful for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigWordList, defaultWordList)
	c.SetDefault(ConfigLetterDistribution, defaultLetterDistribution)
	c.SetDefault(ConfigLetterDistributionPath, "")
	c.SetDefault(ConfigBingoBonus, defaultBingoBonus)
	c.SetDefault(ConfigParallel, true)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigOutput, defaultOutput)
	c.SetDefault(ConfigCPUProfile, "")
}

// Load parses the command-line args and the environment. Positional
// arguments are returned.
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("wordfinder", pflag.ContinueOnError)
	fs.String(ConfigWordList, defaultWordList, "newline-delimited word list")
	fs.String(ConfigLetterDistribution, defaultLetterDistribution, "letter distribution: french, english")
	fs.String(ConfigLetterDistributionPath, "", "directory holding <name>.csv letter distributions, overriding the built-in ones")
	fs.Int(ConfigBingoBonus, defaultBingoBonus, "bonus for playing every tile of the rack")
	fs.Bool(ConfigParallel, true, "search both orientations concurrently")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigOutput, defaultOutput, "output format: text, json, yaml")
	fs.String(ConfigCPUProfile, "", "write a cpu profile to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// Validate checks the values that cannot be checked by type alone.
func (c *Config) Validate() error {
	bb := c.GetInt(ConfigBingoBonus)
	if bb < 0 || bb > maxBingoBonus {
		return ErrBingoBonusOutOfRange
	}
	switch c.GetString(ConfigOutput) {
	case "text", "json", "yaml":
	default:
		return ErrUnsupportedOutput
	}
	return nil
}

// AdjustRelativePaths makes relative paths relative to basePath, so that a
// binary can find its data when run from elsewhere.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigWordList, ConfigLetterDistributionPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// SanitizedSettings returns the settings for display.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
