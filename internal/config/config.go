package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Input workbook used when no file argument is given.
	InputPath  string `mapstructure:"input_path" yaml:"input_path"`
	SheetName  string `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex int    `mapstructure:"sheet_index" yaml:"sheet_index"`
	SkipRows   int    `mapstructure:"skip_rows" yaml:"skip_rows"`

	// Chart output
	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir"`
	ChartFormat string `mapstructure:"chart_format" yaml:"chart_format"`
	TopN        int    `mapstructure:"top_n" yaml:"top_n"`
	HistBins    int    `mapstructure:"hist_bins" yaml:"hist_bins"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Dir returns ~/.censuseda.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".censuseda"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.censuseda/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CENSUSEDA")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input_path", "")
	v.SetDefault("sheet_name", "")
	v.SetDefault("sheet_index", 1)
	v.SetDefault("skip_rows", 5)
	v.SetDefault("output_dir", "")
	v.SetDefault("chart_format", "png")
	v.SetDefault("top_n", 10)
	v.SetDefault("hist_bins", 20)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve output_dir default: ~/.censuseda/runs
	if c.OutputDir == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		c.OutputDir = filepath.Join(dir, "runs")
	}
	c.OutputDir = ExpandHome(c.OutputDir)
	c.InputPath = ExpandHome(c.InputPath)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the analysis cannot run with.
func (c *Global) Validate() error {
	switch strings.ToLower(c.ChartFormat) {
	case "png", "svg":
		c.ChartFormat = strings.ToLower(c.ChartFormat)
	default:
		return fmt.Errorf("invalid chart_format %q (use png or svg)", c.ChartFormat)
	}
	if c.SkipRows < 0 {
		return fmt.Errorf("invalid skip_rows %d", c.SkipRows)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("invalid top_n %d", c.TopN)
	}
	if c.HistBins <= 0 {
		return fmt.Errorf("invalid hist_bins %d", c.HistBins)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	rest := strings.TrimPrefix(p, "~")
	rest = strings.TrimPrefix(rest, string(os.PathSeparator))
	rest = strings.TrimPrefix(rest, "/")
	return filepath.Join(home, rest)
}
