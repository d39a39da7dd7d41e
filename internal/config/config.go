package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Country describes one compared country: its column suffix in the merged
// table and the year it hosted the reference event.
type Country struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Tag      string `mapstructure:"tag" yaml:"tag"`
	Suffix   string `mapstructure:"suffix" yaml:"suffix"`
	HostYear int    `mapstructure:"host_year" yaml:"host_year"`
}

// MetricSpec maps a metric column to its per-country source files.
// Rename translates raw export headers to the canonical column names
// (applied before normalization).
type MetricSpec struct {
	Name   string            `mapstructure:"name" yaml:"name"`
	Files  map[string]string `mapstructure:"files" yaml:"files"` // country tag -> csv path
	Rename map[string]string `mapstructure:"rename" yaml:"rename,omitempty"`
}

// MetricGroup is a named set of metric columns correlated together.
type MetricGroup struct {
	Name    string   `mapstructure:"name" yaml:"name"`
	Metrics []string `mapstructure:"metrics" yaml:"metrics"`
}

// Combination is a predefined metric pair with a human-readable question.
type Combination struct {
	Key         string   `mapstructure:"key" yaml:"key"`
	Description string   `mapstructure:"description" yaml:"description"`
	Metrics     []string `mapstructure:"metrics" yaml:"metrics"`
}

// Window is an inclusive bound on Relative Year for correlation computation.
type Window struct {
	From int `mapstructure:"from" yaml:"from"`
	To   int `mapstructure:"to" yaml:"to"`
}

// Config is the full analysis configuration.
type Config struct {
	DataDir      string        `mapstructure:"data_dir" yaml:"data_dir"`
	ReportsDir   string        `mapstructure:"reports_dir" yaml:"reports_dir"`
	Countries    []Country     `mapstructure:"countries" yaml:"countries"`
	Metrics      []MetricSpec  `mapstructure:"metrics" yaml:"metrics"`
	MetricGroups []MetricGroup `mapstructure:"metric_groups" yaml:"metric_groups"`
	Window       Window        `mapstructure:"window" yaml:"window"`
	Combinations []Combination `mapstructure:"combinations" yaml:"combinations"`
}

// Default returns the built-in configuration for the Sydney 2000 / Beijing
// 2008 comparison study. A config file overrides any subset of it.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		ReportsDir: "reports",
		Countries: []Country{
			{Name: "Australia", Tag: "AUS", Suffix: "_AUS", HostYear: 2000},
			{Name: "China", Tag: "CHI", Suffix: "_CHI", HostYear: 2008},
		},
		Metrics: []MetricSpec{
			{Name: "GDP_per_capita", Files: map[string]string{"AUS": "gdp_aus.csv", "CHI": "gdp_chi.csv"}},
			{Name: "FDI", Files: map[string]string{"AUS": "fdi_aus.csv", "CHI": "fdi_chi.csv"}},
			{Name: "Gov_Consumption", Files: map[string]string{"AUS": "gov_aus.csv", "CHI": "gov_chi.csv"}},
			{Name: "Num_Arrivals", Files: map[string]string{"AUS": "arrivals_aus.csv", "CHI": "arrivals_chi.csv"}},
			{Name: "Obesity_rate", Files: map[string]string{"AUS": "obesity_aus.csv", "CHI": "obesity_chi.csv"}},
			{Name: "Underweight_rate", Files: map[string]string{"AUS": "underweight_aus.csv", "CHI": "underweight_chi.csv"}},
			{Name: "Unemployment_Rate(%)", Files: map[string]string{"AUS": "unemployment_aus.csv", "CHI": "unemployment_chi.csv"}},
			{Name: "MtCO2e", Files: map[string]string{"AUS": "emissions_aus.csv", "CHI": "emissions_chi.csv"}},
		},
		MetricGroups: []MetricGroup{
			{Name: "Economic", Metrics: []string{"GDP_per_capita", "FDI", "Gov_Consumption"}},
			{Name: "Social", Metrics: []string{"Num_Arrivals", "Obesity_rate", "Underweight_rate", "Unemployment_Rate(%)"}},
			{Name: "Environmental", Metrics: []string{"MtCO2e"}},
		},
		Window: Window{From: -5, To: 5},
		Combinations: []Combination{
			{Key: "1", Description: "Do GDP and FDI correlate?", Metrics: []string{"GDP_per_capita", "FDI"}},
			{Key: "2", Description: "How does fiscal policy impact government consumption?", Metrics: []string{"GDP_per_capita", "Gov_Consumption"}},
			{Key: "3", Description: "Does tourism impact economic growth?", Metrics: []string{"Num_Arrivals", "GDP_per_capita"}},
			{Key: "4", Description: "Health trade-offs", Metrics: []string{"Obesity_rate", "Underweight_rate"}},
			{Key: "5", Description: "Environmental cost of economic growth", Metrics: []string{"GDP_per_capita", "MtCO2e"}},
			{Key: "6", Description: "Does increasing tourism lead to higher GHG emission?", Metrics: []string{"Num_Arrivals", "MtCO2e"}},
			{Key: "7", Description: "Economic growth's effect on employment", Metrics: []string{"Unemployment_Rate(%)", "GDP_per_capita"}},
		},
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.olympics-effect/config.yaml, creating the directory
// if necessary.
func Save(c *Config, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".olympics-effect")
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

// Load loads configuration from file and env over the built-in defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OLYMPICS")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".olympics-effect")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	// Unmarshal on top of the defaults so a partial file overrides only the
	// keys it sets.
	c := Default()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if s := v.GetString("data_dir"); s != "" {
		c.DataDir = s
	}
	if s := v.GetString("reports_dir"); s != "" {
		c.ReportsDir = s
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(c *Config) error {
	if len(c.Countries) == 0 {
		return fmt.Errorf("config: at least one country required")
	}
	seen := map[string]bool{}
	for _, country := range c.Countries {
		if country.Tag == "" || country.Suffix == "" {
			return fmt.Errorf("config: country %q needs tag and suffix", country.Name)
		}
		if seen[country.Tag] {
			return fmt.Errorf("config: duplicate country tag %q", country.Tag)
		}
		seen[country.Tag] = true
	}
	if c.Window.From > c.Window.To {
		return fmt.Errorf("config: window from %d exceeds to %d", c.Window.From, c.Window.To)
	}
	for _, combo := range c.Combinations {
		if len(combo.Metrics) != 2 {
			return fmt.Errorf("config: combination %q needs exactly 2 metrics, has %d", combo.Key, len(combo.Metrics))
		}
	}
	return nil
}
