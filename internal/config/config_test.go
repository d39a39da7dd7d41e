package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := Validate(c); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(c.Countries) != 2 {
		t.Fatalf("countries = %d, want 2", len(c.Countries))
	}
	if c.Countries[0].HostYear != 2000 || c.Countries[1].HostYear != 2008 {
		t.Fatalf("host years = %d/%d, want 2000/2008", c.Countries[0].HostYear, c.Countries[1].HostYear)
	}
	if len(c.Metrics) != 8 {
		t.Fatalf("metrics = %d, want 8", len(c.Metrics))
	}
	if len(c.Combinations) != 7 {
		t.Fatalf("combinations = %d, want 7", len(c.Combinations))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.DataDir = "study-data"
	c.Window = Window{From: -3, To: 3}

	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataDir != "study-data" {
		t.Fatalf("data_dir = %q, want study-data", got.DataDir)
	}
	if got.Window != (Window{From: -3, To: 3}) {
		t.Fatalf("window = %+v", got.Window)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: elsewhere\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataDir != "elsewhere" {
		t.Fatalf("data_dir = %q, want elsewhere", got.DataDir)
	}
	if len(got.Metrics) != len(Default().Metrics) {
		t.Fatalf("partial file wiped default metrics: %d", len(got.Metrics))
	}
	if len(got.Combinations) != 7 {
		t.Fatalf("partial file wiped default combinations: %d", len(got.Combinations))
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no countries", func(c *Config) { c.Countries = nil }, "country"},
		{"missing suffix", func(c *Config) { c.Countries[0].Suffix = "" }, "suffix"},
		{"duplicate tag", func(c *Config) { c.Countries[1].Tag = c.Countries[0].Tag }, "duplicate"},
		{"inverted window", func(c *Config) { c.Window = Window{From: 5, To: -5} }, "window"},
		{"bad combination", func(c *Config) { c.Combinations[0].Metrics = []string{"GDP"} }, "combination"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			err := Validate(c)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
