package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/humane-sort/internal/apperr"
)

const (
	EnvConfigPath = "HUMANESORT_CONFIG"
	EnvReverse    = "HUMANESORT_REVERSE"
	EnvUnique     = "HUMANESORT_UNIQUE"
	EnvSkipEmpty  = "HUMANESORT_SKIP_EMPTY"
)

// Config holds the options of a sort run.
type Config struct {
	Reverse   bool   `yaml:"reverse"`
	Unique    bool   `yaml:"unique"`
	SkipEmpty bool   `yaml:"skip_empty"`
	KeyField  int    `yaml:"key_field"`
	Output    string `yaml:"output"`
}

func (c *Config) Validate() error {
	if c.KeyField < 0 {
		return apperr.NewValidation("key_field", fmt.Sprintf("must not be negative, got %d", c.KeyField))
	}
	return nil
}

// ApplyEnv overrides boolean options from HUMANESORT_* environment variables.
func (c *Config) ApplyEnv() error {
	vars := []struct {
		name string
		dst  *bool
	}{
		{EnvReverse, &c.Reverse},
		{EnvUnique, &c.Unique},
		{EnvSkipEmpty, &c.SkipEmpty},
	}

	for _, v := range vars {
		raw, ok := os.LookupEnv(v.name)
		if !ok || raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return apperr.NewValidationWrap(v.name, "invalid boolean", err)
		}
		*v.dst = b
	}

	return nil
}
