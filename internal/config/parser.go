package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	pyerrors "github.com/alexisbeaulieu97/pyboot/pkg/errors"
)

// DefaultPath is the optional override file checked at the project root.
const DefaultPath = "pyboot.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration file at path, applies it over the compiled
// defaults and validates the result. An absent file is not an error: the
// defaults alone are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, pyerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, pyerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return nil, pyerrors.NewValidationError("", err.Error(), err)
	}

	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
