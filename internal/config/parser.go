package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseBrief loads a brief file from disk, validates it, and returns the
// resulting document.
func ParseBrief(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, atelierErrors.NewParseError(path, 0, err)
	}

	var brief Brief
	if err := yaml.Unmarshal(data, &brief); err != nil {
		return nil, atelierErrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateBrief(&brief); err != nil {
		return nil, err
	}

	return &brief, nil
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
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
