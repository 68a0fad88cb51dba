package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"termselect/models"
)

// LoadStyle reads a YAML style file. Keys missing from the file keep their
// value from base.
//
//	selector: " > "
//	checked_selector: " * "
//	highlight_fg: "4"
//	checked_fg: "#ffaa00"
func LoadStyle(path string, base models.Style) (models.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	return ParseStyle(data, base)
}

// ParseStyle decodes YAML style data on top of base.
func ParseStyle(data []byte, base models.Style) (models.Style, error) {
	st := base
	if err := yaml.Unmarshal(data, &st); err != nil {
		return base, fmt.Errorf("parse style: %w", err)
	}
	return st, nil
}

// SaveStyle writes st as YAML.
func SaveStyle(path string, st models.Style) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
