package catalog

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, err
	}

	Logger().Debug("catalog loaded",
		zap.String("path", path),
		zap.String("version", file.Version),
		zap.Int("definitions", len(file.Spec)))
	return file, nil
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	return &file, nil
}

// LoadAndValidate reads a catalog and validates it.
func LoadAndValidate(path string) (*File, error) {
	file, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	return file, nil
}

// Marshal renders a catalog as YAML.
func Marshal(file *File) ([]byte, error) {
	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// Save writes a catalog to a YAML file.
func Save(path string, file *File) error {
	data, err := Marshal(file)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}

	Logger().Debug("catalog saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
