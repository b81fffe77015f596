package toml

import (
	"fmt"

	"github.com/bnema/ftrack/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Packages []packageSchema `toml:"packages"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported packages schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type packageSchema struct {
	Type string    `toml:"type"`
	Data []float64 `toml:"data"`
}

func toSchema(pkg domain.SensorPackage) packageSchema {
	return packageSchema{
		Type: pkg.WorkoutType,
		Data: pkg.Data,
	}
}

func fromSchema(entry packageSchema) domain.SensorPackage {
	return domain.SensorPackage{
		WorkoutType: entry.Type,
		Data:        entry.Data,
	}
}
