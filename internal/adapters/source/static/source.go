package static

import (
	"context"

	"github.com/bnema/ftrack/internal/domain"
	"github.com/bnema/ftrack/internal/ports"
)

// Source serves the built-in sample packages the CLI ships with, used when no
// packages file is given.
type Source struct {
	packages []domain.SensorPackage
}

var _ ports.PackageSource = (*Source)(nil)

func NewSource() *Source {
	return &Source{packages: []domain.SensorPackage{
		{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	}}
}

func (s *Source) Load(ctx context.Context) ([]domain.SensorPackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	packages := make([]domain.SensorPackage, len(s.packages))
	copy(packages, s.packages)
	return packages, nil
}
