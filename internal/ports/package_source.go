package ports

import (
	"context"

	"github.com/bnema/ftrack/internal/domain"
)

type PackageSource interface {
	Load(ctx context.Context) ([]domain.SensorPackage, error)
}
