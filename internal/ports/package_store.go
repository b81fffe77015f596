package ports

import (
	"context"

	"github.com/bnema/ftrack/internal/domain"
)

type PackageStore interface {
	PackageSource
	Append(ctx context.Context, pkg domain.SensorPackage) error
}
