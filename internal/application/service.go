package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/ftrack/internal/domain"
	"github.com/bnema/ftrack/internal/ports"
)

var ErrNoPackageStore = errors.New("no package store configured")

type Service struct {
	source ports.PackageSource
	store  ports.PackageStore
}

func NewService(source ports.PackageSource) *Service {
	return &Service{source: source}
}

// NewServiceWithStore wires a writable package store; the store also serves
// as the package source.
func NewServiceWithStore(store ports.PackageStore) *Service {
	return &Service{source: store, store: store}
}

// Summaries loads every sensor package, dispatches each to its workout kind
// and derives the summary metrics. A package that fails to dispatch yields no
// summary; its error is joined into the returned error while the remaining
// packages are still processed, input order preserved.
func (s *Service) Summaries(ctx context.Context) ([]domain.Summary, error) {
	packages, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sensor packages: %w", err)
	}

	summaries := make([]domain.Summary, 0, len(packages))
	var errs []error
	for i, pkg := range packages {
		workout, err := NewWorkout(pkg)
		if err != nil {
			errs = append(errs, fmt.Errorf("package %d: %w", i, err))
			continue
		}

		summary, err := domain.Summarize(workout)
		if err != nil {
			errs = append(errs, fmt.Errorf("package %d: %w", i, err))
			continue
		}

		summaries = append(summaries, summary)
	}

	return summaries, errors.Join(errs...)
}

// Record validates a sensor package by constructing its workout, then appends
// it to the package store.
func (s *Service) Record(ctx context.Context, pkg domain.SensorPackage) error {
	if s.store == nil {
		return ErrNoPackageStore
	}

	if _, err := NewWorkout(pkg); err != nil {
		return err
	}

	if err := s.store.Append(ctx, pkg); err != nil {
		return fmt.Errorf("append sensor package: %w", err)
	}

	return nil
}
