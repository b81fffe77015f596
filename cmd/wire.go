package cmd

import (
	"fmt"

	summaryadapter "github.com/bnema/ftrack/internal/adapters/render/summary"
	"github.com/bnema/ftrack/internal/adapters/source/static"
	tomlstore "github.com/bnema/ftrack/internal/adapters/store/toml"
	"github.com/bnema/ftrack/internal/domain"
	"github.com/bnema/ftrack/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	newSource    func(inputPath string) (ports.PackageSource, error)
	newStore     func(inputPath string) (ports.PackageStore, error)
	renderLine   func(domain.Summary) string
	renderReport func([]domain.Summary, summaryadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	return &app{
		newSource: func(inputPath string) (ports.PackageSource, error) {
			if inputPath == "" {
				return static.NewSource(), nil
			}
			return wireStore(inputPath)
		},
		newStore:     wireStore,
		renderLine:   summaryadapter.Line,
		renderReport: summaryadapter.Render,
	}, nil
}

// wireStore builds the TOML package store; an empty inputPath falls back to
// the configured (or default) packages file under the user's home.
func wireStore(inputPath string) (ports.PackageStore, error) {
	cfg := viper.New()
	if inputPath != "" {
		cfg.Set("packages.path", inputPath)
	}

	store, err := tomlstore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire package store: %w", err)
	}

	return store, nil
}
