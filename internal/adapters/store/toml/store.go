package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/ftrack/internal/domain"
	"github.com/bnema/ftrack/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName         = "config"
	configType         = "toml"
	packagesPathKey    = "packages.path"
	packagesFileMode   = 0o600
	packagesDirMode    = 0o700
	packagesConfigDir  = ".ftrack"
	packagesConfigFile = "packages.toml"
	tempFilePattern    = ".packages-*.toml.tmp"
)

// Store reads and appends sensor packages in a versioned TOML file.
type Store struct {
	packagesPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PackageStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, packagesConfigDir, packagesConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, packagesConfigDir))
	cfg.SetDefault(packagesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	packagesPath := cfg.GetString(packagesPathKey)
	if packagesPath == "" {
		return nil, errors.New("packages path is empty")
	}
	packagesPath, err = normalizePackagesPath(packagesPath)
	if err != nil {
		return nil, err
	}

	return &Store{packagesPath: packagesPath, mu: lockForPath(packagesPath)}, nil
}

func (s *Store) Load(ctx context.Context) ([]domain.SensorPackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	packages := make([]domain.SensorPackage, 0, len(file.Packages))
	for _, entry := range file.Packages {
		packages = append(packages, fromSchema(entry))
	}

	return packages, nil
}

func (s *Store) Append(ctx context.Context, pkg domain.SensorPackage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	file.Packages = append(file.Packages, toSchema(pkg))

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.packagesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read packages file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode packages file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.packagesPath), packagesDirMode); err != nil {
		return fmt.Errorf("create packages directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode packages file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.packagesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp packages file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp packages file: %w", err)
	}

	if err := tempFile.Chmod(packagesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp packages file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp packages file: %w", err)
	}

	if err := os.Rename(tempName, s.packagesPath); err != nil {
		return fmt.Errorf("replace packages file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.packagesPath, packagesFileMode); err != nil {
		return fmt.Errorf("chmod packages file: %w", err)
	}

	return nil
}

func normalizePackagesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve packages path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
