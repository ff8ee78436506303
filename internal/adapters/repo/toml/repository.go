package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	configType       = "toml"
	envPrefix        = "PUNCH"
	settingsFileMode = 0o600
	settingsDirMode  = 0o700
	tempFilePattern  = ".config-*.toml.tmp"

	keyVersion  = "version"
	keyClientID = "client_id"
	keyGap      = "gap"
	keyRounding = "rounding"
	keyBaseURL  = "base_url"
	keyWeekOf   = "week_of"
	keyTimezone = "timezone"
	keyProjects = "projects"
)

// Repository reads settings through viper, so PUNCH_* environment variables
// override the file, and writes them back with go-toml.
type Repository struct {
	path string
	cfg  *viper.Viper
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, path string) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("settings path is empty")
	}

	settingsPath, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	defaults := domain.DefaultSettings()
	cfg.SetDefault(keyVersion, currentSchemaVersion)
	cfg.SetDefault(keyClientID, int64(defaults.ClientID))
	cfg.SetDefault(keyGap, formatDuration(defaults.Gap))
	cfg.SetDefault(keyRounding, formatDuration(defaults.Rounding))
	cfg.SetDefault(keyBaseURL, defaults.BaseURL)
	cfg.SetDefault(keyWeekOf, defaults.WeekOf)
	cfg.SetDefault(keyTimezone, defaults.Timezone)
	cfg.SetDefault(keyProjects, []string{})

	cfg.SetConfigFile(settingsPath)
	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	cfg.AutomaticEnv()

	return &Repository{path: settingsPath, cfg: cfg, mu: lockForPath(settingsPath)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat settings file: %w", err)
}

// Load merges defaults, the settings file and the environment. A missing file
// yields the defaults.
func (r *Repository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, os.ErrNotExist) {
			return domain.Settings{}, fmt.Errorf("read settings file: %w", err)
		}
	}

	if err := validateVersion(r.cfg.GetInt(keyVersion)); err != nil {
		return domain.Settings{}, err
	}

	clientID, err := cast.ToInt64E(r.cfg.Get(keyClientID))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, keyClientID, err)
	}
	gap, err := cast.ToDurationE(r.cfg.Get(keyGap))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, keyGap, err)
	}
	rounding, err := cast.ToDurationE(r.cfg.Get(keyRounding))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, keyRounding, err)
	}

	projects, err := cast.ToStringSliceE(r.cfg.Get(keyProjects))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, keyProjects, err)
	}

	return domain.Settings{
		ClientID: domain.ClientID(clientID),
		Gap:      gap,
		Rounding: rounding,
		BaseURL:  strings.TrimSpace(r.cfg.GetString(keyBaseURL)),
		WeekOf:   strings.TrimSpace(r.cfg.GetString(keyWeekOf)),
		Timezone: strings.TrimSpace(r.cfg.GetString(keyTimezone)),
		Projects: splitPatterns(projects),
	}, nil
}

func (r *Repository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(settings))
}

// splitPatterns accepts both TOML arrays and the comma separated form used in
// PUNCH_PROJECTS.
func splitPatterns(values []string) []string {
	var patterns []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				patterns = append(patterns, part)
			}
		}
	}
	return patterns
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
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

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
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
		return fmt.Errorf("write temp settings file: %w", err)
	}

	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.path, settingsFileMode); err != nil {
		return fmt.Errorf("chmod settings file: %w", err)
	}

	return nil
}
