package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/bnema/punch/internal/adapters/dateparse"
	timesheetrender "github.com/bnema/punch/internal/adapters/render/timesheet"
	tomlrepo "github.com/bnema/punch/internal/adapters/repo/toml"
	chainstore "github.com/bnema/punch/internal/adapters/secrets/chain"
	"github.com/bnema/punch/internal/adapters/toggl"
	"github.com/bnema/punch/internal/application"
	"github.com/bnema/punch/internal/logging"
	"github.com/bnema/punch/internal/ports"
	"github.com/bnema/punch/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "punch"

type app struct {
	settings     *application.SettingsService
	credentials  *application.CredentialService
	dates        ports.DateParser
	clock        ports.Clock
	renderer     func(application.Timesheet, timesheetrender.RenderOptions) (string, error)
	newSource    func(baseURL, token string) ports.EntrySource
	logger       *slog.Logger
	secretsRoot  string
	settingsPath string
}

func wireApp() (*app, error) {
	xdg.Reload()

	settingsPath := filepath.Join(xdg.ConfigHome, appName, "config.toml")
	repo, err := tomlrepo.NewRepository(viper.New(), settingsPath)
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	secretsRoot := filepath.Join(xdg.DataHome, appName, "secrets")
	secretStore, err := chainstore.NewEnvFirst(secretsRoot)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		settings:     application.NewSettingsService(repo),
		credentials:  application.NewCredentialService(secretStore),
		dates:        dateparse.Parser{},
		clock:        ports.SystemClock{},
		renderer:     timesheetrender.Render,
		newSource:    newTogglSource(http.DefaultClient),
		logger:       logging.Discard(),
		secretsRoot:  secretsRoot,
		settingsPath: repo.Path(),
	}, nil
}

func newTogglSource(httpClient *http.Client) func(baseURL, token string) ports.EntrySource {
	return func(baseURL, token string) ports.EntrySource {
		return &toggl.Client{
			BaseURL:    baseURL,
			APIToken:   token,
			UserAgent:  version.UserAgent(),
			HTTPClient: httpClient,
		}
	}
}

// configureLogging installs the run logger and tags the command context with
// a fresh run id.
func (a *app) configureLogging(cmd *cobra.Command, rawLevel, rawFormat string) error {
	level, err := logging.ParseLevel(rawLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(rawFormat)
	if err != nil {
		return err
	}

	a.logger = logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})

	ctx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	cmd.SetContext(ctx)
	logging.FromContext(ctx, a.logger).Debug("starting command", "command", cmd.CommandPath())

	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
