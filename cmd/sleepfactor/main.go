package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Jyriad/sleepfactor/internal/cli"
	"github.com/Jyriad/sleepfactor/internal/constants"
	errs "github.com/Jyriad/sleepfactor/internal/errors"
	"github.com/Jyriad/sleepfactor/internal/keyring"
	"github.com/Jyriad/sleepfactor/internal/logger"
	"github.com/Jyriad/sleepfactor/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or the OS keyring instead." type:"string" default:"~/.config/sleepfactor/sleepfactor.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize sleepfactor storage."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits and decay profiles."`
	Log      cli.LogCmd      `cmd:"" help:"Log and manage consumption events."`
	Level    cli.LevelCmd    `cmd:"" help:"Estimate the residual substance level at bedtime."`
	Sleep    cli.SleepCmd    `cmd:"" help:"Record and review sleep."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a database connection string in the OS keyring."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sleepfactor"),
		kong.Description("Substance decay and bedtime level tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(expandHome(constants.DefaultConfigPath)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	// Initialize storage based on config format
	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=") {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Store credentials with 'sleepfactor keyring set', the SLEEPFACTOR_DB_CONNECTION environment variable, or .pgpass.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(config)
	} else if connStr, ok := resolveStoredConnection(); ok {
		store = storage.NewPostgresStore(connStr)
	} else {
		store = storage.NewSQLiteStore(config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}

// resolveStoredConnection checks the environment and the OS keyring for a
// PostgreSQL connection string. The explicit --config flag always wins; this
// only applies when the default SQLite path is in use.
func resolveStoredConnection() (string, bool) {
	if CLI.Config != "~/.config/sleepfactor/sleepfactor.db" {
		return "", false
	}
	if connStr := os.Getenv("SLEEPFACTOR_DB_CONNECTION"); connStr != "" {
		return connStr, true
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("keyring lookup failed", "error", err)
		}
		return "", false
	}
	return connStr, true
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
