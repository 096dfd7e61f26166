// Package command provides CLI command definitions for vidgate-cli.
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vidgate/vidgate-go/internal/cli/config"
	"github.com/vidgate/vidgate-go/internal/cli/connection"
	"github.com/vidgate/vidgate-go/internal/cli/credential"
	"github.com/vidgate/vidgate-go/internal/cli/output"
	"github.com/vidgate/vidgate-go/internal/cli/session"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "vidgate-cli",
		Usage:   "VidGate command-line client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			AuthCommand(),
			VideosCommand(),
			ConfigCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "VidGate server address (e.g., http://localhost:5080)",
			EnvVars: []string{"VIDGATE_SERVER"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			EnvVars: []string{"VIDGATE_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the CLI config file",
			EnvVars: []string{"VIDGATE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "credential-dir",
			Usage:   "Directory for the stored login token",
			EnvVars: []string{"VIDGATE_CREDENTIAL_DIR"},
			Hidden:  true,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server        string
	Output        string
	ConfigPath    string
	CredentialDir string
	Verbose       bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:        c.String("server"),
		Output:        c.String("output"),
		ConfigPath:    c.String("config"),
		CredentialDir: c.String("credential-dir"),
		Verbose:       c.Bool("verbose"),
	}
}

// runtime bundles the per-invocation client stack: stored credential,
// HTTP client, and session controller, resolved from flags and the
// config file.
type runtime struct {
	flags      *GlobalFlags
	store      *credential.Store
	client     *connection.Client
	controller *session.Controller
	formatter  output.Formatter
	logger     *slog.Logger
}

// newRuntime resolves configuration and builds the client stack.
// Flag values win over the config file; missing values fall back to
// defaults.
func newRuntime(c *cli.Context) (*runtime, error) {
	flags := ParseGlobalFlags(c)

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if flags.Server == "" {
		flags.Server = cfg.Server
	}
	if flags.Output == "" {
		flags.Output = cfg.Output
	}
	if flags.CredentialDir == "" {
		flags.CredentialDir = credential.DefaultDir()
	}

	level := slog.LevelWarn
	if flags.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	store := credential.NewStore(flags.CredentialDir, logger)
	client := connection.New(flags.Server, store)

	return &runtime{
		flags:      flags,
		store:      store,
		client:     client,
		controller: session.New(client, store, logger),
		formatter:  output.NewFormatter(output.Format(flags.Output)),
		logger:     logger,
	}, nil
}

// render writes data to the app writer using the selected formatter.
func (rt *runtime) render(c *cli.Context, data any) error {
	return rt.formatter.Format(c.App.Writer, data)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
