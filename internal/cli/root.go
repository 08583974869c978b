// Package cli is the command line entry point. The root command starts the
// desktop client; the config subcommands manage the startup options file.
package cli

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/config"
	"github.com/ytget/doc-vault/internal/logging"
	"github.com/ytget/doc-vault/internal/ui"
	"github.com/ytget/doc-vault/internal/vault"
)

// Application identity
const (
	AppID   = "com.ytget.doc-vault"
	AppName = "Document Vault"
)

// Flag names
const (
	FlagConfig   = "config"
	FlagDebug    = "debug"
	FlagAPIURL   = "api-url"
	FlagHost     = "host"
	FlagSkipAuth = "skip-auth"
	FlagLogFile  = "log-file"
)

// Runner starts the application with the resolved options
type Runner func(opts *config.Options, version string) error

type rootFlags struct {
	cfgFile  string
	debug    bool
	apiURL   string
	host     string
	skipAuth bool
	logFile  string
}

// NewRootCmd builds the command tree. run is invoked by the bare root command.
func NewRootCmd(version string, run Runner) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "doc-vault",
		Short:         "Desktop client for the digital document vault",
		Long:          `doc-vault signs in to the document vault backend and lets you upload, search, download and delete your documents.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return run(opts, version)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.cfgFile, FlagConfig, "", "config file (default is <user config dir>/doc-vault/config.yaml)")
	pf.BoolVar(&flags.debug, FlagDebug, false, "enable debug logging")
	pf.StringVar(&flags.apiURL, FlagAPIURL, "", "documents endpoint, overrides detection and the saved preference")
	pf.StringVar(&flags.host, FlagHost, "", "host name used to pick the backend when no endpoint is set")
	pf.BoolVar(&flags.skipAuth, FlagSkipAuth, false, "start with the guest session instead of the login screen")
	pf.StringVar(&flags.logFile, FlagLogFile, "", "also write JSON logs to this rotating file")

	cmd.AddCommand(newConfigCmd(flags))
	return cmd
}

// resolve loads the options and applies the flags the user set explicitly
func (f *rootFlags) resolve(cmd *cobra.Command) (*config.Options, error) {
	opts, err := config.Load(f.cfgFile)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed(FlagDebug) {
		opts.Debug = f.debug
	}
	if changed(FlagAPIURL) {
		opts.APIURL = f.apiURL
	}
	if changed(FlagHost) {
		opts.Host = f.host
	}
	if changed(FlagSkipAuth) {
		opts.SkipAuth = f.skipAuth
	}
	if changed(FlagLogFile) {
		opts.LogFile = f.logFile
	}
	return opts, nil
}

// Execute is the entry point called by main.main()
func Execute(version string) {
	if err := NewRootCmd(version, RunApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// RunApp opens the main window and blocks until it is closed
func RunApp(opts *config.Options, version string) error {
	logger, cleanup, err := logging.New(opts.Debug, opts.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer cleanup()

	logger.Info("starting", zap.String("version", version), zap.Bool("skip_auth", opts.SkipAuth))

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())

	window := a.NewWindow(AppName)
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(a)
	baseURL := opts.DocumentsURL(settings.GetAPIURL())
	logger.Info("using backend", zap.String("documents_url", baseURL))

	client := api.NewClient(baseURL, api.WithLogger(logger.Named("api")))
	coordinator := vault.NewService(client, settings,
		vault.WithSkipAuth(opts.SkipAuth),
		vault.WithLogger(logger.Named("vault")),
	)

	root := ui.NewRootUI(window, settings, coordinator, client, ui.WithLogger(logger.Named("ui")))
	root.Start()

	window.ShowAndRun()
	logger.Info("stopped")
	return nil
}
