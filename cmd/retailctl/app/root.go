// Package app implements the retailctl command-line interface. Commands
// are organized hierarchically with a root command and one subcommand
// per endpoint group.
package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/retailkit/retailkit/config"
	"github.com/retailkit/retailkit/httpclient"
	"github.com/retailkit/retailkit/logger"
	"github.com/retailkit/retailkit/retail"
)

const (
	cliName        = "retailctl"
	cliDescription = "retailctl - inspect and manage a retail backend from the terminal"
)

// GlobalOptions holds flags common to all commands.
type GlobalOptions struct {
	// ConfigFile is an explicit settings file path.
	ConfigFile string
	// BaseURL overrides the configured API base address.
	BaseURL string
	// Token overrides the configured bearer token.
	Token string
	// Timeout overrides the configured request timeout.
	Timeout time.Duration
	// Verbose enables debug logging of every request.
	Verbose bool
}

// Client builds a retail client from the settings file, environment,
// and flag overrides (flags win).
func (o *GlobalOptions) Client() (*retail.Client, error) {
	settings, err := config.Load(o.ConfigFile)
	if err != nil {
		// Flags alone can be enough; fall back to empty settings when
		// no file or environment configuration exists.
		if o.BaseURL == "" {
			return nil, err
		}
		settings = &config.Settings{}
		settings.ApplyDefaults()
	}

	if o.BaseURL != "" {
		settings.BaseURL = o.BaseURL
	}
	if o.Token != "" {
		settings.Token = o.Token
	}
	if o.Timeout > 0 {
		settings.Timeout = o.Timeout
	}

	var opts []httpclient.Option
	if o.Verbose {
		log := logger.New(logger.Config{Level: "debug"})
		opts = append(opts, httpclient.WithLogger(log.WithComponent("httpclient")))
	}

	return retail.New(settings.ClientConfig(), opts...)
}

// NewRetailCommand creates the root retailctl command with all
// subcommands registered.
func NewRetailCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "path to a retailkit settings file")
	flags.StringVar(&opts.BaseURL, "base-url", "", "API base URL (overrides config)")
	flags.StringVar(&opts.Token, "token", "", "bearer token (overrides config)")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "request timeout (overrides config)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every request at debug level")

	cmd.AddCommand(
		newSalesCommand(opts),
		newInventoryCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
