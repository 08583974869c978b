package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/doc-vault/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or set startup options",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(opts)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set an option and save it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadForEdit(flags.cfgFile)
			if err != nil {
				return err
			}
			if err := setOption(opts, args[0], args[1]); err != nil {
				return err
			}
			path, err := config.Save(opts, flags.cfgFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	})

	return cmd
}

// loadForEdit loads the options to modify. An explicit file that does not
// exist yet starts out empty.
func loadForEdit(cfgFile string) (*config.Options, error) {
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); errors.Is(err, fs.ErrNotExist) {
			return &config.Options{}, nil
		}
	}
	return config.Load(cfgFile)
}

func setOption(opts *config.Options, key, value string) error {
	switch key {
	case "api_url":
		opts.APIURL = value
	case "host":
		opts.Host = value
	case "log_file":
		opts.LogFile = value
	case "skip_auth", "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool for %s: %w", key, err)
		}
		if key == "debug" {
			opts.Debug = b
		} else {
			opts.SkipAuth = b
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
