package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/termkit/internal/config"
	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/ui"
	"github.com/spf13/cobra"
)

// config command flags
var (
	configInitGlobal bool
	configInitForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage termkit configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a .termkit.yaml with the default settings in the current directory,
or ~/.config/termkit/config.yaml with --global.

Examples:
  termkit config init
  termkit config init --global --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if configInitGlobal {
			path = config.GlobalPath()
			if path == "" {
				return errors.New(errors.ErrConfig,
					"Cannot determine your home directory",
					"Set $HOME or write the file with 'termkit config init' in a project")
			}
		}
		return configInit(ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.OutOrStdout(), path, configInitForce)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings and where they come from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := resolvedConfig()
		if err != nil {
			return err
		}
		configShow(cmd.OutOrStdout(), l)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting in the config file",
	Long: `Change one setting in the config file, keeping its comments and layout.
The file is created with defaults first if it does not exist.

Examples:
  termkit config set spinner.foreground magenta
  termkit config set progress.fill_char '#'`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if loaded != nil && loaded.Path != "" {
			path = loaded.Path
		}
		if path == "" {
			path = filepath.Join(".", config.ConfigFileName)
		}
		if err := configSet(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s (%s)\n", ui.SymbolSuccess, args[0], args[1], path)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the settings, their defaults and environment overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configKeys(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd, configSetCmd, configKeysCmd)
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write ~/.config/termkit/config.yaml")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file without asking")
}

func resolvedConfig() (*config.Loaded, error) {
	if loaded != nil {
		return loaded, nil
	}
	return config.LoadOrDefault(configFlag)
}

// configInit writes the default config to path, asking before replacing an
// existing file unless force is set.
func configInit(p *ui.Prompter, out io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		overwrite, err := p.Confirm(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.WriteDefault(path, true); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Wrote %s\n", ui.SymbolSuccess, path)
	return nil
}

func configShow(out io.Writer, l *config.Loaded) {
	fmt.Fprintf(out, "Config: %s\n\n", displayPath(l.Path))

	settings := l.Settings()
	rows := make([]ui.SettingRow, 0, len(settings))
	for _, key := range config.Keys() {
		rows = append(rows, ui.SettingRow{
			Key:    key,
			Value:  settings[key],
			Source: l.Source(key),
		})
	}
	fmt.Fprint(out, ui.RenderSettingsTable(rows))
}

// configSet updates key in the file at path and rolls the change back if
// the result does not validate.
func configSet(path, key, value string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.WriteDefault(path, false); err != nil {
			return err
		}
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to read config file", "Check file permissions")
	}

	if err := config.SetValue(path, key, value); err != nil {
		if errors.IsCode(err, errors.ErrConfig) {
			return err
		}
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to set '%s'", key), "")
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if restoreErr := os.WriteFile(path, original, 0644); restoreErr != nil {
			return errors.WrapWithCode(restoreErr, errors.ErrConfig,
				"Failed to restore config after an invalid change",
				"Check "+path+" by hand")
		}
		return err
	}
	return nil
}

func configKeys(out io.Writer) {
	keys := config.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, config.DefaultValue(key), config.EnvName(key)})
	}
	columns := ui.AutoColumns([]string{"KEY", "DEFAULT", "ENVIRONMENT"}, rows, 0)
	fmt.Fprintln(out, ui.RenderSimpleTable(columns, rows))
}
