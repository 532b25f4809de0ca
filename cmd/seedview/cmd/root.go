// Package cmd contains all CLI commands for seedview.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/seedview/internal/clipboard"
	"github.com/f3rmion/seedview/internal/config"
	"github.com/f3rmion/seedview/internal/logging"
	"github.com/f3rmion/seedview/internal/tui"
	"github.com/f3rmion/seedview/internal/wallet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute builds the command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd() *cobra.Command {
	var cfgDir string

	rootCmd := &cobra.Command{
		Use:   "seedview",
		Short: "Show a wallet recovery phrase with a copy button",
		Long: `seedview displays a wallet recovery mnemonic in the terminal next to a
warning to keep it safe, with a button that copies it to the clipboard.

Running 'seedview' without arguments generates a new mnemonic and shows it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgDir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/seedview)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")
	rootCmd.PersistentFlags().Bool("plain", false, "print a single frame instead of starting the TUI")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))

	newCmd := newNewCmd()
	rootCmd.AddCommand(newCmd, newShowCmd(), newInitCmd())
	rootCmd.Flags().AddFlagSet(newCmd.Flags())
	rootCmd.RunE = newCmd.RunE

	return rootCmd
}

// initConfig resolves the config directory and reads ENV variables.
func initConfig(cfgDir string) error {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("SEEDVIEW")
	viper.AutomaticEnv()
	return nil
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml from the config directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// display shows phrase either as one printed frame or in the TUI.
func display(cmd *cobra.Command, phrase string, cfg *config.Config) error {
	if viper.GetBool("plain") {
		fmt.Fprintln(cmd.OutOrStdout(), tui.Render(phrase, cfg.FieldWidth))
		return nil
	}

	closer, err := logging.Setup(getConfigDir(), viper.GetBool("verbose"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
	} else {
		defer closer.Close()
	}

	logging.Infof("showing %d word mnemonic", wallet.WordCount(phrase))
	if !clipboard.Available() {
		logging.Warnf("no clipboard backend found, copy will fail")
	}

	p := tea.NewProgram(
		tui.NewApp(phrase, cfg, clipboard.System{}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
