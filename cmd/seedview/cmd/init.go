package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/seedview/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write config.yaml with the default settings into the config directory.

An existing file is kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := getConfigDir()
			path := filepath.Join(dir, config.FileName)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Save(dir, config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return c
}
