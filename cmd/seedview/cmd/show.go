package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/seedview/internal/wallet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShowCmd() *cobra.Command {
	var (
		file       string
		noValidate bool
	)

	c := &cobra.Command{
		Use:   "show",
		Short: "Show an existing mnemonic",
		Long: `Show an existing mnemonic read from a file, from the SEEDVIEW_MNEMONIC
environment variable, or from standard input, in that order.

Use --file - to force reading standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			raw, err := readMnemonic(cmd, file)
			if err != nil {
				return err
			}

			phrase := wallet.Normalize(raw)
			if !noValidate {
				if err := wallet.Validate(phrase); err != nil {
					return err
				}
			}

			return display(cmd, phrase, cfg)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "read the mnemonic from this file ('-' for stdin)")
	c.Flags().BoolVar(&noValidate, "no-validate", false, "skip the BIP-39 wordlist and checksum check")
	return c
}

// readMnemonic picks the mnemonic source.
func readMnemonic(cmd *cobra.Command, file string) (string, error) {
	switch {
	case file != "" && file != "-":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading mnemonic file: %w", err)
		}
		return string(data), nil
	case file == "" && viper.GetString("mnemonic") != "":
		return viper.GetString("mnemonic"), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading mnemonic from stdin: %w", err)
	}
	return string(data), nil
}
