package cmd

import (
	"fmt"

	"github.com/f3rmion/seedview/internal/wallet"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var words int

	c := &cobra.Command{
		Use:   "new",
		Short: "Generate a new mnemonic and show it",
		Long: `Generate a new BIP-39 recovery mnemonic and display it.

The phrase is never written to disk. Store it somewhere safe before
closing the window.

Controls:
  c, Enter   Copy mnemonic
  ?          More keys
  q, Esc     Quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("words") {
				cfg.Words = words
			}

			phrase, err := wallet.Generate(cfg.Words)
			if err != nil {
				return fmt.Errorf("generating mnemonic: %w", err)
			}

			return display(cmd, phrase, cfg)
		},
	}

	c.Flags().IntVarP(&words, "words", "w", wallet.DefaultWordCount, "number of words (12, 15, 18, 21 or 24)")
	return c
}
