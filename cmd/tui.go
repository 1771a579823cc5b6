package cmd

import (
	"errors"
	"fmt"

	"github.com/gfmartins/postdeck/internal/config"
	"github.com/gfmartins/postdeck/internal/contentful"
	"github.com/gfmartins/postdeck/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Missing credentials is a presentation state, not a startup failure:
	// the TUI shows a permanent not-configured screen with no retry.
	client, err := contentful.NewClient(cfg)
	if err != nil && !errors.Is(err, contentful.ErrNotConfigured) {
		return err
	}

	return tui.Run(tui.RunOpts{Cfg: cfg, Client: client})
}
