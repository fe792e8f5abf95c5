// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fontydev/fonty/internal/config"
)

func Execute(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	ctx := context.Background()

	if err := root.ExecuteContext(ctx); err != nil {
		return err
	}

	return nil
}

func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("ERROR:"), err)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonty",
		Short: "fonty fetches font families from Google Fonts",
		Long: fmt.Sprintf(`fonty fetches font families from Google Fonts and installs them under a
local base directory.

Font base dir (installation dir): '%s'
Change it with the $FONTY_BASE_PATH environment variable or --base-dir.`,
			config.DefaultBasePath()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default "+config.DefaultPath()+")")

	cmd.AddCommand(newFetchCmd())

	return cmd
}
