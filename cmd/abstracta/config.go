package main

import (
	"fmt"
	"os"

	"abstracta/internal/config"
	"abstracta/internal/ui"

	"github.com/spf13/cobra"
)

func configCmd(a *app) *cobra.Command {
	var initialise bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the settings in effect, or write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if initialise {
				path := config.DefaultConfigPath()
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists", path)
				}
				if err := config.DefaultConfig().Save(path); err != nil {
					return err
				}
				ui.Good.Fprintf(out, "%s wrote %s\n", ui.StatusIcon(true), path)
				return nil
			}

			if a.loadedFrom == "" {
				fmt.Fprintf(out, "%s no config file, using defaults (create one with --init at %s)\n",
					ui.WarnIcon(), config.DefaultConfigPath())
			} else {
				fmt.Fprintf(out, "%s %s\n", ui.Brand.Sprint("config"), a.loadedFrom)
			}
			fmt.Fprintln(out, a.cfg.Summary())
			return nil
		},
	}
	cmd.Flags().BoolVar(&initialise, "init", false, "write the default config to the user config directory")
	return cmd
}
