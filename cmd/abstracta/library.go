package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"abstracta/internal/ui"

	"github.com/spf13/cobra"
)

func saveCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Store a document in the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeLib, err := a.library()
			if err != nil {
				return err
			}
			defer closeLib()

			m, err := svc.ImportFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}
			doc, err := svc.Save(cmd.Context(), name, m)
			if err != nil {
				return err
			}
			ui.Good.Fprintf(cmd.OutOrStdout(), "%s saved %s (%d nodes)\n", ui.StatusIcon(true), doc.Name, doc.NodeCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "library name (default: file name without extension)")
	return cmd
}

func loadCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Write a library document to a file or standard output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeLib, err := a.library()
			if err != nil {
				return err
			}
			defer closeLib()

			m, err := svc.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output != "" {
				return svc.ExportFile(m, output)
			}
			return svc.Export(m, cmd.OutOrStdout(), "yaml")
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format")
	return cmd
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List library documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeLib, err := a.library()
			if err != nil {
				return err
			}
			defer closeLib()

			docs, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(docs) == 0 {
				ui.Subtle.Fprintln(out, "  library is empty")
				return nil
			}

			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{
					d.Name,
					strconv.Itoa(d.NodeCount),
					d.Format,
					d.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			ui.Table(out, []string{"NAME", "NODES", "FORMAT", "UPDATED"}, rows)
			fmt.Fprintln(out)
			ui.Subtle.Fprintf(out, "  %d documents in %s\n", len(docs), a.cfg.Database.Path)
			return nil
		},
	}
}

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a library document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeLib, err := a.library()
			if err != nil {
				return err
			}
			defer closeLib()

			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			ui.Good.Fprintf(cmd.OutOrStdout(), "%s removed %s\n", ui.StatusIcon(true), args[0])
			return nil
		},
	}
}
