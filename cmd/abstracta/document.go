package main

import (
	"fmt"
	"io"
	"strings"

	"abstracta/internal/codec"
	"abstracta/internal/domain"
	"abstracta/internal/geometry"
	"abstracta/internal/model"
	"abstracta/internal/ui"
	"abstracta/internal/view"

	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a document and summarise it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.files().ImportFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: %d nodes, %d connections, depth %d\n",
				ui.StatusIcon(true), args[0], m.Len()-1, len(m.Connections()), depth(m))
			for _, w := range lint(m) {
				fmt.Fprintf(out, "  %s %s\n", ui.WarnIcon(), w)
			}
			return nil
		},
	}
}

func treeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the node hierarchy with rectangles and connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.files().ImportFile(args[0])
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), m, domain.RootID, 0)
		},
	}
}

func printTree(w io.Writer, m *model.Model, parent domain.NodeID, level int) error {
	indent := strings.Repeat("  ", level)
	for _, id := range m.Children(parent) {
		r, err := m.Rectangle(id, parent)
		rect := ui.Subtle.Sprint("[no rectangle]")
		if err == nil {
			rect = ui.Subtle.Sprint(formatRect(r))
		}
		fmt.Fprintf(w, "%s%s  %s\n", indent, ui.Info.Sprint(displayName(m, id)), rect)

		for _, c := range m.Outgoing(id) {
			rel, err := m.ResolvePath(id, c.To)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s  → %s\n", indent, rel)
		}
		if err := printTree(w, m, id, level+1); err != nil {
			return err
		}
	}
	return nil
}

func pathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <file> <from> <to>",
		Short: "Print the relative path from one node to another",
		Long: "Print the relative path a connection from <from> to <to> is stored as.\n" +
			"Both nodes are given as absolute name paths such as Car/Engine.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.files().ImportFile(args[0])
			if err != nil {
				return err
			}
			from, err := m.Find(args[1])
			if err != nil {
				return err
			}
			to, err := m.Find(args[2])
			if err != nil {
				return err
			}
			rel, err := m.ResolvePath(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}
}

func viewCmd(a *app) *cobra.Command {
	var (
		frame string
		zoom  float64
	)
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show what the editor draws for one frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.files().ImportFile(args[0])
			if err != nil {
				return err
			}
			displayed := domain.RootID
			if frame != "" {
				if displayed, err = m.Find(frame); err != nil {
					return err
				}
			}

			v := view.New(m, a.cfg.ViewSettings())
			defer v.Close()
			if err := v.SetDisplayedParent(displayed); err != nil {
				return err
			}
			if err := v.SetZoom(displayed, zoom); err != nil {
				return err
			}
			return printView(cmd.OutOrStdout(), v, a.cfg.Editor.ArrowLength)
		},
	}
	cmd.Flags().StringVar(&frame, "frame", "", "absolute path of the node to open, e.g. Car/Engine")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "zoom factor")
	return cmd
}

func printView(w io.Writer, v *view.View, arrowLength float64) error {
	m := v.Model()
	frame := v.Displayed()
	origin := v.ViewportPosition(frame)
	name, err := m.PathNames(frame)
	if err != nil {
		return err
	}
	if name == "" {
		name = "/"
	}
	fmt.Fprintf(w, "%s %s  origin %s  zoom %g\n\n",
		ui.Brand.Sprint("frame"), name, formatPoint(origin), v.Zoom(frame))

	var rows [][]string
	for _, id := range v.VisibleNodes() {
		kind := "inner"
		if v.IsOuter(id) {
			kind = "outer"
		}
		rect := "-"
		if r, err := v.DisplayedRectangle(id); err == nil {
			rect = formatRect(r)
		}
		rows = append(rows, []string{displayName(m, id), kind, rect})
	}
	ui.Table(w, []string{"NODE", "KIND", "VIEWPORT"}, rows)

	rows = rows[:0]
	for _, c := range v.VisibleConnections() {
		from, errFrom := v.DisplayedRectangle(c.From)
		to, errTo := v.DisplayedRectangle(c.To)
		if errFrom != nil || errTo != nil {
			continue
		}
		arrow := geometry.ArrowFor(from, to, arrowLength)
		rows = append(rows, []string{
			displayName(m, c.From) + " → " + displayName(m, c.To),
			formatPoint(arrow.Start),
			formatPoint(arrow.End),
		})
	}
	if len(rows) > 0 {
		fmt.Fprintln(w)
		ui.Table(w, []string{"CONNECTION", "FROM", "TO"}, rows)
	}
	return nil
}

func exportCmd(a *app) *cobra.Command {
	var (
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Re-export a document, optionally converting its format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.files()
			m, err := svc.ImportFile(args[0])
			if err != nil {
				return err
			}
			if output != "" {
				if err := svc.ExportFile(m, output); err != nil {
					return err
				}
				ui.Good.Fprintf(cmd.ErrOrStderr(), "%s wrote %s\n", ui.StatusIcon(true), output)
				return nil
			}
			if format == "" {
				format = codec.DetectFormat(args[0])
			}
			return svc.Export(m, cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format")
	cmd.Flags().StringVarP(&format, "format", "f", "", "format for standard output ("+strings.Join(codec.Formats(), ", ")+")")
	return cmd
}

func depth(m *model.Model) int {
	deepest := 0
	for _, id := range m.Nodes() {
		if p, err := m.Path(id); err == nil && len(p) > deepest {
			deepest = len(p)
		}
	}
	return deepest
}

// lint reports names that make relative paths ambiguous
func lint(m *model.Model) []string {
	var warnings []string
	for _, parent := range m.Nodes() {
		seen := make(map[string]bool)
		for _, id := range m.Children(parent) {
			name := m.Name(id)
			where := "top level"
			if parent != domain.RootID {
				where, _ = m.PathNames(parent)
			}
			switch {
			case name == "":
				warnings = append(warnings, fmt.Sprintf("%s: unnamed node %d", where, id))
			case strings.Contains(name, "/"):
				warnings = append(warnings, fmt.Sprintf("%s: name %q contains a path separator", where, name))
			case seen[name]:
				warnings = append(warnings, fmt.Sprintf("%s: duplicate name %q, connections resolve to the first", where, name))
			}
			seen[name] = true
		}
	}
	return warnings
}

func displayName(m *model.Model, id domain.NodeID) string {
	if name := m.Name(id); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

func formatRect(r domain.Rect) string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.W, r.H)
}

func formatPoint(p domain.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
