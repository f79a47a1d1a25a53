package main

import (
	"fmt"
	"io"
	"log"

	"abstracta/internal/config"
	"abstracta/internal/repository/sqlite"
	"abstracta/internal/service"
	"abstracta/internal/ui"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

// app carries the state shared by all commands of one invocation
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg        *config.Config
	loadedFrom string
	bus        *service.EventBus
}

func newRootCmd() *cobra.Command {
	a := &app{bus: service.NewEventBus()}

	root := &cobra.Command{
		Use:   "abstracta",
		Short: "abstracta, a hierarchical diagram editor",
		Long: ui.Brand.Sprint("abstracta") + " inspects and converts hierarchical diagrams\n" +
			ui.Subtle.Sprint("Nodes open into sub-diagrams; connections to siblings follow them inside"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				log.SetOutput(io.Discard)
			}
			return a.loadConfig()
		},
	}
	root.SetVersionTemplate("abstracta {{ .Version }}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: search $ABSTRACTA_CONFIG, ./abstracta.yaml, ~/.config/abstracta)")
	flags.StringVar(&a.dbPath, "db", "", "document library database (overrides database.path)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log service activity to stderr")

	root.AddCommand(
		checkCmd(a),
		treeCmd(a),
		pathCmd(a),
		viewCmd(a),
		exportCmd(a),
		saveCmd(a),
		loadCmd(a),
		listCmd(a),
		removeCmd(a),
		watchCmd(a),
		configCmd(a),
	)

	wrapErrors(root)
	return root
}

// wrapErrors prints a failing command's error in the palette before cobra
// returns it to main
func wrapErrors(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		if c.RunE == nil {
			continue
		}
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				ui.Bad.Fprintf(cmd.ErrOrStderr(), "abstracta %s: %v\n", cmd.Name(), err)
			}
			return err
		}
	}
}

func (a *app) loadConfig() error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if path != "" {
		log.Printf("Loaded config from %s", path)
	}
	a.cfg = cfg
	a.loadedFrom = path
	return nil
}

// files returns a service for file operations only
func (a *app) files() *service.DocumentService {
	return service.NewDocumentService(nil, a.bus, a.cfg.ModelOptions()...)
}

// library opens the document library. The returned func closes it.
func (a *app) library() (*service.DocumentService, func(), error) {
	repo, err := sqlite.New(a.cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Database opened: %s", a.cfg.Database.Path)
	svc := service.NewDocumentService(repo, a.bus, a.cfg.ModelOptions()...)
	return svc, func() { repo.Close() }, nil
}
