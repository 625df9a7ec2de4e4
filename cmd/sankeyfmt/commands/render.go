package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/sankeyfmt/am"
	"github.com/teranos/sankeyfmt/display"
	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/format"
	"github.com/teranos/sankeyfmt/graph"
	"github.com/teranos/sankeyfmt/logger"
	"github.com/teranos/sankeyfmt/persist"
	"github.com/teranos/sankeyfmt/sankey"
)

// RenderCmd refreshes the formatting model against a dataset and prints the result
var RenderCmd = &cobra.Command{
	Use:   "render <dataset>",
	Short: "Refresh the formatting model against a dataset",
	Long: `Build a diagram from a YAML or JSON dataset, refresh the formatting model against it
and print the exported card tree with the resolved node and link colors.

Dataset format:
  flows:
    - {source: Coal, destination: Electricity, weight: 25}
  node_colors:
    Coal: "#333333"

Examples:
  sankeyfmt render flows.yaml
  sankeyfmt render flows.yaml --mode individual --format yaml
  sankeyfmt render flows.yaml --mode match --target destination --show-all
  sankeyfmt render flows.yaml --watch          # re-render when the dataset or config changes`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

type renderOptions struct {
	Format     string
	ShowAll    bool
	ShowAllSet bool // ShowAll was given on the command line and overrides config
	Mode       string
	Target     string
	Watch      bool
	Verbosity  int
	Diag       io.Writer // receives verbosity-gated diagnostics; nil discards them
}

var renderOpts renderOptions

func init() {
	RenderCmd.Flags().StringVar(&renderOpts.Format, "format", display.FormatJSON, "Output format: json, yaml, toml")
	RenderCmd.Flags().BoolVar(&renderOpts.ShowAll, "show-all", false, "Generate a color control per node (overrides config)")
	RenderCmd.Flags().StringVar(&renderOpts.Mode, "mode", "", "Link color mode: match, individual, uniform (default from config)")
	RenderCmd.Flags().StringVar(&renderOpts.Target, "target", "", "Endpoint links match in match mode: source, destination")
	RenderCmd.Flags().BoolVar(&renderOpts.Watch, "watch", false, "Re-render when the dataset or configuration changes")
}

// RenderResult is what render prints
type RenderResult struct {
	Mode      string            `json:"mode" yaml:"mode" toml:"mode"`
	Target    string            `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Stats     graph.Stats       `json:"stats" yaml:"stats" toml:"stats"`
	Nodes     []ResolvedColor   `json:"nodes" yaml:"nodes" toml:"nodes"`
	Links     []ResolvedColor   `json:"links" yaml:"links" toml:"links"`
	Labels    sankey.Style      `json:"labels" yaml:"labels" toml:"labels"`
	Positions string            `json:"positions" yaml:"positions" toml:"positions"`
	Settings  format.Descriptor `json:"settings" yaml:"settings" toml:"settings"`
}

// ResolvedColor pairs an entity label with its fill color after refresh
type ResolvedColor struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	opts := renderOpts
	opts.ShowAllSet = cmd.Flags().Changed("show-all")
	opts.Verbosity, _ = cmd.Flags().GetCount("verbose")
	opts.Verbosity = max(opts.Verbosity, cfg.Log.Verbosity)
	opts.Diag = cmd.ErrOrStderr()

	if err := renderDataset(cmd.OutOrStdout(), path, cfg, opts); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return watchAndRender(cmd.Context(), cmd.OutOrStdout(), path, opts)
}

// renderDataset runs one refresh cycle and prints the result
func renderDataset(w io.Writer, path string, cfg *am.Config, opts renderOptions) error {
	ds, err := loadDataset(path)
	if err != nil {
		return err
	}

	log := logger.ComponentLogger("render")
	settings, err := sankey.NewSettingsFromConfig(cfg.Format, log)
	if err != nil {
		return err
	}
	if err := applyRenderOptions(settings, opts); err != nil {
		return err
	}
	if len(ds.Positions) > 0 {
		settings.SetNodePositions(ds.Positions)
	}

	diagram := graph.NewBuilder(ds.Palette, log).Build(ds.Flows, ds.NodeColors)
	if err := settings.Refresh(diagram.Nodes, diagram.Links); err != nil {
		return err
	}
	reportRefresh(opts, settings, diagram)

	result := RenderResult{
		Mode:      settings.Links.Colors.Mode().String(),
		Stats:     diagram.Meta.Stats,
		Labels:    settings.LabelStyle(),
		Positions: persist.EncodeNodePositions(settings.NodePositions()),
		Settings:  settings.Export(),
	}
	if settings.Links.Colors.Mode() == sankey.ModeMatchNodeColors {
		result.Target = string(settings.Links.Colors.Target())
	}
	for _, n := range diagram.Nodes {
		result.Nodes = append(result.Nodes, ResolvedColor{Label: n.Label.FormattedName, Color: n.FillColor})
	}
	for _, l := range diagram.Links {
		result.Links = append(result.Links, ResolvedColor{Label: l.Label(), Color: l.FillColor})
	}

	return display.Output(w, result, opts.Format, "sankeyfmt render "+path)
}

// reportRefresh writes the diagnostics enabled at opts.Verbosity
func reportRefresh(opts renderOptions, settings *sankey.Settings, diagram *graph.Diagram) {
	if opts.Diag == nil {
		return
	}
	w := opts.Diag
	if logger.ShouldOutput(opts.Verbosity, logger.OutputRefreshSummary) {
		fmt.Fprintf(w, "refreshed %d nodes, %d links, %d node color controls\n",
			len(diagram.Nodes), len(diagram.Links), len(settings.Nodes.NodeColorOverrides()))
	}
	if logger.ShouldOutput(opts.Verbosity, logger.OutputColorMode) {
		mode := settings.Links.Colors.Mode()
		if mode == sankey.ModeMatchNodeColors {
			fmt.Fprintf(w, "link color mode: %s (%s)\n", mode, settings.Links.Colors.Target())
		} else {
			fmt.Fprintf(w, "link color mode: %s\n", mode)
		}
	}
	if logger.ShouldOutput(opts.Verbosity, logger.OutputOverrides) {
		for _, picker := range settings.Nodes.NodeColorOverrides() {
			fmt.Fprintf(w, "  node %-20s %s\n", picker.DisplayName, picker.Value)
		}
		for _, s := range settings.Links.Colors.DynamicSlices() {
			if picker, ok := s.(*format.ColorPicker); ok {
				fmt.Fprintf(w, "  link %-20s %s\n", picker.DisplayName, picker.Value)
			}
		}
	}
	if logger.ShouldOutput(opts.Verbosity, logger.OutputCardTree) {
		if err := display.Output(w, settings.Export(), display.FormatYAML, "card tree"); err != nil {
			fmt.Fprintf(w, "card tree: %v\n", err)
		}
	}
}

func applyRenderOptions(settings *sankey.Settings, opts renderOptions) error {
	if opts.ShowAllSet {
		settings.Nodes.ShowAll.Value = opts.ShowAll
	}
	if opts.Mode != "" {
		mode, ok := sankey.ParseLinkColorMode(opts.Mode)
		if !ok {
			return errors.WithHint(
				errors.Newf("unknown link color mode %q", opts.Mode),
				"use one of: match, individual, uniform",
			)
		}
		settings.Links.Colors.SetMode(mode)
	}
	if opts.Target != "" {
		if err := settings.Links.Colors.MatchSourceOrDestination.Select(opts.Target); err != nil {
			return errors.WithHint(err, "use one of: source, destination")
		}
	}
	return nil
}

// watchAndRender re-renders on every change to the dataset or an existing config file
// until interrupted
func watchAndRender(ctx context.Context, w io.Writer, path string, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	paths := []string{path}
	if userConfig := am.UserConfigPath(); userConfig != "" {
		if _, err := os.Stat(userConfig); err == nil {
			paths = append(paths, userConfig)
		}
	}
	for _, src := range am.ConfigSources {
		if src.Source == am.SourceProject {
			paths = append(paths, src.Path)
			break
		}
	}

	watcher, err := am.NewConfigWatcher(paths...)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	am.SetGlobalWatcher(watcher)
	defer am.SetGlobalWatcher(nil)

	watcher.OnReload(func(cfg *am.Config) error {
		fmt.Fprintln(w)
		return renderDataset(w, path, cfg, opts)
	})
	watcher.Start()

	logger.Infow("Watching for changes", "paths", paths)
	if opts.Diag != nil && logger.ShouldOutput(opts.Verbosity, logger.OutputWatch) {
		fmt.Fprintf(opts.Diag, "watching %d paths, press Ctrl+C to stop\n", len(paths))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
