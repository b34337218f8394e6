package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/defaults"
	"github.com/gogpu/defaults/asset"
	"github.com/gogpu/defaults/docgen"
	"github.com/gogpu/defaults/engine"
	"github.com/gogpu/defaults/internal/config"
	"github.com/gogpu/defaults/store"
)

// errMissingDefaults is returned by check --strict when a slot stays empty.
var errMissingDefaults = errors.New("default assets missing")

// categoryDocURL is the reference page of the asset categories.
const categoryDocURL = "https://pkg.go.dev/github.com/gogpu/defaults/asset#Category"

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "defaultsctl",
		Short:         "Inspect the engine's default assets",
		Version:       defaults.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(a.listCmd(), a.checkCmd(), a.docsCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("manifest"); f != nil {
		if err := v.BindPFlag("manifest", f); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("strict"); f != nil {
		if err := v.BindPFlag("strict", f); err != nil {
			return err
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.LoggingEnabled() {
		lvl, _ := cfg.Level()
		a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
		defaults.SetLogger(a.log)
	}
	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the declared default asset slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLOT\tCATEGORY\tKEY")
			for _, id := range defaults.AllSlots() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", id, id.Category(), id.Key())
			}
			return tw.Flush()
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Start an engine from a manifest and report which defaults resolve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.manifest()
			if err != nil {
				return err
			}

			opts := []engine.Option{engine.WithManifest(m)}
			if a.log != nil {
				opts = append(opts, engine.WithLogger(a.log))
			}
			e := engine.New(opts...)
			if err := e.Start(); err != nil {
				return err
			}
			defer e.Shutdown()

			reg := e.Defaults()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLOT\tKEY\tSTATUS")
			for id, h := range reg.Slots() {
				status := "resolved"
				if h.IsEmpty() {
					status = "empty"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", id, id.Key(), status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			resolved := reg.Resolved()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d default assets resolved\n", resolved, defaults.NumSlots)
			if a.cfg.Strict && resolved < defaults.NumSlots {
				return fmt.Errorf("%w: %d", errMissingDefaults, defaults.NumSlots-resolved)
			}
			return nil
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "asset manifest (default: built-in)")
	cmd.Flags().Bool("strict", false, "fail when any default asset is missing")
	return cmd
}

func (a *app) manifest() (*store.Manifest, error) {
	if a.cfg.Manifest == "" {
		return store.DefaultManifest()
	}
	return store.LoadManifestFile(a.cfg.Manifest)
}

func (a *app) docsCmd() *cobra.Command {
	var html bool
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the default asset reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lookup := func(name string) (string, bool) {
				for _, c := range asset.Categories() {
					if c.String() == name {
						return categoryDocURL + name, true
					}
				}
				return "", false
			}
			if !html {
				return docgen.WriteSlotTable(cmd.OutOrStdout(), docgen.SlotRows(), lookup)
			}

			var md bytes.Buffer
			if err := docgen.WriteSlotTable(&md, docgen.SlotRows(), lookup); err != nil {
				return err
			}
			_, err := cmd.OutOrStdout().Write(docgen.ToHTML(md.Bytes()))
			return err
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "render HTML instead of markdown")
	return cmd
}
