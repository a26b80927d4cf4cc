// Package app is the command line entry point of a site: `serve` runs the HTTP server,
// `modules` prints how the module graph resolves.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
	"github.com/joeydtaylor/steeze-pages/pkg/serverfx"
)

// NewCommand returns the root command serving root.
func NewCommand(root module.Module, opts ...serverfx.Option) *cobra.Command {
	var configDir string

	options := func() []serverfx.Option {
		if configDir == "" {
			return opts
		}
		return append(append([]serverfx.Option(nil), opts...),
			serverfx.WithConfigDirEnv(""),
			serverfx.WithConfigDir(configDir),
		)
	}

	cmd := &cobra.Command{
		Use:          serverfx.NewConfig(opts...).Service,
		Short:        fmt.Sprintf("%s site", module.NameOf(root)),
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			_ = godotenv.Load()
		},
	}
	cmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "configuration directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := options()
			s, err := config.Load(serverfx.NewConfig(o...).Dir())
			if err != nil {
				return err
			}
			if err := PrintBanner(cmd.OutOrStdout(), s.App); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			fx.New(
				serverfx.Module(root, o...),
				fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: l.Named("fx")}
				}),
			).Run()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "modules",
		Short: "Print enabled modules in activation order, themes and dropped modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			act, err := module.Activate(root)
			if err != nil {
				return err
			}
			return PrintActivation(cmd.OutOrStdout(), act)
		},
	})

	return cmd
}

// PrintActivation writes act in a human readable form.
func PrintActivation(w io.Writer, act *module.Activation) error {
	var b strings.Builder
	b.WriteString("Enabled modules:\n")
	for i, name := range act.Names() {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
	}
	b.WriteString("Themes: ")
	b.WriteString(joinNames(themeModules(act.Themes)))
	b.WriteString("\nDropped: ")
	b.WriteString(joinNames(act.Dropped))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func themeModules(ts []module.Theme) []module.Module {
	out := make([]module.Module, len(ts))
	for i, t := range ts {
		out[i] = t
	}
	return out
}

func joinNames(ms []module.Module) string {
	if len(ms) == 0 {
		return "-"
	}
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = module.NameOf(m)
	}
	return strings.Join(names, ", ")
}
