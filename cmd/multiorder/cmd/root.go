package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"multiorder/internal/config"
	"multiorder/internal/logger"
	"multiorder/internal/report"
)

type rootOpts struct {
	cfgFile     string
	kind        string
	remove      []string
	orders      []string
	limit       int
	table       bool
	debugModeOn bool
	hideLogTime bool
	noColor     bool
}

var longRootCmdDescription = `multiorder loads elements into an ordered container and prints them in
any of six traversal orders: insertion, ascending, descending, reverse,
side-cross (smallest, largest, second smallest, ...) and middle-out.

Elements come from the command line or from the "elements" list of a YAML config file.
`

var rootExample = `
  multiorder 7 15 6 1 2
  multiorder --order side-cross --order middle-out 7 15 6 1 2
  multiorder --kind string --remove b a b c
  multiorder --config multiorder.yaml --table
`

// NewRootCmd builds the command; flags on the command line override the config file.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "multiorder [flags] [elements...]",
		Short:         "Print a container in six traversal orders",
		Long:          longRootCmdDescription,
		Example:       rootExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.LogOptions{
				Verbose:      opts.debugModeOn,
				DisableColor: opts.noColor,
				HideLogTime:  opts.hideLogTime,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			r, err := report.Build(cfg)
			if err != nil {
				return err
			}
			logrus.Debugf("container holds %d element(s) after removals", r.Size)

			if opts.table {
				r.WriteTable(cmd.OutOrStdout())
				return nil
			}
			return r.WritePlain(cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "YAML file providing kind, elements, remove, orders and limit")
	flags.StringVarP(&opts.kind, "kind", "k", config.KindInt, fmt.Sprintf("element kind, the possible values are %v", config.SupportedKinds))
	flags.StringSliceVarP(&opts.remove, "remove", "r", nil, "remove every occurrence of the value, can be repeated")
	flags.StringSliceVarP(&opts.orders, "order", "o", nil, "traversal order to print, can be repeated (default all)")
	flags.IntVarP(&opts.limit, "limit", "n", 0, "print at most n elements per order, 0 means no limit")
	flags.BoolVarP(&opts.table, "table", "t", false, "print the orders as a table")
	rootCmd.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.hideLogTime, "hide-time", false, "hide the log time")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	return rootCmd
}

func loadConfig(cmd *cobra.Command, opts *rootOpts, args []string) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		loaded, err := config.Load(opts.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logrus.Debugf("loaded config from %s", opts.cfgFile)
	}

	flags := cmd.Flags()
	if flags.Changed("kind") || cfg.Kind == "" {
		cfg.Kind = opts.kind
	}
	if len(args) > 0 {
		cfg.Elements = toAny(args)
	}
	if flags.Changed("remove") {
		cfg.Remove = toAny(opts.remove)
	}
	if flags.Changed("order") {
		cfg.Orders = opts.orders
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("multiorder: %v", err)
		os.Exit(1)
	}
}
