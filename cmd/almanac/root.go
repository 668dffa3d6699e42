package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kbukum/almanac/config"
	"github.com/kbukum/almanac/errors"
	"github.com/kbukum/almanac/logger"
	"github.com/kbukum/almanac/observability"
	"github.com/kbukum/almanac/solver"
	"github.com/kbukum/almanac/version"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"input":        "input",
	"mode":         "mode",
	"workers":      "workers",
	"strict":       "strict",
	"verify":       "verify.enabled",
	"verify-limit": "verify.limit",
	"json":         "json",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// newRootCmd builds the command tree writing results to stdout and logs and
// errors to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "almanac [flags] [input]",
		Short: "Find the lowest location for almanac seeds",
		Long: `almanac reads a seed almanac (a seeds line followed by "X-to-Y map:" blocks
of "dest source length" lines) and prints the lowest location reachable from
the individual seeds (part1) and from the seed ranges (part2).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return errors.InvalidInput("args", err.Error())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flagOverrides(cmd.Flags())
			if len(args) == 1 {
				overrides["input"] = args[0]
			}
			var opts []config.LoaderOption
			opts = append(opts, config.WithEnvPrefix("ALMANAC"), config.WithOverrides(overrides))
			if configFile != "" {
				opts = append(opts, config.WithConfigFile(configFile))
			}

			var cfg AppConfig
			if err := config.Load(appName, &cfg, opts...); err != nil {
				return err
			}
			if cfg.JSON {
				// Errors from here on are reported as JSON too.
				_ = cmd.Flags().Set("json", "true")
			}
			return solve(cmd.Context(), &cfg, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.InvalidInput("flags", err.Error()).WithCause(err)
	})

	f := root.Flags()
	f.StringVarP(&configFile, "config", "c", "", "path to a YAML config file")
	f.StringP("input", "i", "", "almanac input file")
	f.StringP("mode", "m", string(solver.ModeBoth), "parts to solve: points, ranges or both (both fails without output when seeds do not pair up)")
	f.IntP("workers", "w", 1, "workers evaluating seed ranges in parallel")
	f.Bool("strict", false, "require X-to-Y stage labels to chain")
	f.Bool("verify", false, "cross-check part 2 by brute force on small inputs")
	f.Int64("verify-limit", solver.DefaultVerifyLimit, "largest total seed count to brute-force")
	f.Bool("json", false, "print the result and any error as JSON")
	f.String("log-level", "info", "log level: trace, debug, info, warn, error")
	f.String("log-format", "console", "log format: console or json")

	root.AddCommand(newVersionCmd(stdout))
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			info := version.Get()
			if asJSON {
				return json.NewEncoder(stdout).Encode(info)
			}
			_, err := fmt.Fprintln(stdout, info.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

// flagOverrides returns only the flags the user actually set, so defaults
// never mask config files or environment.
func flagOverrides(fs *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := fs.GetBool(f.Name)
			out[key] = v
		case "int":
			v, _ := fs.GetInt(f.Name)
			out[key] = v
		case "int64":
			v, _ := fs.GetInt64(f.Name)
			out[key] = v
		default:
			out[key] = f.Value.String()
		}
	})
	return out
}

func solve(ctx context.Context, cfg *AppConfig, stdout, stderr io.Writer) (err error) {
	cfg.Logging.Writer = stderr
	logger.Init(cfg.Logging)
	logger.RegisterDefaults(logger.ComponentCLI, logger.ComponentSolver)
	log := logger.Get(logger.ComponentCLI)

	build := version.Get()
	log.Debug("starting", logger.Fields(
		"version", build.Short(),
		"release", build.IsRelease(),
		logger.FieldMode, cfg.Mode,
	))

	telemetry, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := telemetry.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", shutdownErr))
		}
	}()

	s, err := solver.New(cfg.SolverOptions(), solver.WithTelemetry(telemetry))
	if err != nil {
		return err
	}
	res, err := s.SolveFile(ctx, cfg.Input)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return json.NewEncoder(stdout).Encode(res)
	}
	for _, line := range res.Lines() {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return errors.Internal(err)
		}
	}
	return nil
}
