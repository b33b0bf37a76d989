package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/seiskit/sgynorm/internal/cliconfig"
	"github.com/seiskit/sgynorm/pkg/log"
	"github.com/seiskit/sgynorm/pkg/sgynorm"
	"github.com/seiskit/sgynorm/plugins/dirwatcher"
)

const helpDescription = `
Normalize a folder of SEG-Y seismic files by one shared global maximum.

sgynorm reads every matching file under the input folder twice: a scan pass
computes the largest absolute amplitude across the whole corpus, then a scale
pass divides every sample by that maximum and writes each file to the same
relative path under the output folder. Relative amplitudes are preserved both
within and across files.

Configure via flags, SGYNORM_* environment variables, or a TOML config file
(flags win over environment, environment wins over file).
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  sgynorm --input /surveys/raw --output /surveys/normalized
  sgynorm -i ./shots -o ./shots-norm --on-error skip --watch
  sgynorm --config $HOME/.sgynorm/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newLogger(level string) *log.ZerologLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return log.NewZerologLogger(zerolog.New(output).Level(lvl).With().Timestamp().Logger())
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "sgynorm",
		Short:   "Normalize a SEG-Y corpus by its global maximum amplitude",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.sgynorm/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg.LogLevel)
			logger.Info("configuration",
				log.String("input", cfg.InputDir),
				log.String("output", cfg.OutputDir),
				log.String("extension", cfg.Extension),
				log.String("on_error", cfg.OnError),
				log.String("zero_max", cfg.ZeroMax),
				log.Bool("watch", cfg.Watch))

			runner, err := sgynorm.New(sgynorm.Config{
				InputDir:  cfg.InputDir,
				OutputDir: cfg.OutputDir,
				Extension: cfg.Extension,
				OnError:   errorPolicy(cfg.OnError),
				ZeroMax:   zeroMaxPolicy(cfg.ZeroMax),
				Report:    cfg.Report,
			}, sgynorm.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("create runner: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info("received signal, stopping...")
				cancel()
			}()

			if _, err := runner.Run(ctx); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			// Watch mode: re-run the full batch whenever the input changes.
			watcher := dirwatcher.New(cfg.InputDir, cfg.Extension,
				func(ctx context.Context) error {
					_, err := runner.Run(ctx)
					return err
				},
				logger, dirwatcher.DefaultConfig())
			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			<-ctx.Done()
			return watcher.Stop()
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.sgynorm/config.toml)")
	root.Flags().StringVarP(&cfg.InputDir, "input", "i", cfg.InputDir, "input folder scanned recursively for trace files")
	root.Flags().StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "output folder for the mirrored normalized tree")
	root.Flags().StringVar(&cfg.Extension, "extension", cfg.Extension, "trace-file extension to match (case-insensitive)")
	root.Flags().StringVar(&cfg.OnError, "on-error", cfg.OnError, "unreadable-file policy: abort or skip")
	root.Flags().StringVar(&cfg.ZeroMax, "zero-max", cfg.ZeroMax, "all-zero-corpus policy: fail or copy")
	root.Flags().BoolVar(&cfg.Report, "report", cfg.Report, "write norm-report.json under the output folder")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and re-normalize when the input changes")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		newLogger(cfg.LogLevel).Error("sgynorm", log.Err(err))
		os.Exit(1)
	}
}

func errorPolicy(s string) sgynorm.ErrorPolicy {
	if s == cliconfig.OnErrorSkip {
		return sgynorm.ErrorSkip
	}
	return sgynorm.ErrorAbort
}

func zeroMaxPolicy(s string) sgynorm.ZeroMaxPolicy {
	if s == cliconfig.ZeroMaxCopy {
		return sgynorm.ZeroMaxCopy
	}
	return sgynorm.ZeroMaxFail
}
