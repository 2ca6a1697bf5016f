package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/fang"
	"github.com/iancoleman/strcase"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vito/alspec/pkg/alspec"
)

// Config holds the application configuration
type Config struct {
	Debug   bool
	Project string
}

// ProjectConfig represents an alspec.toml project configuration file.
type ProjectConfig struct {
	// Specs lists spec document paths or glob patterns, relative to the
	// config file.
	Specs []string `toml:"specs"`
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "alspec",
		Short: "Work with many-sorted algebraic specification documents",
		Long: `alspec validates, formats, and re-exports algebraic specification
documents in the tagged JSON interchange format. A document decodes
through the same checked constructors used to build specifications in
Go, so validation covers well-sortedness, closedness, and generated-sort
consistency, not just JSON shape.`,
		Example: `  # Validate spec documents
  alspec validate stack.json queue.json

  # Validate everything listed in alspec.toml
  alspec validate

  # Pretty-print a spec document in CASL-style syntax
  alspec fmt stack.json

  # Re-encode documents canonically into a directory
  alspec export --out dist/ stack.json`,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.Project, "project", "alspec.toml", "Project configuration file")

	rootCmd.AddCommand(validateCmd(&cfg))
	rootCmd.AddCommand(fmtCmd(&cfg))
	rootCmd.AddCommand(exportCmd(&cfg))

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveInputs returns the explicit args, or the project config's spec
// list when no args are given.
func resolveInputs(cfg *Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	project, err := loadProjectConfig(cfg.Project)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(cfg.Project)
	var inputs []string
	for _, pattern := range project.Specs {
		matches, err := filepath.Glob(filepath.Join(base, pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "bad pattern %q", pattern)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no spec documents: pass paths or list them in %s", cfg.Project)
	}
	return inputs, nil
}

// loadProjectConfig loads an alspec.toml file from the given path.
func loadProjectConfig(path string) (*ProjectConfig, error) {
	var config ProjectConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &config, nil
}

func loadSpec(path string) (*alspec.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sp, err := alspec.UnmarshalSpec(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return sp, nil
}

func validateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files...]",
		Short: "Decode and validate spec documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			inputs, err := resolveInputs(cfg, args)
			if err != nil {
				return err
			}

			eg, _ := errgroup.WithContext(cmd.Context())
			for _, path := range inputs {
				eg.Go(func() error {
					sp, err := loadSpec(path)
					if err != nil {
						return err
					}
					slog.Info("valid", "path", path, "spec", sp.Name, "axioms", len(sp.Axioms))
					if cfg.Debug {
						slog.Debug("decoded spec", "dump", pretty.Sprint(sp))
					}
					return nil
				})
			}
			return eg.Wait()
		},
	}
}

func fmtCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Pretty-print spec documents in CASL-style syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			inputs, err := resolveInputs(cfg, args)
			if err != nil {
				return err
			}
			for _, path := range inputs {
				sp, err := loadSpec(path)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), alspec.FormatSpec(sp))
			}
			return nil
		},
	}
}

func exportCmd(cfg *Config) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export [files...]",
		Short: "Re-encode spec documents canonically",
		Long: `Export decodes each document and writes it back out in canonical
form (stable field order, two-space indentation) under the output
directory, named after the specification: a spec named PhoneBook is
written to phone-book.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			inputs, err := resolveInputs(cfg, args)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, path := range inputs {
				sp, err := loadSpec(path)
				if err != nil {
					return err
				}
				data, err := alspec.MarshalSpec(sp)
				if err != nil {
					return errors.Wrapf(err, "%s", path)
				}
				out := filepath.Join(outDir, strcase.ToKebab(sp.Name)+".json")
				if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
					return err
				}
				slog.Info("exported", "from", path, "to", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	return cmd
}
