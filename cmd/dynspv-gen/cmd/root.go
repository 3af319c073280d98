// Package cmd implements the dynspv-gen command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SSimco/dynspv/config"
	"github.com/SSimco/dynspv/cppgen"
	"github.com/SSimco/dynspv/errors"
	"github.com/SSimco/dynspv/grammar"
	"github.com/SSimco/dynspv/logger"
)

var (
	flagConfig   string
	flagGrammar  string
	flagTemplate string
	flagOutput   string
	flagNoFormat bool
	flagJSONLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "dynspv-gen",
	Short: "Generate the dynspv C++ builder header from the SPIR-V grammar",
	Long: `Generate the dynspv C++ builder header from the SPIR-V grammar.

dynspv-gen reads the machine-readable SPIR-V grammar
(spirv.core.grammar.json) and emits one strongly-typed builder method
per instruction plus one spv::Id alias per Id operand kind, substituted
into the dynspv header template. The result is formatted with
clang-format.

It handles:
  - Operand kinds -> C++ parameter types (recursively for composites)
  - Optional (?) and repeated (*) operands as std::optional / std::vector
  - Irregular operand names -> valid, unique parameter identifiers
  - Fixed word counts plus runtime word counting for variable operands

Examples:
  dynspv-gen                                 # grammar and output from dynspv.toml / defaults
  dynspv-gen -g spirv.core.grammar.json      # explicit grammar file
  dynspv-gen -o include/dynspv.hpp           # explicit output path
  dynspv-gen --no-format                     # skip clang-format
  dynspv-gen check                           # verify the header is up to date`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		if err := logger.Initialize(flagJSONLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default: ./dynspv.toml when present)")
	rootCmd.PersistentFlags().StringVarP(&flagGrammar, "grammar", "g", "", "Path to spirv.core.grammar.json")
	rootCmd.PersistentFlags().StringVarP(&flagTemplate, "template", "t", "", "Header template path (default: embedded template)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Generated header path")
	rootCmd.PersistentFlags().BoolVar(&flagNoFormat, "no-format", false, "Skip the clang-format step")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the TOML config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFromFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flagGrammar != "" {
		cfg.Grammar = flagGrammar
	}
	if flagTemplate != "" {
		cfg.Template = flagTemplate
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagNoFormat {
		cfg.Format = false
	}
	return cfg, nil
}

// generateHeader loads the grammar and produces the full header text.
func generateHeader(cfg *config.Config) (string, error) {
	doc, err := grammar.LoadFile(cfg.Grammar)
	if err != nil {
		return "", err
	}
	logger.Infow("grammar loaded",
		"path", cfg.Grammar,
		"operand_kinds", len(doc.OperandKinds),
		"instructions", len(doc.Instructions))

	template := cppgen.DefaultTemplate
	if cfg.Template != "" {
		raw, err := os.ReadFile(cfg.Template)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read template %s", cfg.Template)
		}
		template = string(raw)
	}

	gen := cppgen.NewGenerator(cfg.ReservedWords...)
	return gen.GenerateHeader(doc, template)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	header, err := generateHeader(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to generate header")
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}

	// Write and format a temp file first so a clang-format failure
	// never leaves a half-finished header at the output path.
	tmpPath := cfg.Output + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(header), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmpPath)
	}
	if cfg.Format {
		if err := cppgen.FormatFileWith(cfg.ClangFormat, tmpPath); err != nil {
			os.Remove(tmpPath)
			return errors.Wrap(err, "failed to format generated header")
		}
	}
	if err := os.Rename(tmpPath, cfg.Output); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to move generated header to %s", cfg.Output)
	}

	pterm.Success.Printf("Generated %s\n", cfg.Output)
	return nil
}
