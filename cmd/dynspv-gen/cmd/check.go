package cmd

import (
	"bytes"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SSimco/dynspv/cppgen"
	"github.com/SSimco/dynspv/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the generated header is up to date",
	Long: `Check that the generated header matches the current grammar.

The header is regenerated into a temporary file, formatted the same way
as a normal run, and byte-compared against the existing output.

Exit codes:
  0 - Header is up to date
  1 - Header is out of date or an error occurred

Examples:
  dynspv-gen check
  dynspv-gen check --no-format`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	header, err := generateHeader(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to regenerate header")
	}

	tmp, err := os.CreateTemp("", "dynspv-check-*.hpp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(header); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write temp header")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp header")
	}

	if cfg.Format {
		if err := cppgen.FormatFileWith(cfg.ClangFormat, tmp.Name()); err != nil {
			return errors.Wrap(err, "failed to format regenerated header")
		}
	}

	existing, err := os.ReadFile(cfg.Output)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s (run dynspv-gen first)", cfg.Output)
	}
	fresh, err := os.ReadFile(tmp.Name())
	if err != nil {
		return errors.Wrap(err, "failed to read regenerated header")
	}

	if bytes.Equal(existing, fresh) {
		pterm.Success.Printf("%s is up to date\n", cfg.Output)
		return nil
	}

	pterm.Warning.Printf("%s is out of date (first difference at line %d)\n",
		cfg.Output, firstDiffLine(existing, fresh))
	return errors.Wrapf(errors.ErrStaleOutput, "%s", cfg.Output)
}

// firstDiffLine returns the 1-based line number of the first
// difference between two byte slices.
func firstDiffLine(a, b []byte) int {
	aLines := bytes.Split(a, []byte("\n"))
	bLines := bytes.Split(b, []byte("\n"))
	n := len(aLines)
	if len(bLines) < n {
		n = len(bLines)
	}
	for i := 0; i < n; i++ {
		if !bytes.Equal(aLines[i], bLines[i]) {
			return i + 1
		}
	}
	return n + 1
}
