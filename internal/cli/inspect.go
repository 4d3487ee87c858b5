package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-xlnumfmt/internal/config"
	"github.com/TsubasaBE/go-xlnumfmt/numfmt"
)

type formatReport struct {
	Format   string          `yaml:"format"`
	Date     bool            `yaml:"date"`
	Duration bool            `yaml:"duration"`
	Sections []sectionReport `yaml:"sections"`
}

type sectionReport struct {
	Index     int      `yaml:"index"`
	Type      string   `yaml:"type"`
	Color     string   `yaml:"color,omitempty"`
	Condition string   `yaml:"condition,omitempty"`
	Locale    string   `yaml:"locale,omitempty"`
	Parts     []string `yaml:"parts,flow"`

	// Layout runs of Number, Exponential and Fraction sections, which keep
	// their tokens outside Parts.
	Before      []string `yaml:"before,omitempty,flow"`
	After       []string `yaml:"after,omitempty,flow"`
	Exponent    string   `yaml:"exponent,omitempty"`
	Power       []string `yaml:"power,omitempty,flow"`
	Integer     []string `yaml:"integer,omitempty,flow"`
	Numerator   []string `yaml:"numerator,omitempty,flow"`
	Denominator []string `yaml:"denominator,omitempty,flow"`
}

func newInspectCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <format>",
		Short: "Show the parsed sections of a number format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nf := numfmt.New(args[0])
			if !nf.IsValid() {
				return fmt.Errorf("xlfmt: invalid format %q", args[0])
			}
			r := newFormatReport(nf)
			if cfg.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), r)
			}
			writeFormatReport(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newFormatReport(nf *numfmt.NumberFormat) formatReport {
	r := formatReport{
		Format:   nf.String(),
		Date:     nf.IsDateTimeFormat(),
		Duration: nf.IsTimeSpanFormat(),
	}
	for _, s := range nf.Sections() {
		sr := sectionReport{
			Index: s.Index,
			Type:  s.Type.String(),
			Parts: s.Parts,
		}
		if s.Color != nil {
			sr.Color = s.Color.String()
		}
		if s.Condition != nil {
			sr.Condition = s.Condition.String()
		}
		if s.Locale != nil {
			sr.Locale = s.Locale.String()
		}
		switch {
		case s.Number != nil:
			sr.Before, sr.After = s.Number.BeforeDecimal, s.Number.AfterDecimal
		case s.Exponential != nil:
			e := s.Exponential
			sr.Before, sr.After = e.BeforeDecimal, e.AfterDecimal
			sr.Exponent, sr.Power = e.ExponentialToken, e.Power
		case s.Fraction != nil:
			f := s.Fraction
			sr.Integer, sr.Numerator = f.IntegerPart, f.Numerator
			sr.Denominator = f.Denominator
			if f.DenominatorConstant != 0 {
				sr.Denominator = []string{strconv.Itoa(f.DenominatorConstant)}
			}
		}
		r.Sections = append(r.Sections, sr)
	}
	return r
}

func writeFormatReport(w io.Writer, r formatReport) {
	fmt.Fprintf(w, "format: %s\n", r.Format)
	for _, s := range r.Sections {
		fmt.Fprintf(w, "section %d: %s", s.Index, s.Type)
		if s.Color != "" {
			fmt.Fprintf(w, " color=%s", s.Color)
		}
		if s.Condition != "" {
			fmt.Fprintf(w, " condition=%s", s.Condition)
		}
		if s.Locale != "" {
			fmt.Fprintf(w, " locale=%s", s.Locale)
		}
		writeRun(w, "parts", s.Parts)
		writeRun(w, "before", s.Before)
		writeRun(w, "after", s.After)
		if s.Exponent != "" {
			fmt.Fprintf(w, " exponent=%s", s.Exponent)
		}
		writeRun(w, "power", s.Power)
		writeRun(w, "integer", s.Integer)
		writeRun(w, "numerator", s.Numerator)
		writeRun(w, "denominator", s.Denominator)
		fmt.Fprintln(w)
	}
}

func writeRun(w io.Writer, name string, run []string) {
	if len(run) > 0 {
		fmt.Fprintf(w, " %s=%s", name, strings.Join(quoteAll(run), " "))
	}
}

func quoteAll(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = fmt.Sprintf("%q", p)
	}
	return out
}
