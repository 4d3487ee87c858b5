package cli

import (
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-xlnumfmt/internal/config"
	"github.com/TsubasaBE/go-xlnumfmt/numfmt"
)

// Value kinds accepted by --as.
const (
	asAuto     = "auto"
	asNumber   = "number"
	asText     = "text"
	asDate     = "date"
	asDuration = "duration"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type renderResult struct {
	Value string `yaml:"value"`
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
}

func newRenderCommand(cfg *config.Config) *cobra.Command {
	as := asAuto
	cmd := &cobra.Command{
		Use:   "render <format> <value>...",
		Short: "Format values with a number format",
		Long: `Format each value with the given number format and print one result per line.

Values are read as numbers when they parse as one, then as dates
(2006-01-02, 2006-01-02 15:04:05 or RFC 3339), and otherwise as text.
Use --as to force a kind; --as duration accepts Go durations such as 36h15m.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupCulture(cfg)
			if err != nil {
				return err
			}
			nf := numfmt.New(args[0])
			if !nf.IsValid() {
				log.WithField("format", args[0]).Warn("xlfmt: invalid format, values use plain conversion")
			}

			results := make([]renderResult, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := parseValue(arg, as)
				if err != nil {
					return err
				}
				results = append(results, renderResult{
					Value: arg,
					Kind:  v.Kind().String(),
					Text:  nf.Format(v, c, cfg.Date1904),
				})
			}

			out := cmd.OutOrStdout()
			if cfg.Output == config.OutputYAML {
				return writeYAML(out, results)
			}
			for _, r := range results {
				fmt.Fprintln(out, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", as, "value kind: auto, number, text, date or duration")
	return cmd
}

// parseValue reads a command-line argument as the requested kind of value.
func parseValue(s, as string) (numfmt.Value, error) {
	switch as {
	case asNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return numfmt.Value{}, fmt.Errorf("xlfmt: %q is not a number", s)
		}
		return numfmt.Number(f), nil

	case asText:
		return numfmt.Text(s), nil

	case asDate:
		t, ok := parseDate(s)
		if !ok {
			return numfmt.Value{}, fmt.Errorf("xlfmt: %q is not a date", s)
		}
		return numfmt.DateTime(t), nil

	case asDuration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return numfmt.Value{}, fmt.Errorf("xlfmt: %q is not a duration: %w", s, err)
		}
		return numfmt.Duration(d), nil

	case asAuto:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return numfmt.Number(f), nil
		}
		if t, ok := parseDate(s); ok {
			return numfmt.DateTime(t), nil
		}
		return numfmt.Text(s), nil
	}
	return numfmt.Value{}, fmt.Errorf("xlfmt: unknown value kind %q", as)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
