// Package cli implements the xlfmt command tree.
package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TsubasaBE/go-xlnumfmt"
	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/config"
	"github.com/TsubasaBE/go-xlnumfmt/numfmt"
)

// NewRootCommand builds the xlfmt command.  Flags start from the values in
// cfg and write back into it.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "xlfmt",
		Short: "Render values with Excel number formats",
		Long: `Render values the way Excel displays them under a number format.

Commands:
  render   Format one or more values with a format string.
  inspect  Show how a format string is parsed into sections.
  sheet    Print every cell of an .xlsx workbook as Excel displays it.

Settings come from XLFMT_* environment variables; flags override them.

Examples:
  xlfmt render "#,##0.00;[Red](#,##0.00)" -- -1234.5
  xlfmt render --culture de-DE "dddd d. mmmm yyyy" 2024-03-16
  xlfmt inspect --output yaml "[>=100]0;0.00"
  xlfmt sheet report.xlsx`,
		Version:      xlnumfmt.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			setupLogging(cfg, cmd.ErrOrStderr())
			xlnumfmt.SetCacheSize(cfg.CacheSize)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Culture, "culture", cfg.Culture, "culture used for separators, month and day names")
	flags.BoolVar(&cfg.Date1904, "date1904", cfg.Date1904, "interpret serial numbers in the 1904 date system")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format: text or yaml")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug shows format fallbacks)")

	root.AddCommand(
		newRenderCommand(cfg),
		newInspectCommand(cfg),
		newSheetCommand(cfg),
	)
	return root
}

// setupLogging configures the standard logrus logger and hands it to numfmt.
func setupLogging(cfg *config.Config, w io.Writer) {
	if cfg.LogFormat == config.LogFormatJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	log.SetOutput(w)
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	numfmt.SetLogger(log.StandardLogger())
}

// lookupCulture resolves the configured culture.  Validate has already
// checked the name, but flags may have changed it since.
func lookupCulture(cfg *config.Config) (*culture.Culture, error) {
	c, err := culture.Lookup(cfg.Culture)
	if err != nil {
		return nil, fmt.Errorf("xlfmt: %w", err)
	}
	return c, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("xlfmt: encode yaml: %w", err)
	}
	return enc.Close()
}
