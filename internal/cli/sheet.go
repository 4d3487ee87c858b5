package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-xlnumfmt/internal/config"
	"github.com/TsubasaBE/go-xlnumfmt/internal/sheet"
)

func newSheetCommand(cfg *config.Config) *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "sheet <file.xlsx>",
		Short: "Print every cell of a workbook as Excel displays it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupCulture(cfg)
			if err != nil {
				return err
			}
			wb, err := sheet.Open(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()

			names := wb.SheetNames()
			if only != "" {
				names = []string{only}
			}

			var cells []sheet.Cell
			for _, name := range names {
				sc, err := wb.Cells(name, c)
				if err != nil {
					return err
				}
				cells = append(cells, sc...)
			}

			out := cmd.OutOrStdout()
			if cfg.Output == config.OutputYAML {
				return writeYAML(out, cells)
			}
			for _, cell := range cells {
				fmt.Fprintf(out, "%s!%s\t%s\n", cell.Sheet, cell.Ref, cell.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "sheet", "", "only print this worksheet")
	return cmd
}
