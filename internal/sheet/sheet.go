// Package sheet reads .xlsx workbooks with excelize and renders every
// non-empty cell through the cell's number format, the way Excel displays
// the sheet.
package sheet

import (
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/TsubasaBE/go-xlnumfmt"
	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/styles"
)

// Cell is one rendered cell.
type Cell struct {
	Sheet string `yaml:"sheet"`
	Ref   string `yaml:"ref"`
	// Raw is the value stored in the file, before formatting.
	Raw string `yaml:"raw"`
	// Format is the effective number format of the cell's style.
	Format string `yaml:"format"`
	IsDate bool   `yaml:"is_date,omitempty"`
	Text   string `yaml:"text"`
}

// Workbook is an open .xlsx file plus its number-format style table.
type Workbook struct {
	file     *excelize.File
	styles   styles.StyleTable
	date1904 bool
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %q: %w", path, err)
	}
	wb, err := newWorkbook(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return wb, nil
}

func newWorkbook(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{file: f}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("sheet: workbook properties: %w", err)
	}
	if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}

	// excelize reports an error for the first index past the cellXfs table.
	for i := 0; ; i++ {
		st, err := f.GetStyle(i)
		if err != nil {
			break
		}
		xf := styles.XFStyle{NumFmtID: st.NumFmt}
		if st.CustomNumFmt != nil {
			xf.FormatStr = *st.CustomNumFmt
		}
		wb.styles = append(wb.styles, xf)
	}
	log.WithFields(log.Fields{
		"styles":   len(wb.styles),
		"date1904": wb.date1904,
	}).Debug("sheet: workbook loaded")
	return wb, nil
}

// Close releases the underlying file.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// Date1904 reports whether the workbook uses the 1904 date system.
func (wb *Workbook) Date1904() bool { return wb.date1904 }

// Styles returns the number-format part of the workbook's cell formats.
func (wb *Workbook) Styles() styles.StyleTable { return wb.styles }

// SheetNames returns the worksheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	return wb.file.GetSheetList()
}

// Cells renders every non-empty cell of the named sheet in row-major order.
func (wb *Workbook) Cells(name string, c *culture.Culture) ([]Cell, error) {
	rows, err := wb.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet: read rows of %q: %w", name, err)
	}

	var cells []Cell
	for r, row := range rows {
		for col, raw := range row {
			if raw == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(col+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("sheet: %s row %d col %d: %w", name, r+1, col+1, err)
			}
			cell, err := wb.render(name, ref, raw, c)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

func (wb *Workbook) render(name, ref, raw string, c *culture.Culture) (Cell, error) {
	s, err := wb.file.GetCellStyle(name, ref)
	if err != nil {
		return Cell{}, fmt.Errorf("sheet: style of %s!%s: %w", name, ref, err)
	}
	typ, err := wb.file.GetCellType(name, ref)
	if err != nil {
		return Cell{}, fmt.Errorf("sheet: type of %s!%s: %w", name, ref, err)
	}

	var xf styles.XFStyle
	if s >= 0 && s < len(wb.styles) {
		xf = wb.styles[s]
	}
	return Cell{
		Sheet:  name,
		Ref:    ref,
		Raw:    raw,
		Format: wb.styles.FmtStr(s),
		IsDate: wb.styles.IsDate(s),
		Text:   xlnumfmt.FormatValue(cellValue(typ, raw), xf.NumFmtID, xf.FormatStr, c, wb.date1904),
	}, nil
}

// cellValue converts a raw cell value into the Go value Excel would format.
func cellValue(typ excelize.CellType, raw string) any {
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return raw
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
			return t
		}
		return raw
	}
	// Numbers, formula results and untyped cells.
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
