package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSkipRows is the number of title/decoration rows above the header
// row in the census A-1 workbooks.
const DefaultSkipRows = 5

var (
	// ErrSourceMissing reports an input file that does not exist or cannot be read.
	ErrSourceMissing = errors.New("source missing")
	// ErrSheetNotFound reports a sheet selection that matches nothing in the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
)

// Options selects the sheet and the leading rows to discard.
type Options struct {
	// SheetName wins over SheetIndex when set.
	SheetName string
	// SheetIndex is 1-based; values <= 0 select the first sheet.
	SheetIndex int
	// SkipRows leading rows are discarded before the header row.
	SkipRows int
}

// DefaultOptions returns the layout of the census workbooks.
func DefaultOptions() Options {
	return Options{SheetIndex: 1, SkipRows: DefaultSkipRows}
}

// Sheet holds the raw contents of one worksheet below the skipped rows.
type Sheet struct {
	File   string
	Name   string
	Header []string
	Rows   [][]string
	// Width is the widest row seen, header included.
	Width int
}

// LoadXLSX reads the selected sheet of an .xlsx workbook. After SkipRows
// rows the next row is returned as Header and all remaining rows as Rows.
// Cell values are read raw so number formats do not leak into the data.
func LoadXLSX(path string, opt Options) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMissing, path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceMissing, path, err)
	}
	defer f.Close()

	name, err := resolveSheet(f, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return split(filepath.Base(path), name, rows, opt.SkipRows), nil
}

func resolveSheet(f *excelize.File, opt Options) (string, error) {
	sheets := f.GetSheetList()
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, opt.SheetName, strings.Join(sheets, ", "))
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", fmt.Errorf("%w: index %d (workbook has %d sheets)", ErrSheetNotFound, idx, len(sheets))
	}
	return sheets[idx-1], nil
}

func split(file, sheet string, rows [][]string, skip int) *Sheet {
	s := &Sheet{File: file, Name: sheet}
	if skip < 0 {
		skip = 0
	}
	if skip >= len(rows) {
		return s
	}
	rows = rows[skip:]
	s.Header = rows[0]
	s.Rows = rows[1:]
	s.Width = len(s.Header)
	for _, r := range s.Rows {
		if len(r) > s.Width {
			s.Width = len(r)
		}
	}
	return s
}
