// Package spreadsheet parses member bulk-import workbooks. The expected
// layout is a header row followed by one member per row: surname, given
// names, national ID, birth date.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gestiontickets/internal/shared/constants"
	apperrors "gestiontickets/internal/shared/errors"
)

// ImportRow is one parsed member row, carrying its 1-based row number for
// error reporting.
type ImportRow struct {
	Row        int
	Surname    string
	GivenNames string
	NationalID string
	BirthDate  time.Time
}

var birthDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"01-02-06",
	"1/2/06 15:04",
	"2006-01-02 15:04:05",
}

// Read parses the first sheet of the workbook. Data starts at row 2 and ends
// at the first row whose surname cell is empty; rows past that point are
// ignored, matching how hand-maintained sheets trail off.
func Read(r io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("file is not a valid xlsx workbook", err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var out []ImportRow
	for i := constants.ImportFirstDataRow; i <= len(rows); i++ {
		cells := rows[i-1]

		surname := cellAt(cells, 0)
		if surname == "" {
			break
		}

		if len(out) >= constants.MaxImportRows {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("workbook exceeds the maximum of %d rows", constants.MaxImportRows))
		}

		givenNames := cellAt(cells, 1)
		if givenNames == "" {
			return nil, apperrors.NewFormatError(i, "given names are missing")
		}

		nationalID := cellAt(cells, 2)
		if nationalID == "" {
			return nil, apperrors.NewFormatError(i, "national ID is missing")
		}

		rawDate := cellAt(cells, 3)
		if rawDate == "" {
			return nil, apperrors.NewFormatError(i, "birth date is missing")
		}
		birthDate, err := parseBirthDate(rawDate)
		if err != nil {
			return nil, apperrors.NewFormatError(i, fmt.Sprintf("invalid birth date %q", rawDate))
		}

		out = append(out, ImportRow{
			Row:        i,
			Surname:    surname,
			GivenNames: givenNames,
			NationalID: nationalID,
			BirthDate:  birthDate,
		})
	}

	return out, nil
}

func cellAt(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func parseBirthDate(raw string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
