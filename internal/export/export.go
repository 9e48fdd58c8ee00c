package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spec-kit/buddy-service/internal/domain"
)

// Format identifies an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

const (
	csvBOM       = "\uFEFF"
	csvSeparator = ";"
	csvNewline   = "\r\n"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"Name 1", "E-Mail 1", "Abteilung 1", "Name 2", "E-Mail 2", "Abteilung 2"}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// Filename builds the download name for an export created at t.
func Filename(f Format, t time.Time) string {
	return fmt.Sprintf("buddy-matches-%s.%s", t.UTC().Format("2006-01-02"), f)
}

// ParseFormat validates a user supplied export format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown export format %q", value)
	}
}

// Write encodes results in format f.
func Write(w io.Writer, f Format, results []domain.MatchResult) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatCSV:
		return WriteCSV(w, results)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteJSON writes the result list verbatim, indented by two spaces.
func WriteJSON(w io.Writer, results []domain.MatchResult) error {
	if results == nil {
		results = []domain.MatchResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// ReadJSON parses a list written by WriteJSON.
func ReadJSON(r io.Reader) ([]domain.MatchResult, error) {
	var results []domain.MatchResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode match results: %w", err)
	}
	return results, nil
}

// WriteCSV writes a spreadsheet friendly export: UTF-8 BOM, semicolon
// separated, every cell quoted, CRLF between rows and no trailing newline.
func WriteCSV(w io.Writer, results []domain.MatchResult) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(csvBOM); err != nil {
		return err
	}
	if err := writeCSVRow(bw, CSVHeader); err != nil {
		return err
	}
	for _, m := range results {
		if _, err := bw.WriteString(csvNewline); err != nil {
			return err
		}
		if err := writeCSVRow(bw, csvRecord(m)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func csvRecord(m domain.MatchResult) []string {
	record := []string{m.Person1.Name, m.Person1.Email, m.Person1.Department, "", "", ""}
	if m.Person2 != nil {
		record[3] = m.Person2.Name
		record[4] = m.Person2.Email
		record[5] = m.Person2.Department
	}
	return record
}

func writeCSVRow(w *bufio.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := w.WriteString(csvSeparator); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return nil
}
