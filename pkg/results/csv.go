// Package results lands enumeration output: a streaming CSV sink for
// the per-machine rows and a per-size summary exported as a dataframe
// (CSV) and as parquet.
package results

import (
	"bufio"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/akhildatla/beaver/pkg/enum"
)

// Header is the exact results header row.
var Header = []string{"state_count", "symbol_count", "machine_id", "steps_to_halt", "halting_probability"}

// CSVWriter streams one CSV row per record to a file, in the order the
// records arrive. Rows are buffered; Close flushes and closes the file.
type CSVWriter struct {
	f   *os.File
	buf *bufio.Writer
	w   *csv.Writer
}

// NewCSVWriter creates the results file, truncating any previous one,
// and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	w := csv.NewWriter(buf)
	cw := &CSVWriter{f: f, buf: buf, w: w}
	if err := w.Write(Header); err != nil {
		f.Close()
		return nil, err
	}
	return cw, nil
}

// WriteRecord appends one data row. It implements enum.Sink.
func (cw *CSVWriter) WriteRecord(r enum.Record) error {
	return cw.w.Write([]string{
		strconv.Itoa(r.States),
		strconv.Itoa(r.Symbols),
		strconv.FormatUint(r.MachineID, 10),
		strconv.Itoa(r.Steps),
		formatProbability(r.HaltingProbability),
	})
}

// Close flushes buffered rows and closes the file. Write errors
// surface here if they did not already.
func (cw *CSVWriter) Close() error {
	cw.w.Flush()
	if err := cw.w.Error(); err != nil {
		cw.f.Close()
		return err
	}
	if err := cw.buf.Flush(); err != nil {
		cw.f.Close()
		return err
	}
	return cw.f.Close()
}

// formatProbability renders a percentage with six significant digits,
// shortest form (100, 87.5, 35.9375, 66.6667).
func formatProbability(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
