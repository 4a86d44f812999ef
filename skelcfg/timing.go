// Package skelcfg: the `timings` option — a CSV row per run, stamped
// with a uuid so rows appended across runs stay distinguishable.

package skelcfg

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// TimingRow is one CSV record describing a single run: the input, its
// size, and the wall-clock time the whole computation took. One total,
// not a per-stage breakdown — the runner times the pipeline as a unit.
type TimingRow struct {
	RunID       string
	FileName    string
	VertexCount int
	TotalMicros int64
}

// NewTimingRow stamps a TimingRow with a fresh run id.
func NewTimingRow(fileName string, vertexCount int) TimingRow {
	return TimingRow{RunID: uuid.NewString(), FileName: fileName, VertexCount: vertexCount}
}

var timingHeader = []string{"run_id", "file_name", "vertex_count", "total_us"}

// AppendTimingRow appends row to the CSV file at path, writing the header
// first if the file is new.
func AppendTimingRow(path string, row TimingRow) error {
	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("skelcfg: open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(timingHeader); err != nil {
			return err
		}
	}
	record := []string{
		row.RunID,
		row.FileName,
		fmt.Sprintf("%d", row.VertexCount),
		fmt.Sprintf("%d", row.TotalMicros),
	}
	if err := w.Write(record); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Micros converts a duration to the integer-microsecond unit TimingRow
// stores its total duration in.
func Micros(d time.Duration) int64 { return d.Microseconds() }
