// Package auditlog keeps an in-memory journal of ledger operations and can
// render it as CSV for session export.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one operation in the journal.
type Record struct {
	ID        string
	Timestamp time.Time
	Action    string
	Details   string
}

// Header is the CSV header for an exported audit log.
const Header = "id,timestamp,action,details"

const (
	numFields    = 4
	colID        = 0
	colTimestamp = 1
	colAction    = 2
	colDetails   = 3
)

// Log is an append-only operation journal.
type Log struct {
	records []Record
	now     func() time.Time
}

// New creates an empty Log.
func New() *Log {
	return &Log{now: time.Now}
}

// Record appends an entry stamped with a fresh uuid and returns it.
func (l *Log) Record(action, details string) Record {
	r := Record{
		ID:        uuid.NewString(),
		Timestamp: l.now(),
		Action:    action,
		Details:   details,
	}
	l.records = append(l.records, r)
	return r
}

// Records returns a copy of the journal in append order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(r Record) []string {
	row := make([]string, numFields)
	row[colID] = r.ID
	row[colTimestamp] = r.Timestamp.Format(time.RFC3339)
	row[colAction] = r.Action
	row[colDetails] = r.Details
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(record []string) (Record, error) {
	if len(record) != numFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Record{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Record{
		ID:        record[colID],
		Timestamp: ts,
		Action:    record[colAction],
		Details:   record[colDetails],
	}, nil
}

// Write renders the journal as CSV, header first.
func (l *Log) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range l.records {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Save writes the journal to a CSV file.
func (l *Log) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating audit log: %w", err)
	}
	defer f.Close()

	return l.Write(f)
}

// Read parses an exported audit log. Returns nil for a header-only log.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var records []Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
