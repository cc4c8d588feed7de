package complaint

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// csvStore appends complaints to a local CSV file: a header row, then one
// row per complaint with complaint_id, timestamp and the schema fields in
// collection order.
type csvStore struct {
	mu     sync.Mutex
	path   string
	schema Schema
}

// NewCSVStore opens (or creates with a header row) the CSV file at path.
func NewCSVStore(path string, schema Schema) (Store, error) {
	s := &csvStore{path: path, schema: schema}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeHeader(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat csv file: %w", err)
	}

	return s, nil
}

func (s *csvStore) writeHeader() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	header := append([]string{"complaint_id", "timestamp"}, s.schema.Keys()...)
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *csvStore) Append(_ context.Context, c *PersistedComplaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	row := make([]string, 0, len(s.schema)+2)
	row = append(row, c.ComplaintID, c.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, field := range s.schema {
		row = append(row, c.Fields[field.Key])
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *csvStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return 0, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read csv file: %w", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}
	return len(rows) - 1, nil // minus header
}
