package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// FileRecorder writes each run's listing to <Dir>/<YYYY-MM-DD>.txt.
// A second run on the same day replaces the file.
type FileRecorder struct {
	Dir    string
	Period int
}

// NewFileRecorder creates the output directory if needed.
func NewFileRecorder(dir string, period int) (*FileRecorder, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileRecorder{Dir: dir, Period: period}, nil
}

// Path returns the file written for date.
func (r *FileRecorder) Path(date time.Time) string {
	return filepath.Join(r.Dir, date.Format("2006-01-02")+".txt")
}

func (r *FileRecorder) Record(date time.Time, symbols []string) error {
	path := r.Path(date)
	if err := os.WriteFile(path, []byte(FormatReport(symbols, r.Period)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("path", path).Int("matches", len(symbols)).Msg("report written")
	return nil
}

func (r *FileRecorder) Close() error { return nil }
