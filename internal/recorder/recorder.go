package recorder

import "time"

// Recorder persists the symbols that passed a screening run.
type Recorder interface {
	Record(date time.Time, symbols []string) error
	Close() error
}
