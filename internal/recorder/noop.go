package recorder

import "time"

// NoopRecorder is a no-op implementation used when no output is wanted.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ time.Time, _ []string) error { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
