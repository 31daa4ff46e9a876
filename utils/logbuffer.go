package utils

import (
	"sync"

	"islamicdashboard/models"

	"go.uber.org/zap/zapcore"
)

// LogBuffer is a bounded, concurrency-safe ring of recent log entries.
type LogBuffer struct {
	mu      sync.Mutex
	entries []models.LogEntry
	size    int
	start   int
	nextID  int
}

func NewLogBuffer(size int) *LogBuffer {
	if size <= 0 {
		size = 1
	}
	return &LogBuffer{size: size, entries: make([]models.LogEntry, 0, size)}
}

// Hook is a zap hook that records every emitted entry.
func (b *LogBuffer) Hook(entry zapcore.Entry) error {
	source := entry.LoggerName
	if source == "" {
		source = "server"
	}
	b.Add(models.LogEntry{
		Level:     levelName(entry.Level),
		Message:   entry.Message,
		Source:    source,
		Timestamp: entry.Time,
	})
	return nil
}

// Add appends an entry, evicting the oldest one when full.
func (b *LogBuffer) Add(e models.LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	e.ID = b.nextID
	if len(b.entries) < b.size {
		b.entries = append(b.entries, e)
		return
	}
	b.entries[b.start] = e
	b.start = (b.start + 1) % b.size
}

// Entries returns a copy of the buffered entries, oldest first.
func (b *LogBuffer) Entries() []models.LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.LogEntry, 0, len(b.entries))
	out = append(out, b.entries[b.start:]...)
	out = append(out, b.entries[:b.start]...)
	return out
}

func levelName(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return models.LogLevelDebug
	case zapcore.InfoLevel:
		return models.LogLevelInfo
	case zapcore.WarnLevel:
		return models.LogLevelWarning
	default:
		return models.LogLevelError
	}
}
