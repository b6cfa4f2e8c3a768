// Package potatolog provides an in-memory sink for zerolog's JSON output, so
// that the TUI can show recent log entries.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It keeps at most Capacity entries if Capacity is positive.
type MemoryLogReaderWriter struct {
	Capacity int

	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.Capacity > 0 && len(w.log) > w.Capacity {
		w.log = w.log[len(w.log)-w.Capacity:]
	}
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Last returns the most recent entry at or above the given level (e.g.
// "info"), if any.
func (w *MemoryLogReaderWriter) Last(minLevel string) (LogEntry, bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	min := levelRank(minLevel)
	for i := len(w.log) - 1; i >= 0; i-- {
		level, _ := w.log[i]["level"].(string)
		if levelRank(level) >= min {
			return w.log[i], true
		}
	}
	return nil, false
}

func levelRank(level string) int {
	switch level {
	case "trace":
		return 0
	case "debug":
		return 1
	case "info":
		return 2
	case "warn":
		return 3
	case "error":
		return 4
	case "fatal", "panic":
		return 5
	default:
		return 0
	}
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last(minLevel string) (LogEntry, bool)
}
