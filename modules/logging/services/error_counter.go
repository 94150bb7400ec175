package services

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogEntry is a recorded error log line.
type LogEntry struct {
	Time    time.Time
	Level   logrus.Level
	Message string
	Fields  logrus.Fields
}

// ErrorCounter is a logrus hook that counts error level entries and keeps
// the most recent ones in memory.
type ErrorCounter struct {
	mu     sync.RWMutex
	limit  int
	count  int
	recent []LogEntry
}

func NewErrorCounter(limit int) *ErrorCounter {
	if limit <= 0 {
		limit = 50
	}
	return &ErrorCounter{limit: limit}
}

func (c *ErrorCounter) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (c *ErrorCounter) Fire(entry *logrus.Entry) error {
	fields := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		fields[k] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	c.recent = append(c.recent, LogEntry{
		Time:    entry.Time,
		Level:   entry.Level,
		Message: entry.Message,
		Fields:  fields,
	})
	if len(c.recent) > c.limit {
		c.recent = c.recent[len(c.recent)-c.limit:]
	}
	return nil
}

// Count returns the number of errors seen since the last Reset.
func (c *ErrorCounter) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// Recent returns the retained entries, newest first.
func (c *ErrorCounter) Recent() []LogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]LogEntry, len(c.recent))
	for i, e := range c.recent {
		out[len(c.recent)-1-i] = e
	}
	return out
}

func (c *ErrorCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.recent = nil
}
