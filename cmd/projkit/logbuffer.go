// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"io"
	"sync"
)

// logBuffer holds log output until the command has finished, so a failing
// command's message is always the first line on stderr.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
	out io.Writer
}

func newLogBuffer(out io.Writer) *logBuffer {
	return &logBuffer{out: out}
}

// Write implements io.Writer.
func (l *logBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

// Flush writes the held output and empties the buffer.
func (l *logBuffer) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.buf.WriteTo(l.out)
	return err
}
