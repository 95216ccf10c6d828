package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter pushes each write through buffered writers so interactive replies appear before the next prompt.
type FlushingWriter struct {
	target io.Writer
	mutex  sync.Mutex
}

// NewFlushingWriter wraps target. Wrapping an existing FlushingWriter returns it unchanged.
func NewFlushingWriter(target io.Writer) io.Writer {
	if target == nil {
		return nil
	}
	if existing, isFlushing := target.(*FlushingWriter); isFlushing {
		return existing
	}
	return &FlushingWriter{target: target}
}

// Write forwards data and flushes the target when it supports Flush.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.target == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	written, writeError := writer.target.Write(data)
	if writeError != nil {
		return written, writeError
	}
	if bufferedTarget, canFlush := writer.target.(flusher); canFlush {
		if flushError := bufferedTarget.Flush(); flushError != nil {
			return written, flushError
		}
	}
	return written, nil
}
