package logging

import (
	"os"
	"sync"
)

// rollingWriter appends to a single log file and, when the file would grow
// past the configured cap, renames it to <path>.old and starts a fresh one.
// Exactly one prior generation is retained.
type rollingWriter struct {
	path string
	cap  int64

	mu   sync.Mutex
	file *os.File
	n    int64
}

func newRollingWriter(path string, maxMB int) (*rollingWriter, error) {
	if maxMB <= 0 {
		maxMB = 32
	}
	w := &rollingWriter{path: path, cap: int64(maxMB) << 20}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *rollingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	if w.n+int64(len(p)) > w.cap {
		if err := w.roll(); err != nil {
			return 0, err
		}
	}
	n, err := w.file.Write(p)
	w.n += int64(n)
	return n, err
}

func (w *rollingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

func (w *rollingWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	w.file = f
	w.n = info.Size()
	return nil
}

func (w *rollingWriter) roll() error {
	if w.file != nil {
		_ = w.file.Close()
		w.file = nil
	}
	if err := os.Rename(w.path, w.path+".old"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return w.open()
}
