package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const defaultMaxSize = 2 * 1024 * 1024 // 2MB, one backup kept

// FileWriter is a size-capped log sink. When the file grows past the cap it is
// renamed to <path>.1, replacing any previous backup, and a fresh file is
// opened.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
	path string
	size int64
	cap  int64
}

// Setup sends the standard logger to stdout and a capped file under logPath.
// The directory is created if missing. A file already over the cap is
// truncated rather than rotated so stale runs do not eat the backup slot.
func Setup(logPath string) (*FileWriter, error) {
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	if info, err := os.Stat(logPath); err == nil && info.Size() > defaultMaxSize {
		os.Truncate(logPath, 0)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	fw := &FileWriter{file: f, path: logPath, size: size, cap: defaultMaxSize}

	log.SetOutput(io.MultiWriter(os.Stdout, fw))
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[recommender] ")

	return fw, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	w.size += int64(n)
	if w.size > w.cap {
		w.rotate()
	}
	return n, err
}

func (w *FileWriter) rotate() {
	w.file.Close()
	os.Rename(w.path, w.path+".1")

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return
	}
	w.file = f
	w.size = 0
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
