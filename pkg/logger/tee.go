package logger

import (
	"io"
	"os"
)

type teeWriter struct {
	file io.Writer
}

func newTeeWriter(file io.Writer) *teeWriter {
	return &teeWriter{file: file}
}

// Write sends the line both to the log file and to stdout. A failed stdout
// write is ignored; the file is the durable copy.
func (w *teeWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p) //nolint:errcheck
	return w.file.Write(p)
}
