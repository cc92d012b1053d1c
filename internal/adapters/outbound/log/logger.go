package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency. When LogFile is set,
// every line is mirrored to that file.
type InitLogger struct {
	LogFile string `config:"LOG_FILE" default:"-"`
	file    *os.File
}

// Initialize registers the logger in the dependency container.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	var out io.Writer = os.Stdout
	if il.LogFile != "" && il.LogFile != "-" {
		f, err := os.OpenFile(il.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return ctx, fmt.Errorf("open log file: %w", err)
		}
		il.file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	depend.Register(log.New(out, "", log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}

// Close closes the log file, if any.
func (il *InitLogger) Close() {
	if il.file != nil {
		_ = il.file.Close()
	}
}
