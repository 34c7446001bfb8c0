package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mud-r1/constants"
)

// Options configures the diagnostics log
// The terminal belongs to the UI, so output only ever goes to a file or nowhere
type Options struct {
	Enabled bool
	Dir     string
	File    string
	Level   string // logrus level name
	Format  string // "text" or "json"
	MaxSize int64  // rotate on open when the file is larger, bytes
}

// DefaultOptions logs at info level as text under logs/
func DefaultOptions() Options {
	return Options{
		Enabled: true,
		Dir:     constants.LogDir,
		File:    constants.LogFileName,
		Level:   "info",
		Format:  "text",
		MaxSize: constants.MaxLogSize,
	}
}

// Validate checks the level and format names
func (o Options) Validate() error {
	if _, err := logrus.ParseLevel(o.Level); err != nil {
		return err
	}
	switch strings.ToLower(o.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", o.Format)
	}
	if o.Enabled && o.File == "" {
		return fmt.Errorf("log file name is empty")
	}
	return nil
}

// Logger is the per-run log entry carrying the session id field
type Logger struct {
	*logrus.Entry
	SessionID string
	file      *os.File
}

// New opens the log file, rotating an oversized previous file, and tags every line with a fresh session id
func New(opts Options) (*Logger, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(opts.Level)

	base := logrus.New()
	base.SetLevel(level)
	if strings.ToLower(opts.Format) == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			DisableQuote:     false,
			QuoteEmptyFields: true,
		})
	}

	l := &Logger{SessionID: uuid.NewString()}

	if !opts.Enabled {
		base.SetOutput(io.Discard)
		l.Entry = base.WithField("session", l.SessionID)
		return l, nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(opts.Dir, opts.File)
	if err := rotate(path, opts.MaxSize, time.Now()); err != nil {
		return nil, fmt.Errorf("rotate log: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	base.SetOutput(f)

	l.file = f
	l.Entry = base.WithField("session", l.SessionID)
	return l, nil
}

// Path returns the open log file path, empty when logging is disabled
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// rotate renames path to a timestamped sibling when it exceeds maxSize
func rotate(path string, maxSize int64, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if maxSize <= 0 || info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	rotated := fmt.Sprintf("%s-%s%s", stem, now.Format("20060102-150405"), ext)
	return os.Rename(path, rotated)
}
