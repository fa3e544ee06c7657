package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// consoleHandler writes one short line per record for people watching the
// terminal: "warn: api: request failed status=500". Timestamps and the
// invocation id are left to the JSON log file.
type consoleHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	groups    []string
	addSource bool
	color     bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &consoleHandler{
		mu:        &sync.Mutex{},
		writer:    w,
		level:     lvl,
		addSource: addSource,
		color:     isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(ctx context.Context, record slog.Record) error {
	if !h.Enabled(ctx, record.Level) {
		return nil
	}

	var component string
	var fields []field
	collect := func(f field) {
		switch f.key {
		case FieldComponent:
			if component == "" {
				component = renderValue(f.value)
			}
		case FieldInvocationID, "":
		default:
			fields = append(fields, f)
		}
	}
	for _, attr := range h.attrs {
		flatten(h.groups, attr, collect)
	}
	record.Attrs(func(attr slog.Attr) bool {
		flatten(h.groups, attr, collect)
		return true
	})

	var buf bytes.Buffer
	h.writeLevel(&buf, record.Level)
	if component != "" {
		buf.WriteString(component)
		buf.WriteString(": ")
	}
	buf.WriteString(strings.TrimSpace(record.Message))
	for _, f := range fields {
		fmt.Fprintf(&buf, " %s=%s", f.key, renderValue(f.value))
	}
	if h.addSource {
		if src := record.Source(); src != nil {
			h.dim(&buf, fmt.Sprintf(" (%s:%d)", filepath.Base(src.File), src.Line))
		}
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	label := strings.ToLower(level.String())
	color := ""
	switch {
	case level >= slog.LevelError:
		color = ansiRed
	case level >= slog.LevelWarn:
		color = ansiYellow
	}
	if h.color && color != "" {
		buf.WriteString(color + label + ansiReset)
	} else {
		buf.WriteString(label)
	}
	buf.WriteString(": ")
}

func (h *consoleHandler) dim(buf *bytes.Buffer, s string) {
	if h.color {
		buf.WriteString(ansiDim + s + ansiReset)
		return
	}
	buf.WriteString(s)
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

type field struct {
	key   string
	value slog.Value
}

// flatten walks groups depth first, joining nested keys with dots.
func flatten(prefix []string, attr slog.Attr, emit func(field)) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		next := prefix
		if attr.Key != "" {
			next = append(append([]string(nil), prefix...), attr.Key)
		}
		for _, child := range value.Group() {
			flatten(next, child, emit)
		}
		return
	}
	key := attr.Key
	if key != "" && len(prefix) > 0 {
		key = strings.Join(prefix, ".") + "." + key
	}
	emit(field{key: key, value: value})
}

func renderValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
