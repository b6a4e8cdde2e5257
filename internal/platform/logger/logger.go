package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = map[Level]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

// ParseLevel acepta debug|info|warn|warning|error. Cualquier otro valor cae en info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return Warn
	}
	for lvl, name := range levelNames {
		if name == s {
			return lvl
		}
	}
	return Info
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "info"
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

type Fields map[string]any

// Logger es la interfaz que consumen los servicios de dominio y los adapters.
type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto es os.Stdout.
	Output io.Writer
}

type sink struct {
	mu  sync.Mutex
	out io.Writer
}

type structured struct {
	sink   *sink
	level  Level
	format Format
	base   Fields
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &structured{
		sink:   &sink{out: out},
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

func (l *structured) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}
	return &structured{
		sink:   l.sink,
		level:  l.level,
		format: l.format,
		base:   merge(l.base, fields),
	}
}

func (l *structured) Debug(msg string, fields Fields) { l.write(Debug, msg, fields) }
func (l *structured) Info(msg string, fields Fields)  { l.write(Info, msg, fields) }
func (l *structured) Warn(msg string, fields Fields)  { l.write(Warn, msg, fields) }
func (l *structured) Error(msg string, fields Fields) { l.write(Error, msg, fields) }

func (l *structured) write(lvl Level, msg string, fields Fields) {
	if lvl < l.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(Fields{"level": "error", "msg": "logger: unencodable fields", "err": err.Error()})
		}
		line = string(b)
	} else {
		line = textLine(entry)
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = fmt.Fprintln(l.sink.out, line)
}

func merge(a, b Fields) Fields {
	out := make(Fields, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Keys ordenadas para que la salida sea estable.
func textLine(m Fields) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", k, m[k])
	}
	return sb.String()
}

type nop struct{}

// Nop descarta todo. Útil en tests.
func Nop() Logger { return nop{} }

func (n nop) With(Fields) Logger { return n }
func (nop) Debug(string, Fields) {}
func (nop) Info(string, Fields)  {}
func (nop) Warn(string, Fields)  {}
func (nop) Error(string, Fields) {}
