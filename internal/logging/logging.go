package logging

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatText    = "text"
	FormatJSON    = "json"
)

// Structured field names attached to scaffold records.
const (
	FieldPath   = "path"
	FieldStatus = "status"
	FieldKind   = "kind"
	// FieldSpacer asks the console formatter to print a blank line first.
	FieldSpacer = "spacer"
)

// Formats lists the accepted values for New's format argument.
func Formats() []string {
	return []string{FormatConsole, FormatText, FormatJSON}
}

// New returns a logger writing to w in the given format. An empty format
// selects the console format.
func New(w io.Writer, format string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)

	switch strings.ToLower(format) {
	case "", FormatConsole:
		log.SetFormatter(&ConsoleFormatter{})
	case FormatText:
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (want one of: %s)", format, strings.Join(Formats(), ", "))
	}
	return log, nil
}

// ConsoleFormatter prints only the entry message. Fields are dropped except
// FieldSpacer, which prefixes the line with an empty one.
type ConsoleFormatter struct{}

// Format implements logrus.Formatter.
func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if spacer, ok := entry.Data[FieldSpacer].(bool); ok && spacer {
		b.WriteByte('\n')
	}
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
