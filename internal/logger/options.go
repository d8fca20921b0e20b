/*
Package logger
File: options.go
Description:
    Options for the process-wide slog handler: level, output format and
    the attributes stamped on every record.
*/

package logger

import (
	"log/slog"
	"strings"
)

// ServiceName is stamped on every record.
const ServiceName = "umami-lab"

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

const (
	attrService     = "service"
	attrVersion     = "version"
	attrEnvironment = "environment"
	attrRequestID   = "request_id"
)

// Options selects the handler InitLogger installs.
type Options struct {
	Level       string // debug, info, warn (or warning), error
	Format      string // FormatJSON or FormatText
	Version     string
	Environment string
	AddSource   bool
}

// ParseLevel maps a level name onto slog. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (o Options) json() bool {
	return strings.EqualFold(o.Format, FormatJSON)
}

func (o Options) attrs() []slog.Attr {
	return []slog.Attr{
		slog.String(attrService, ServiceName),
		slog.String(attrVersion, o.Version),
		slog.String(attrEnvironment, o.Environment),
	}
}
