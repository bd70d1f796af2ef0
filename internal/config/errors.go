package config

import (
	"fmt"
	"strings"
)

// Access names the file operation that was refused.
type Access string

const (
	AccessRead  Access = "read"
	AccessWrite Access = "write"
)

const initHint = "Run 'toolbox-search config init' to create one, or pass --config <path>"

// withHint appends a 💡 line to msg when hint is set.
func withHint(msg, hint string) string {
	if hint == "" {
		return msg
	}
	return strings.TrimRight(msg, "\n") + "\n💡 " + hint
}

// PermissionError is returned when the config file or its directory cannot
// be read or written.
type PermissionError struct {
	Path   string
	Access Access
	Reason string // e.g. current mode bits, or which check failed
	Fix    string // shell command or steps that grant access
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("toolbox-search cannot %s %s: permission denied", e.Access, e.Path)
	if e.Reason != "" {
		msg += "\n" + e.Reason
	}
	if e.Fix == "" {
		return msg
	}
	return withHint(msg, "Fix: "+e.Fix)
}

// ConfigNotFoundError is returned by LoadFrom when the file does not exist.
// LoadOrCreate treats it as "use defaults".
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return withHint(fmt.Sprintf("config file not found: %s", e.Path), initHint)
}

// InvalidConfigError wraps a parse or validation failure. Validation
// failures name the offending keys (e.g. "scoring.matchThreshold").
type InvalidConfigError struct {
	Path string
	Err  error
	Hint string
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid config: " + e.Path
	if e.Err != nil {
		msg += "\n" + e.Err.Error()
	}
	return withHint(msg, e.Hint)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}
