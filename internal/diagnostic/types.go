package diagnostic

import (
	"fmt"
)

// Diagnostics holds everything surfaced during one transform pass.
type Diagnostics struct {
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TargetPath identifies which mapping entry this relates to (if any).
	TargetPath string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, targetPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   SeverityWarning,
		Code:       code,
		Message:    message,
		TargetPath: targetPath,
	})
}

// HasWarnings returns true if any warnings were collected.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.TargetPath != "" {
		return d.TargetPath + ": " + msg
	}

	return msg
}
