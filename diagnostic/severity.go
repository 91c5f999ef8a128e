// Copyright © 2026 The diagview authors

package diagnostic

// Severity indicates the severity level of a diagnostic. The order is
// meaningful for display only; suppression policy lives upstream.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityRemark
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityRemark:
		return "remark"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal error"
	default:
		return "unknown"
	}
}

// labelColor returns the escape sequence for a severity label in p.
func labelColor(p palette, s Severity) string {
	switch s {
	case SeverityNote, SeverityRemark:
		return p.cyan
	case SeverityWarning:
		return p.magenta
	case SeverityError:
		return p.red
	case SeverityFatal:
		return p.boldRed
	default:
		return ""
	}
}
