package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

type Code uint16

const (
	UnknownCode Code = 0

	// Catalog data-integrity findings.
	CatMissingAvailability Code = 1001
	CatDanglingAlias       Code = 1002
)

func (c Code) String() string {
	switch c {
	case CatMissingAvailability:
		return "CAT1001"
	case CatDanglingAlias:
		return "CAT1002"
	}
	return "GEN0000"
}

// Diagnostic is one finding, keyed by the symbol it concerns.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Symbol   string
	Message  string
}
