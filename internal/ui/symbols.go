package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolOn      = "●"
	SymbolOff     = "○"
)

// Success renders msg behind a colored check mark.
func Success(msg string) string {
	return SuccessStyle().Render(SymbolSuccess) + " " + msg
}

// Fail renders msg behind a colored cross.
func Fail(msg string) string {
	return ErrorStyle().Render(SymbolFail) + " " + msg
}
