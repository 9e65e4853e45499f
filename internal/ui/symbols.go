package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Command completed successfully
	SymbolFail     = "✗" // Command failed
	SymbolPending  = "○" // Not yet started
	SymbolComplete = "●" // Selected item
	SymbolSkipped  = "⊘" // Cancelled or skipped
)
