package logger

// Type selects the slog handler used for output.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)
