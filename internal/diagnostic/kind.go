package diagnostic

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a generator failure.
type Kind int

const (
	_ Kind = iota // zero value is reserved as "unknown"

	// MalformedInput reports a data file that does not parse into its record shape.
	MalformedInput
	// EmptyInputSet reports a position table without any numeric id.
	EmptyInputSet
	// DuplicateGeneratedName reports two source records expanding to the same entry name.
	DuplicateGeneratedName
	// EmitError reports an artifact that could not be rendered or written.
	EmitError
	// ConfigError reports an unreadable or incomplete generator configuration.
	ConfigError
)

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}
