package token

// Position represents a location in the source code.
type Position struct {
	Line   int `yaml:"line" json:"line"`                         // 1-based line number
	Column int `yaml:"column" json:"column"`                     // 1-based column number
	Offset int `yaml:"offset,omitempty" json:"offset,omitempty"` // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}
