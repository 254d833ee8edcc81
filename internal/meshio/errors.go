package meshio

import "fmt"

// ParseError reports a malformed record in a geometry file.
// Loading stops at the first ParseError.
type ParseError struct {
	Line   int    // 1-based line number
	Record string // record kind, "v" or "f"
	Msg    string
	Err    error // underlying conversion error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("meshio: line %d (%s): %s: %v", e.Line, e.Record, e.Msg, e.Err)
	}
	return fmt.Sprintf("meshio: line %d (%s): %s", e.Line, e.Record, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
