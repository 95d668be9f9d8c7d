package summary

import "fmt"

// ReadErrorPrefix starts the line printed for a ReadError.
const ReadErrorPrefix = "Error reading"

// ReadError reports that the input file could not be read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Message is the line printed in place of a summary.
func (e *ReadError) Message() string {
	return fmt.Sprintf("%s %s: %v", ReadErrorPrefix, e.Path, e.Err)
}
