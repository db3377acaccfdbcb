package export

import (
	"errors"
	"fmt"
)

// SinkWriteError reports that a sink could not write a document. Nothing is
// left at Location when it is returned. Sinks do not retry.
type SinkWriteError struct {
	Location string
	Err      error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("export: write %s: %v", e.Location, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

// IsSinkWrite returns true if err (or any error in its chain) is a SinkWriteError.
func IsSinkWrite(err error) bool {
	var swe *SinkWriteError
	return errors.As(err, &swe)
}
