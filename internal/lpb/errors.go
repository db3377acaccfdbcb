package lpb

import (
	"errors"
	"fmt"
)

// DataLoadError reports that the lookup resource is missing or is not a
// valid lookup document. It is fatal: the table cannot be used.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("lpb: load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// IsDataLoad returns true if err (or any error in its chain) is a DataLoadError.
func IsDataLoad(err error) bool {
	var dle *DataLoadError
	return errors.As(err, &dle)
}
