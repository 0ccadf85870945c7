package crophealth

import (
	"fmt"
	"time"
)

// BackendError reports a failed or inconsistent satellite archive query.
type BackendError struct {
	Source string
	Err    error
}

func (e *BackendError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("archive backend %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("archive backend: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// DataUnavailableError reports that a query window yielded no usable
// observations after masking and coverage filtering.
type DataUnavailableError struct {
	Farm    string
	Paddock string
	Start   time.Time
	End     time.Time
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("no usable observations for %s/%s between %s and %s",
		e.Farm, e.Paddock, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}
