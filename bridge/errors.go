package bridge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotFound is returned when the target spreadsheet or worksheet does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermission is returned when the caller is not authorised to access
	// the target spreadsheet.
	ErrPermission = errors.New("permission denied")

	// ErrTransient is returned for network and service faults that are safe
	// for the caller to retry. The bridge itself never retries.
	ErrTransient = errors.New("transient service error")
)

// ShapeMismatchError is returned by Write when the supplied table does not fit
// a fixed-size target range. The target range is left unchanged.
type ShapeMismatchError struct {
	Range    string
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("table shape %dx%d does not match fixed range '%s' (%dx%d)",
		e.GotRows, e.GotCols, e.Range, e.WantRows, e.WantCols)
}

// classify re-tags a Sheets API failure with one of the bridge error kinds.
// Errors that fall outside the taxonomy are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 404:
			return fmt.Errorf("%w: %s", ErrNotFound, gerr.Message)

		case gerr.Code == 401 || gerr.Code == 403:
			return fmt.Errorf("%w: %s", ErrPermission, gerr.Message)

		case gerr.Code == 408 || gerr.Code == 429 || gerr.Code >= 500:
			return fmt.Errorf("%w: %s", ErrTransient, gerr.Message)
		}

		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	return err
}
