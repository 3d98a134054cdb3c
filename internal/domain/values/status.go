package values

import "fmt"

// Status represents the outcome of validating a single recipe file.
type Status string

const (
	// StatusPass indicates every check passed
	StatusPass Status = "pass"
	// StatusFail indicates the file parsed but failed one or more checks
	StatusFail Status = "fail"
	// StatusError indicates the file could not be read or parsed
	StatusError Status = "error"
)

// Precedence returns the numeric precedence of this status.
// Higher values win when statuses are combined.
//
// Precedence: Error (2) > Fail (1) > Pass (0)
func (s Status) Precedence() int {
	switch s {
	case StatusError:
		return 2
	case StatusFail:
		return 1
	case StatusPass:
		return 0
	default:
		return -1
	}
}

// IsFailure returns true if this status represents a failure or error
func (s Status) IsFailure() bool {
	return s == StatusFail || s == StatusError
}

// IsSuccess returns true if this status represents success
func (s Status) IsSuccess() bool {
	return s == StatusPass
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusPass, StatusFail, StatusError:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}
