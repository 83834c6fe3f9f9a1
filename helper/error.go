package helper

import "fmt"

// NewError wraps err with the operation it occurred in.
func NewError(operation string, err error) error {
	return fmt.Errorf("error in %s: %w", operation, err)
}
