package scoring

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidConfiguration marks a policy that failed validation. It is
	// only ever returned by NewPolicy, never during evaluation.
	ErrInvalidConfiguration = errors.New("invalid scoring configuration")
	// ErrInvalidRecord marks a disclosure record that cannot be scored.
	ErrInvalidRecord = errors.New("invalid disclosure record")
)

// ValidationError lists every problem found while validating a policy or a
// record. Use errors.Is with the sentinels above to tell them apart.
type ValidationError struct {
	Subject  string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Subject, strings.Join(e.Problems, "; "))
}

func invalid(sentinel error, subject string, problems []string) error {
	return errors.Mark(&ValidationError{Subject: subject, Problems: problems}, sentinel)
}
