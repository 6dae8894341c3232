package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidChoice = errors.New("invalid choice")

// InvalidChoiceError describes a menu answer that does not name one of the
// offered options. It matches ErrInvalidChoice with errors.Is.
type InvalidChoiceError struct {
	Input   string
	Options int
}

func (e *InvalidChoiceError) Error() string {
	if e.Options == 0 {
		return fmt.Sprintf("invalid choice %q: nothing to choose from", e.Input)
	}
	return fmt.Sprintf("invalid choice %q: enter a number from 1 to %d", e.Input, e.Options)
}

func (e *InvalidChoiceError) Is(target error) bool {
	return target == ErrInvalidChoice
}

// Choice is the zero-based index of the selected option.
type Choice int

// ParseChoice reads a 1-based menu number out of input and checks it against
// the number of options shown.
func ParseChoice(input string, options int) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > options {
		return 0, &InvalidChoiceError{Input: input, Options: options}
	}
	return Choice(n - 1), nil
}
