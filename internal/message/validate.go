package message

import (
	stderrors "errors"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/hpungsan/msgpipe/internal/errors"
)

var validate = validator.New()

// Validate checks that text is non-empty and at most maxChars runes long.
// maxChars <= 0 means DefaultMaxChars.
func Validate(text string, maxChars int) error {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	err := validate.Var(text, "required,max="+strconv.Itoa(maxChars))
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.NewInternal(err)
	}

	switch fieldErrs[0].Tag() {
	case "required":
		return errors.NewInvalidArgument("text cannot be empty")
	case "max":
		return errors.NewTextTooLong(maxChars, CountChars(text))
	default:
		return errors.NewInvalidArgument(fieldErrs[0].Error())
	}
}

// CountChars returns the character count as runes (not bytes).
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}
