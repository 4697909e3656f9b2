package addressbook

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the date format used for birthdays, both on input and in
// rendered output: zero-padded day, zero-padded month, four-digit year.
const DateLayout = "02.01.2006"

// ErrInvalidFormat reports input text that fails a field's format or
// calendar check. It is the only error condition in the package; returned
// errors wrap it together with the offending input, so match it with
// errors.Is.
var ErrInvalidFormat = errors.New("invalid format")

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	birthdayPattern = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// A Field is a single typed value of a contact record. Every field renders
// itself as text; Name, Phone and Birthday are the implementations.
type Field interface {
	String() string
}

// Name identifies a contact. Any text is a valid Name, including the empty
// string; identity of records in a Book is exact string equality.
type Name string

func (n Name) String() string { return string(n) }

// Phone is a contact phone number. A Phone obtained from NewPhone is always
// exactly ten ASCII digits.
type Phone string

// NewPhone validates number and returns it as a Phone. The only accepted
// form is exactly ten ASCII digits, no spaces, signs or separators.
func NewPhone(number string) (Phone, error) {
	if !isValidPhone(number) {
		return "", fmt.Errorf("phone %q must be exactly 10 digits: %w", number, ErrInvalidFormat)
	}

	return Phone(number), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a contact's date of birth, stored as a calendar date at UTC
// midnight. The zero Birthday carries no date; obtain one from NewBirthday.
type Birthday struct {
	date time.Time
}

// NewBirthday parses text in DD.MM.YYYY form into a Birthday. Text that
// does not match the pattern, or that matches it but names an impossible
// date such as 31.02.2001, yields an error wrapping ErrInvalidFormat.
func NewBirthday(text string) (Birthday, error) {
	// The pattern vets the DD.MM.YYYY form, Parse then vets that the date
	// exists on the calendar; each failure keeps its own message.
	if !birthdayPattern.MatchString(text) {
		return Birthday{}, fmt.Errorf("birthday %q must be in DD.MM.YYYY form: %w", text, ErrInvalidFormat)
	}

	date, err := time.Parse(DateLayout, text)
	if err != nil {
		return Birthday{}, fmt.Errorf("birthday %q is not a calendar date: %w", text, ErrInvalidFormat)
	}

	return Birthday{date: date}, nil
}

// Date returns the parsed calendar date at UTC midnight.
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday as "Birthday: DD.MM.YYYY". The text is
// rebuilt from the parsed date, not echoed from the constructor input.
func (b Birthday) String() string { return "Birthday: " + b.date.Format(DateLayout) }

func isValidPhone(number string) bool {
	return phonePattern.MatchString(number)
}
