package addressbook

import (
	"fmt"
	"strings"
)

// Record is a single contact: a fixed name, phone numbers in the order they
// were added, and an optional birthday. Build one with NewRecord, populate
// it through the mutators, then hand it to a Book.
//
// A Record is not safe for concurrent use.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given contact name. The name is not
// validated and never changes afterwards.
func NewRecord(name string) *Record {
	return &Record{name: Name(name)}
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns the record's phone numbers in insertion order. The slice
// is a copy; mutating it does not affect the record.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)

	return out
}

// Birthday returns the stored birthday. The second result is false when the
// record has none.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}

	return *r.birthday, true
}

// AddPhone validates number and appends it to the phone list. On a
// validation error the list is left untouched. Duplicates are allowed and
// kept in order.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}

	r.phones = append(r.phones, p)

	return nil
}

// RemovePhone deletes the first phone equal to number. Removing a number
// the record does not hold is a no-op, not an error.
func (r *Record) RemovePhone(number string) {
	if i := r.indexOf(number); i >= 0 {
		r.phones = append(r.phones[:i], r.phones[i+1:]...)
	}
}

// EditPhone replaces the first phone equal to oldNumber with newNumber,
// keeping its position in the list. When oldNumber is not present the call
// is a no-op and newNumber is not even validated; when it is present,
// newNumber must be a valid phone or the record stays unchanged.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	i := r.indexOf(oldNumber)
	if i < 0 {
		return nil
	}

	p, err := NewPhone(newNumber)
	if err != nil {
		return err
	}

	r.phones[i] = p

	return nil
}

// FindPhone returns the first phone equal to number. The second result is
// false when the record does not hold it.
func (r *Record) FindPhone(number string) (Phone, bool) {
	if i := r.indexOf(number); i >= 0 {
		return r.phones[i], true
	}

	return "", false
}

// AddBirthday parses text as DD.MM.YYYY and stores it as the record's
// birthday, replacing any previous one.
func (r *Record) AddBirthday(text string) error {
	b, err := NewBirthday(text)
	if err != nil {
		return err
	}

	r.birthday = &b

	return nil
}

// String renders the record as
//
//	Contact name: <name>, phones: <p1>; <p2>, Birthday: DD.MM.YYYY
//
// with phones joined by "; " and the birthday part omitted when none is
// set. A record without phones renders an empty phone list.
func (r *Record) String() string {
	numbers := make([]string, len(r.phones))
	for i, p := range r.phones {
		numbers[i] = p.String()
	}

	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(numbers, "; "))
	if r.birthday != nil {
		s += ", " + r.birthday.String()
	}

	return s
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if string(p) == number {
			return i
		}
	}

	return -1
}
