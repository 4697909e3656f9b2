package addressbook_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/addressbook-go/addressbook"
)

func TestAddPhoneAppendsInOrder(t *testing.T) {
	r := addressbook.NewRecord("John")

	for _, number := range []string{"1234567890", "5555555555", "1234567890"} {
		if err := r.AddPhone(number); err != nil {
			t.Fatalf("add phone %s: unexpected error: %v", number, err)
		}
	}

	want := []addressbook.Phone{"1234567890", "5555555555", "1234567890"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v, got %v", want, got)
	}
}

func TestAddPhoneRejectsInvalidNumber(t *testing.T) {
	r := addressbook.NewRecord("John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.AddPhone("123")
	if !errors.Is(err, addressbook.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	want := []addressbook.Phone{"1234567890"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v after failed add, got %v", want, got)
	}
}

func TestPhonesReturnsACopy(t *testing.T) {
	r := addressbook.NewRecord("John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	phones := r.Phones()
	phones[0] = "9999999999"

	if got := r.Phones(); got[0] != "1234567890" {
		t.Fatalf("expected stored phone 1234567890, got %s", got[0])
	}
}

func TestRemovePhoneDeletesFirstMatchOnly(t *testing.T) {
	r := addressbook.NewRecord("John")
	for _, number := range []string{"1111111111", "2222222222", "1111111111"} {
		if err := r.AddPhone(number); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	r.RemovePhone("1111111111")

	want := []addressbook.Phone{"2222222222", "1111111111"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v, got %v", want, got)
	}
}

func TestRemovePhoneMissingIsNoop(t *testing.T) {
	r := addressbook.NewRecord("John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.RemovePhone("0000000000")

	want := []addressbook.Phone{"1234567890"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v, got %v", want, got)
	}
}

func TestEditPhoneReplacesInPlace(t *testing.T) {
	r := addressbook.NewRecord("John")
	for _, number := range []string{"1111111111", "2222222222", "3333333333"} {
		if err := r.AddPhone(number); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := r.EditPhone("2222222222", "4444444444"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []addressbook.Phone{"1111111111", "4444444444", "3333333333"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v, got %v", want, got)
	}
}

func TestEditPhoneMissingOldIsNoop(t *testing.T) {
	r := addressbook.NewRecord("John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The absent number short-circuits the edit before the replacement is
	// validated, so even a malformed replacement is not an error here.
	if err := r.EditPhone("0000000000", "not-a-phone"); err != nil {
		t.Fatalf("expected no error for an absent old number, got %v", err)
	}

	want := []addressbook.Phone{"1234567890"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v, got %v", want, got)
	}
}

func TestEditPhoneRejectsInvalidReplacement(t *testing.T) {
	r := addressbook.NewRecord("John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.EditPhone("1234567890", "123")
	if !errors.Is(err, addressbook.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	want := []addressbook.Phone{"1234567890"}
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Fatalf("expected phones %v after failed edit, got %v", want, got)
	}
}

func TestFindPhone(t *testing.T) {
	r := addressbook.NewRecord("John")
	for _, number := range []string{"1234567890", "5555555555"} {
		if err := r.AddPhone(number); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	p, ok := r.FindPhone("5555555555")
	if !ok {
		t.Fatalf("expected to find 5555555555")
	}
	if p.String() != "5555555555" {
		t.Fatalf("expected phone 5555555555, got %s", p)
	}

	if _, ok := r.FindPhone("0000000000"); ok {
		t.Fatalf("expected not to find 0000000000")
	}
}

func TestAddBirthdayReplacesPrevious(t *testing.T) {
	r := addressbook.NewRecord("John")

	if _, ok := r.Birthday(); ok {
		t.Fatalf("expected no birthday on a fresh record")
	}

	if err := r.AddBirthday("01.10.1989"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.AddBirthday("02.08.1990"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, ok := r.Birthday()
	if !ok {
		t.Fatalf("expected a birthday to be set")
	}
	if b.String() != "Birthday: 02.08.1990" {
		t.Fatalf("expected Birthday: 02.08.1990, got %s", b)
	}
}

func TestAddBirthdayRejectsInvalidText(t *testing.T) {
	r := addressbook.NewRecord("John")
	if err := r.AddBirthday("01.10.1989"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.AddBirthday("31.02.2000")
	if !errors.Is(err, addressbook.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	b, ok := r.Birthday()
	if !ok || b.String() != "Birthday: 01.10.1989" {
		t.Fatalf("expected previous birthday to survive a failed add, got (%v, %v)", b, ok)
	}
}

func TestRecordString(t *testing.T) {
	r := addressbook.NewRecord("Jane")
	if err := r.AddPhone("9876543210"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Contact name: Jane, phones: 9876543210"
	if got := r.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRecordStringEmpty(t *testing.T) {
	want := "Contact name: Vasya, phones: "
	if got := addressbook.NewRecord("Vasya").String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRecordStringAfterEditsAndBirthday(t *testing.T) {
	r := addressbook.NewRecord("John")
	for _, number := range []string{"1234567890", "5555555555"} {
		if err := r.AddPhone(number); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := r.EditPhone("1234567890", "1112223333"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.AddBirthday("01.10.1989"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.EditPhone("5555555555", "1112223333"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Contact name: John, phones: 1112223333; 1112223333, Birthday: 01.10.1989"
	if got := r.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
