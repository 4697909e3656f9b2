// Package addressbook implements an in-memory contact directory: records
// keyed by contact name, each holding validated ten-digit phone numbers and
// an optional birthday, with an upcoming-birthdays report over the whole
// book.
//
// The package performs no I/O and keeps no state outside the Book value.
// Nothing in it is safe for concurrent use; callers that share a Book or a
// Record across goroutines must serialize access themselves.
package addressbook
