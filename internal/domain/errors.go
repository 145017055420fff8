// Package domain – error taxonomy.
//
// This file centralizes the domain error kinds shared by validation, the
// persistence boundary, and the HTTP layer. Each sentinel's text is the exact
// client-facing message; handlers serialize the matched sentinel as
// {"message": "<text>"} with the status from StatusFor. Raw store errors are
// never exposed on the wire.
package domain

import "errors"

var (
	// ErrInvalidInput is returned when a path parameter fails to parse as its
	// expected type, or a correctly named body field carries the wrong type.
	ErrInvalidInput = errors.New("Invalid input")

	// ErrArticleNotFound indicates a well-formed article id with no matching row.
	ErrArticleNotFound = errors.New("Article does not exist")

	// ErrCommentNotFound indicates a well-formed comment id with no matching row.
	ErrCommentNotFound = errors.New("Comment does not exist")

	// ErrUserNotFound indicates an unknown username.
	ErrUserNotFound = errors.New("User does not exist")

	// ErrInvalidSortField is returned for a sort_by value outside the
	// article sortable-column allow-list.
	ErrInvalidSortField = errors.New("Invalid sort field")

	// ErrInvalidOrderField is returned for an order value other than asc/desc.
	ErrInvalidOrderField = errors.New("Invalid order field")

	// ErrInvalidTopicValue is returned for a topic filter that matches no
	// existing topic slug.
	ErrInvalidTopicValue = errors.New("Invalid topic value")

	// ErrInvalidFieldBody is returned when a request body's field set does not
	// exactly match the schema expected by the endpoint.
	ErrInvalidFieldBody = errors.New("Invalid field body")

	// ErrNullField is returned when a required, correctly named field is
	// explicitly null.
	ErrNullField = errors.New("Fields cannot be null values")

	// ErrForeignKeyViolation is returned when a write references a related
	// entity that does not exist (unknown article id or username).
	ErrForeignKeyViolation = errors.New("Value/s violate foreign key restraint")

	// ErrPathNotFound is the transport-level miss: no route matched at all.
	// Distinct from the 400-level "does not exist" errors above.
	ErrPathNotFound = errors.New("Path not found")

	// ErrBadRequest is the generic fallback for store failures that match no
	// specific kind. Unexpected errors still surface as a 400, never a crash.
	ErrBadRequest = errors.New("Bad request")
)

// StatusFor maps a domain error to its fixed HTTP status. Unknown errors map
// to 400 so that nothing leaks through with a misleading status.
func StatusFor(err error) int {
	if errors.Is(err, ErrPathNotFound) {
		return 404
	}
	return 400
}

// IsDomainErr reports whether err is one of the fixed taxonomy sentinels,
// meaning its text is safe to expose to clients.
func IsDomainErr(err error) bool {
	for _, known := range []error{
		ErrInvalidInput, ErrArticleNotFound, ErrCommentNotFound, ErrUserNotFound,
		ErrInvalidSortField, ErrInvalidOrderField, ErrInvalidTopicValue,
		ErrInvalidFieldBody, ErrNullField, ErrForeignKeyViolation,
		ErrPathNotFound, ErrBadRequest,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
