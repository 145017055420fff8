// Package services defines the business logic for topics, articles, comments,
// and users. This file is the error classifier: the single point where
// persistence-layer failures are translated into the domain error taxonomy.
//
// Classification happens exactly once, at the boundary between a service and
// the repo call it made. Handlers only ever see domain sentinels, never raw
// driver errors, and no failure is silently swallowed: anything the table
// does not recognize degrades to domain.ErrBadRequest.
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

// storeFailure maps a driver failure signature to a domain error kind.
// SQLite reports constraint and type failures by message, so matching is on
// a lowercase substring. Adding a new constraint type is one more row here.
type storeFailure struct {
	signature string
	kind      error
}

var storeFailures = []storeFailure{
	{"foreign key constraint", domain.ErrForeignKeyViolation},
	{"not null constraint", domain.ErrNullField},
	{"datatype mismatch", domain.ErrInvalidInput},
	{"check constraint", domain.ErrInvalidInput},
}

// classify translates a persistence error into a domain sentinel.
//
// A gorm.ErrRecordNotFound becomes the caller-supplied notFound sentinel, so
// the same lookup serves articles, comments, and users. Constraint and type
// failures match the storeFailures table. Everything else becomes the generic
// domain.ErrBadRequest rather than leaking a store error code.
func classify(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	msg := strings.ToLower(err.Error())
	for _, f := range storeFailures {
		if strings.Contains(msg, f.signature) {
			return f.kind
		}
	}
	return domain.ErrBadRequest
}
