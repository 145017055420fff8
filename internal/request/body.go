// Package request – JSON body validation.
//
// Bodies are decoded into raw field maps first so the accepted-field-set
// check runs before any null or type check. A request with wrong field names
// therefore always reports domain.ErrInvalidFieldBody, even when one of its
// values is also null or mistyped.
package request

import (
	"bytes"
	"encoding/json"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/schema"
)

// NewComment is the validated payload for comment creation. Both fields are
// guaranteed non-null strings.
type NewComment struct {
	Username string
	Body     string
}

// ParseVotePatch validates the article vote patch body.
//
// The body must contain exactly the field inc_votes holding a signed integer
// of any magnitude. A different field set yields domain.ErrInvalidFieldBody;
// a present inc_votes of the wrong JSON type (string, float, null) yields
// domain.ErrInvalidInput.
func ParseVotePatch(data []byte) (int, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return 0, err
	}
	if !exactFieldSet(fields, schema.VotePatchFields) {
		return 0, domain.ErrInvalidFieldBody
	}

	// json.Unmarshal treats null as a no-op on int targets, so the literal
	// must be rejected before the type check.
	if isNull(fields["inc_votes"]) {
		return 0, domain.ErrInvalidInput
	}
	var delta int
	if err := json.Unmarshal(fields["inc_votes"], &delta); err != nil {
		return 0, domain.ErrInvalidInput
	}
	return delta, nil
}

// ParseNewComment validates the comment creation body.
//
// The body must contain exactly username and body. The field-set check runs
// first (domain.ErrInvalidFieldBody); an explicit JSON null on either field
// yields domain.ErrNullField, distinct from "missing"; a non-string value
// yields domain.ErrInvalidInput.
func ParseNewComment(data []byte) (NewComment, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return NewComment{}, err
	}
	if !exactFieldSet(fields, schema.NewCommentFields) {
		return NewComment{}, domain.ErrInvalidFieldBody
	}

	for _, name := range schema.NewCommentFields {
		if isNull(fields[name]) {
			return NewComment{}, domain.ErrNullField
		}
	}

	var out NewComment
	if err := json.Unmarshal(fields["username"], &out.Username); err != nil {
		return NewComment{}, domain.ErrInvalidInput
	}
	if err := json.Unmarshal(fields["body"], &out.Body); err != nil {
		return NewComment{}, domain.ErrInvalidInput
	}
	return out, nil
}

// decodeFields parses a JSON object into its raw fields. A body that is not
// a JSON object at all is malformed input, not a field-set mismatch.
func decodeFields(data []byte) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return fields, nil
}

// exactFieldSet reports whether the decoded fields match want exactly:
// nothing missing, nothing extra, nothing renamed.
func exactFieldSet(fields map[string]json.RawMessage, want []string) bool {
	if len(fields) != len(want) {
		return false
	}
	for _, name := range want {
		if _, ok := fields[name]; !ok {
			return false
		}
	}
	return true
}

// isNull reports whether a raw JSON value is the literal null.
func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
