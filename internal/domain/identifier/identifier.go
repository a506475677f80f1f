// Package identifier converts record identifiers between their external form,
// a 24-character hexadecimal string, and the 12-byte value stored by the document database.
package identifier

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Length is the number of hexadecimal characters in an external identifier.
const Length = 24

// ErrInvalid is returned when a string is not exactly 24 hexadecimal characters.
var ErrInvalid = errors.New("invalid identifier")

// ID is the internal identifier of a persisted record.
type ID [12]byte

// Nil is the zero identifier. It is never assigned to a persisted record.
var Nil ID

// Parse converts an external identifier into an ID.
func Parse(s string) (ID, error) {
	if len(s) != Length {
		return Nil, errors.Wrapf(ErrInvalid, "length %d", len(s))
	}

	var id ID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return Nil, errors.Wrapf(ErrInvalid, "%q is not hexadecimal", s)
	}

	return id, nil
}

// IsValid reports whether s would be accepted by Parse.
func IsValid(s string) bool {
	_, err := Parse(s)

	return err == nil
}

// Generate returns a new globally unique identifier.
func Generate() ID {
	return ID(primitive.NewObjectID())
}

// Format renders id as a lowercase 24-character hexadecimal string.
func Format(id ID) string {
	return hex.EncodeToString(id[:])
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return Format(id)
}

// IsZero reports whether id is the zero identifier.
func (id ID) IsZero() bool {
	return id == Nil
}

// FromObjectID converts a database ObjectID into an ID.
func FromObjectID(oid primitive.ObjectID) ID {
	return ID(oid)
}

// ObjectID converts id into the database's native ObjectID.
func (id ID) ObjectID() primitive.ObjectID {
	return primitive.ObjectID(id)
}

// FormatPtr renders an optional identifier; nil stays nil.
func FormatPtr(id *ID) *string {
	if id == nil {
		return nil
	}

	s := Format(*id)

	return &s
}
