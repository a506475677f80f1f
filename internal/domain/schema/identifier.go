package schema

import (
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"

	"github.com/pkg/errors"
)

// parseOptionalID parses an optional identifier field. Absent and empty values yield nil.
func parseOptionalID(field string, raw *string) (*identifier.ID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := identifier.Parse(*raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.InvalidFieldIdentifier(field))
	}

	return &id, nil
}
