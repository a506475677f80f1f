package identifier

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []string{
		"60c72b2f9b1d8e001f8e4e9a",
		"000000000000000000000000",
		"ffffffffffffffffffffffff",
		"0123456789abcdef01234567",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			id, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, Format(id))
			assert.Equal(t, s, id.String())
		})
	}
}

func TestParse_UppercaseFormatsLowercase(t *testing.T) {
	t.Parallel()

	id, err := Parse("60C72B2F9B1D8E001F8E4E9A")
	require.NoError(t, err)
	assert.Equal(t, "60c72b2f9b1d8e001f8e4e9a", Format(id))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not hex", input: "not-a-valid-id"},
		{name: "too short", input: "60c72b2f9b1d8e001f8e4e9"},
		{name: "too long", input: "60c72b2f9b1d8e001f8e4e9a0"},
		{name: "non hex characters", input: "60c72b2f9b1d8e001f8e4e9z"},
		{name: "whitespace padded", input: " 60c72b2f9b1d8e001f8e4e9"},
		{name: "multibyte", input: strings.Repeat("é", 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.True(t, id.IsZero())
			assert.False(t, IsValid(tt.input))
		})
	}
}

func TestGenerate_Unique(t *testing.T) {
	t.Parallel()

	const n = 10000
	seen := make(map[ID]struct{}, n)

	for range n {
		id := Generate()
		require.False(t, id.IsZero())
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %s", id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n)
}

func TestGenerate_FormatsAsValidIdentifier(t *testing.T) {
	t.Parallel()

	s := Format(Generate())
	assert.Len(t, s, Length)
	assert.True(t, IsValid(s))
}

func TestObjectIDConversion(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	id := FromObjectID(oid)

	assert.Equal(t, oid.Hex(), Format(id))
	assert.Equal(t, oid, id.ObjectID())
}

func TestFormatPtr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FormatPtr(nil))

	id := Generate()
	got := FormatPtr(&id)
	require.NotNil(t, got)
	assert.Equal(t, Format(id), *got)
}
