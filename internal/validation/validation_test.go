package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required,max=5"`
	Email  string `form:"from_email" json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Secret string `json:"-" validate:"omitempty,min=2"`
}

func TestStructReportsProblemsByTagName(t *testing.T) {
	t.Parallel()

	problems, err := Struct(sample{Name: "toolong", Email: "nope", Rating: 9})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":       "must be at most 5 characters",
		"from_email": "must be a valid email address",
		"rating":     "must be at most 5",
	}, problems)
}

func TestStructValid(t *testing.T) {
	t.Parallel()

	problems, err := Struct(sample{Name: "ada", Email: "ada@example.com", Rating: 5})
	require.NoError(t, err)
	assert.Nil(t, problems)
}

func TestStructRequired(t *testing.T) {
	t.Parallel()

	problems, err := Struct(sample{Rating: 0})
	require.NoError(t, err)
	assert.Equal(t, "is required", problems["name"])
	assert.Equal(t, "is required", problems["from_email"])
	assert.Equal(t, "must be at least 1", problems["rating"])
}

func TestSummaryIsSorted(t *testing.T) {
	t.Parallel()

	got := Summary(map[string]string{"rating": "must be at most 5", "name": "is required"})
	assert.Equal(t, "name is required; rating must be at most 5", got)
}

func TestStructRejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := Struct(42)
	assert.Error(t, err)
}
