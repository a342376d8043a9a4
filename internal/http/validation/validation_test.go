package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	Mode  string `json:"mode" validate:"required,oneof=auto manual"`
	Count int    `json:"count,omitempty" validate:"min=1"`
	Plain string `validate:"required"`
}

func TestFromBindError_MapsJSONTags(t *testing.T) {
	err := validator.New().Struct(sampleReq{Mode: "", Count: 0, Plain: ""})
	require.Error(t, err)

	fields := FromBindError(err, &sampleReq{})

	assert.Equal(t, "This field is required.", fields["mode"])
	assert.Equal(t, "Must be at least 1.", fields["count"])
	// no json tag falls back to the lowercased field name
	assert.Equal(t, "This field is required.", fields["plain"])
}

func TestFromBindError_OneOf(t *testing.T) {
	err := validator.New().Struct(sampleReq{Mode: "bogus", Count: 2, Plain: "x"})
	require.Error(t, err)

	fields := FromBindError(err, &sampleReq{})
	assert.Equal(t, "Must be one of: auto manual.", fields["mode"])
}

func TestFromBindError_NonValidationError(t *testing.T) {
	fields := FromBindError(errors.New("unexpected EOF"), &sampleReq{})
	assert.Equal(t, FieldErrors{"_": "Request body is invalid."}, fields)
}
