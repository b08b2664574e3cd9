package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ProductID int64   `json:"productId" validate:"required,min=1"`
	Quantity  int     `json:"quantity" validate:"required,min=1,max=999"`
	TagIDs    []int64 `json:"tagIds"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sampleRequest{ProductID: 1, Quantity: 2, TagIDs: []int64{1, 1}}))
	assert.NoError(t, ValidateStruct(&sampleRequest{ProductID: 1, Quantity: 2, TagIDs: []int64{-7}}))

	err := ValidateStruct(&sampleRequest{ProductID: 0, Quantity: 1000})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "productid", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "ProductID is required", errs[0].Message)
	assert.Equal(t, "quantity", errs[1].Field)
	assert.Equal(t, "max", errs[1].Tag)
	assert.Equal(t, "Quantity must be at most 999", errs[1].Message)
}

func TestGetValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
