package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTotalSizeSkippedWhenLimitUnbounded(t *testing.T) {
	headers := []Header{{Name: "a", Value: string(make([]byte, 10000))}}
	err := validateTotalSize(unboundedHeaderListSize, 0, false, headers)
	assert.NoError(t, err)
}

func TestValidateTotalSizeIncludesStatusInTotal(t *testing.T) {
	// ":status"=7 + "200"=3 + 32 = 42 exactly at the limit.
	err := validateTotalSize(42, 200, true, nil)
	assert.NoError(t, err)

	err = validateTotalSize(41, 200, true, nil)
	require.Error(t, err)
	var overflow *HeaderListOverflow
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, uint32(42), overflow.Total)
	assert.Equal(t, uint32(41), overflow.Limit)
}

func TestValidateTotalSizeAcceptsExactLimit(t *testing.T) {
	headers := []Header{{Name: "k", Value: "v"}} // 1+1+32 = 34
	err := validateTotalSize(34, 0, false, headers)
	assert.NoError(t, err)
}

func TestValidateTotalSizeRejectsOneByteOver(t *testing.T) {
	headers := []Header{{Name: "k", Value: "v"}} // 34
	err := validateTotalSize(33, 0, false, headers)
	require.Error(t, err)
	var overflow *HeaderListOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestValidateTotalSizeSumsAcrossMultipleHeaders(t *testing.T) {
	headers := []Header{
		{Name: "a", Value: "1"}, // 34
		{Name: "b", Value: "2"}, // 34
		{Name: "c", Value: "3"}, // 34
	}
	assert.NoError(t, validateTotalSize(102, 0, false, headers))
	assert.Error(t, validateTotalSize(101, 0, false, headers))
}
