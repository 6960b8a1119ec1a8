package dbx

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullInt64(t *testing.T) {
	assert.False(t, NullInt64(nil).Valid)

	v := int64(7)
	got := NullInt64(&v)
	assert.True(t, got.Valid)
	assert.Equal(t, int64(7), got.Int64)
}

func TestInt64Ptr(t *testing.T) {
	assert.Nil(t, Int64Ptr(sql.NullInt64{}))

	p := Int64Ptr(sql.NullInt64{Int64: 3, Valid: true})
	if assert.NotNil(t, p) {
		assert.Equal(t, int64(3), *p)
	}
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(sql.NullString{}))

	p := StringPtr(sql.NullString{String: "ligar amanhã", Valid: true})
	if assert.NotNil(t, p) {
		assert.Equal(t, "ligar amanhã", *p)
	}
}
