package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

type fakeCodeQuerier struct {
	inUse bool
	calls int
}

func (f *fakeCodeQuerier) CodeInUse(_ *gorm.DB, _ string) (bool, error) {
	f.calls++
	return f.inUse, nil
}

func TestGenerateOrderCode_Format(t *testing.T) {
	q := &fakeCodeQuerier{}
	code, err := generateOrderCode(nil, q)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), code)
	assert.Equal(t, 1, q.calls)
}

func TestGenerateOrderCode_FallbackAfterExhaustion(t *testing.T) {
	// Every draw collides: the generator gives up after the attempt cap and
	// falls back to a clock-derived code instead of failing.
	q := &fakeCodeQuerier{inUse: true}
	code, err := generateOrderCode(nil, q)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), code)
	assert.Equal(t, codeAttempts, q.calls)
}

func TestGenerateCounterToken_Format(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, generateCounterToken())
	}
}
