package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	i := Ptr(42)
	s := Ptr("hello")

	assert.Equal(t, 42, *i)
	assert.Equal(t, "hello", *s)
	assert.NotSame(t, Ptr(1), Ptr(1))
}
