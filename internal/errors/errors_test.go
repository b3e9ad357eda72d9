package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")

	assert.True(t, IsAny(Wrap(errB, "ctx"), errA, errB))
	assert.False(t, IsAny(New("c"), errA, errB))
	assert.False(t, IsAny(nil, errA))
}

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "E1"}, "outer")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "E1", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapNilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.Equal(t, "root", Cause(Wrapf(New("root"), "layer %d", 1)).Error())
}
