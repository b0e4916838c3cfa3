package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_RegisterAndCloseAll(t *testing.T) {
	h := NewHub(nil)
	a := newSession(h, nil, nil, nil)
	b := newSession(h, nil, nil, nil)

	assert.True(t, h.Register(a))
	assert.True(t, h.Register(b))
	assert.Equal(t, 2, h.SessionCount())

	h.Unregister(a)
	h.Unregister(a)
	assert.Equal(t, 1, h.SessionCount())

	h.Unregister(b)
	h.CloseAll()
	assert.False(t, h.Register(newSession(h, nil, nil, nil)))
	assert.Zero(t, h.SessionCount())
}

func TestHub_NilIsEmpty(t *testing.T) {
	var h *Hub
	assert.Zero(t, h.SessionCount())
}
