package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmerResolvesOnce(t *testing.T) {
	c := NewConfirmer()

	p, err := c.Request("Xóa cột?")
	require.NoError(t, err)

	p.Resolve(true)
	p.Resolve(false) // ignored

	select {
	case ok := <-p.Done():
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("confirmation never resolved")
	}
}

func TestConfirmerRejectsSecondRequestWhilePending(t *testing.T) {
	c := NewConfirmer()

	p, err := c.Request("Xóa học sinh?")
	require.NoError(t, err)

	_, err = c.Request("Xóa cột?")
	assert.ErrorIs(t, err, ErrConfirmationPending)

	p.Resolve(false)

	// Slot is free again once resolved.
	p2, err := c.Request("Khôi phục bản nháp?")
	require.NoError(t, err)
	p2.Resolve(true)
	assert.True(t, <-p2.Done())
}
