package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCanceled} {
		assert.True(t, ValidStatus(s), "estado %q debe ser válido", s)
	}
	assert.False(t, ValidStatus("draft"), "los estados distinguen mayúsculas")
	assert.False(t, ValidStatus("Archived"))
	assert.False(t, ValidStatus(""))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusDone))
	assert.True(t, IsTerminal(StatusCanceled))
	assert.False(t, IsTerminal(StatusDraft))
	assert.False(t, IsTerminal(StatusWaiting))
	assert.False(t, IsTerminal(StatusReady))
}

func TestCanEdit(t *testing.T) {
	assert.True(t, CanEdit(StatusDraft))
	assert.True(t, CanEdit(StatusWaiting))
	assert.True(t, CanEdit(StatusReady))
	assert.False(t, CanEdit(StatusDone))
	assert.False(t, CanEdit(StatusCanceled))
}

func TestCanComplete(t *testing.T) {
	assert.True(t, CanComplete(StatusDraft))
	assert.True(t, CanComplete(StatusWaiting))
	assert.True(t, CanComplete(StatusReady))
	assert.False(t, CanComplete(StatusDone))
	assert.False(t, CanComplete(StatusCanceled))
}
