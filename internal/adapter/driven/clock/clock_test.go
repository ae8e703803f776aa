package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_NowIsNotFrozen(t *testing.T) {
	c := NewSystem(time.UTC)

	first := c.Now()
	time.Sleep(2 * time.Millisecond)
	second := c.Now()

	assert.True(t, second.After(first))
}

func TestSystem_Location(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	assert.Equal(t, loc, NewSystem(loc).Now().Location())
	assert.Equal(t, time.UTC, NewSystem(nil).Now().Location())
	assert.Equal(t, time.UTC, System{}.Now().Location())
}
