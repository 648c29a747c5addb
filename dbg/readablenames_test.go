package dbg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type handle int32
	first := Name(handle(1))
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(handle(1)), "names are stable for a key")

	// Keys of different types never share a name slot
	Name(int(1))
	assert.Equal(t, first, Name(handle(1)))

	assert.Equal(t, "Ø", Name(nil))
	var p *int
	assert.Equal(t, "Ø", Name(p))
}

func TestName_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	names := make([]string, 16)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = Name("shared")
		}(i)
	}
	wg.Wait()
	for _, name := range names {
		assert.Equal(t, names[0], name)
	}
}
