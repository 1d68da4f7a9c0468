package event_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/event"
)

func TestDispatchInOrder(t *testing.T) {
	event.Reset()
	t.Cleanup(event.Reset)

	var got []string
	event.Listen("thing.happened", func(p interface{}) { got = append(got, "first") })
	event.Listen("thing.happened", func(p interface{}) { got = append(got, "second") })
	event.Listen("other.thing", func(p interface{}) { got = append(got, "never") })

	event.Dispatch("thing.happened", nil)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatchPayload(t *testing.T) {
	event.Reset()
	t.Cleanup(event.Reset)

	var got interface{}
	event.Listen("thing.happened", func(p interface{}) { got = p })

	event.Dispatch("thing.happened", 42)
	assert.Equal(t, 42, got)
}

func TestDispatchAsyncContainsPanics(t *testing.T) {
	event.Reset()
	t.Cleanup(event.Reset)

	var wg sync.WaitGroup
	wg.Add(2)
	ran := false
	event.Listen("thing.happened", func(p interface{}) {
		defer wg.Done()
		panic("listener bug")
	})
	event.Listen("thing.happened", func(p interface{}) {
		defer wg.Done()
		ran = true
	})

	event.DispatchAsync("thing.happened", nil)
	wg.Wait()
	assert.True(t, ran)
}

func TestDispatchWithoutListeners(t *testing.T) {
	event.Reset()
	event.Dispatch("nobody.cares", "payload")
}
