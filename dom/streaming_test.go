package dom_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

func TestStream_YieldsEachMatchingElement(t *testing.T) {
	input := `<feed>
		<entry id="1"><title>First</title></entry>
		<entry id="2"><title>Second</title></entry>
	</feed>`

	s := dom.NewStream(strings.NewReader(input), "entry")
	var got []string
	for ev := range s.Iter() {
		got = append(got, ev.Attrs["id"])
	}
	require.Equal(t, []string{"1", "2"}, got)
}

func TestStream_ContextCancellation(t *testing.T) {
	input := strings.Repeat(`<item n="1">x</item>`, 100)
	s := dom.NewStream(strings.NewReader(input), "item")

	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	for range s.IterWithContext(ctx) {
		count++
		if count == 1 {
			cancel()
		}
	}
	require.GreaterOrEqual(t, count, 1)
	require.Less(t, count, 100)
}
