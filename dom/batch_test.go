package dom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

func TestParseBatch_OrderPreserved(t *testing.T) {
	inputs := []string{
		`<p id="1">a</p>`,
		`<p id="2">b</p>`,
		`<p id="3">c</p>`,
	}
	results, err := dom.ParseBatch(context.Background(), inputs, dom.BatchOptions{
		Concurrency: 2,
		Config:      dom.DefaultConfig(),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		require.NoError(t, r.Err)
		p, err := r.Doc.Find("p")
		require.NoError(t, err)
		want := []string{"a", "b", "c"}[i]
		require.Equal(t, want, r.Doc.Text(p))
	}
}

func TestParseBatch_PerSlotFailureWithoutFailFast(t *testing.T) {
	inputs := []string{
		`<p>ok</p>`,
		string([]byte{0xff, 0xfe}),
	}
	results, err := dom.ParseBatch(context.Background(), inputs, dom.BatchOptions{
		Config: dom.DefaultConfig(),
	})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
}

func TestParseBatch_FailFast(t *testing.T) {
	inputs := []string{
		string([]byte{0xff, 0xfe}),
		`<p>ok</p>`,
	}
	_, err := dom.ParseBatch(context.Background(), inputs, dom.BatchOptions{
		FailFast: true,
		Config:   dom.DefaultConfig(),
	})
	require.Error(t, err)
}
