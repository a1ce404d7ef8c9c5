package dom

import (
	"context"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StreamEvent is a partial, boundary-only view of one occurrence of the
// tag a Stream was created for. No arena is populated: Attrs is a plain
// map snapshot and Text is the raw text accumulated between the matching
// start and end tag, not a navigable subtree. This trades queryability
// for the ability to process arbitrarily large documents in bounded
// memory, unlike Parse's full in-memory arena.
type StreamEvent struct {
	Tag   string
	Attrs map[string]string
	Text  string
}

// Stream iterates over every occurrence of one tag name in a document too
// large (or too continuous, e.g. an HTTP response body) to buffer and
// parse as a whole. It mirrors the shape of the teacher's generic
// Stream[T]/NewStream/IterWithContext API, adapted from "decode each
// matched element into a typed T" to "hand back a boundary view of each
// matched element", since this package has no schema to decode into.
type Stream struct {
	tok    *html.Tokenizer
	tagName string
}

// NewStream creates a streaming iterator over r for elements named
// tagName (e.g. "item", "entry", "tr").
func NewStream(r io.Reader, tagName string) *Stream {
	return &Stream{tok: html.NewTokenizer(r), tagName: tagName}
}

// Iter is a convenience wrapper around IterWithContext using
// context.Background().
func (s *Stream) Iter() <-chan StreamEvent {
	return s.IterWithContext(context.Background())
}

// IterWithContext streams matching elements onto a channel, stopping
// early if ctx is canceled. The channel is closed when the input is
// exhausted, on tokenizer error, or on cancellation.
func (s *Stream) IterWithContext(ctx context.Context) <-chan StreamEvent {
	ch := make(chan StreamEvent)
	go func() {
		defer close(ch)
		var inMatch bool
		var attrs map[string]string
		var text strings.Builder
		depth := 0

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			tt := s.tok.Next()
			switch tt {
			case html.ErrorToken:
				return
			case html.StartTagToken, html.SelfClosingTagToken:
				name, hasAttr := s.tok.TagName()
				tagStr := string(name)
				if !inMatch && tagStr == s.tagName {
					inMatch = true
					depth = 0
					attrs = make(map[string]string)
					text.Reset()
					for hasAttr {
						var k, v []byte
						k, v, hasAttr = s.tok.TagAttr()
						attrs[string(k)] = string(v)
					}
					if tt == html.SelfClosingTagToken {
						select {
						case ch <- StreamEvent{Tag: tagStr, Attrs: attrs, Text: ""}:
						case <-ctx.Done():
							return
						}
						inMatch = false
					}
					continue
				}
				if inMatch && tagStr == s.tagName {
					depth++
				}
				for hasAttr {
					_, _, hasAttr = s.tok.TagAttr()
				}
			case html.EndTagToken:
				name, _ := s.tok.TagName()
				tagStr := string(name)
				if inMatch && tagStr == s.tagName {
					if depth > 0 {
						depth--
						continue
					}
					event := StreamEvent{Tag: tagStr, Attrs: attrs, Text: text.String()}
					inMatch = false
					select {
					case ch <- event:
					case <-ctx.Done():
						return
					}
				}
			case html.TextToken:
				if inMatch {
					text.Write(s.tok.Text())
				}
			}
		}
	}()
	return ch
}
