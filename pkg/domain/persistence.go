package domain

import "context"

// RelationalSink persists the relational rendering of a graph. One run uses
// exactly one sink; a failed write leaves the target in a state that must be
// discarded, not repaired (drop-and-recreate semantics).
type RelationalSink interface {
	WriteGraph(ctx context.Context, g *Graph) error
	Close() error
}

// DocumentSink persists the encoded entity document under a name. Writes
// are whole-document and atomic: a crash mid-write leaves no partial
// document claiming to be complete.
type DocumentSink interface {
	Write(name string, data []byte) error
}
