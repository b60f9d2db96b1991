// Package splitnode wires splitfinder into a bounded, worker-pooled pipeline
// node: a single stage in a larger basecalling pipeline that receives
// messages from upstream, splits duplex reads, and forwards everything to a
// downstream Sink.
package splitnode

import "github.com/esteinig/dorado/duplexread"

// Kind tags which field of a Message is populated. The split engine acts
// only on KindRead; every other variant passes through untouched.
type Kind int

const (
	KindRead Kind = iota
	KindPair
	KindAlignment
)

// ReadPair is an opaque, pass-through payload: the split engine never
// inspects it, only forwards it.
type ReadPair struct {
	First, Second *duplexread.Read
}

// AlignmentRecord is likewise opaque to this node; it exists so the sum
// type below has a third variant for records that arrive already aligned
// and only need to be forwarded downstream.
type AlignmentRecord struct {
	ReadID string
	Data   []byte
}

// Message emulates the original's std::variant<Read, ReadPair,
// AlignmentRecord> as a tagged struct, since Go has no sum types: exactly
// one of the three pointer fields is populated, selected by Kind.
type Message struct {
	Kind      Kind
	Read      *duplexread.Read
	Pair      *ReadPair
	Alignment *AlignmentRecord
}

// ReadMessage wraps r as a KindRead Message.
func ReadMessage(r *duplexread.Read) Message {
	return Message{Kind: KindRead, Read: r}
}

// Sink is the node's downstream collaborator: every message the node
// produces — split children, or untouched pass-through variants — is
// pushed here, and Close is called exactly once when the node shuts down.
type Sink interface {
	PushMessage(Message)
	Close()
}
