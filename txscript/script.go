// 定义脚本本身：一个有序的 Chunk 序列，以及作用于整个序列的只读操作。

package txscript

// A Script is an ordered sequence of Chunks. It owns its chunk sequence
// exclusively; callers that need to share a Script across goroutines must
// provide their own synchronization, since the mutator methods in
// mutator.go mutate the receiver in place.
type Script struct {
	chunks []Chunk
}

// NewScriptFromChunks builds a Script directly from a chunk sequence,
// taking ownership of the slice. Use this for chunk sequences assembled by
// a builder or by Parse; callers constructing chunks by hand should prefer
// Empty() plus the mutator API so the minimum-encoding rule is applied.
func NewScriptFromChunks(chunks []Chunk) *Script {
	return &Script{chunks: chunks}
}

// Empty returns a script with no chunks.
func Empty() *Script {
	return &Script{}
}

// Chunks returns the script's chunk sequence. The returned slice aliases
// the script's internal storage and must not be mutated by the caller;
// use the mutator API (mutator.go) to change a Script's contents.
func (s *Script) Chunks() []Chunk {
	return s.chunks
}

// Len returns the number of chunks in s.
func (s *Script) Len() int {
	return len(s.chunks)
}

// Equals reports whether s and other encode to the same bytes: same
// chunk count, and pairwise matching opcodes and payloads (§6.3).
func (s *Script) Equals(other *Script) bool {
	if len(s.chunks) != len(other.chunks) {
		return false
	}
	for i := range s.chunks {
		if !s.chunks[i].Equal(other.chunks[i]) {
			return false
		}
	}
	return true
}

// IsPushOnly reports whether every chunk's opcode is <= OP_16, i.e.
// whether s, like a conventional spend (input) script, contains only data
// pushes and small-integer opcodes. Classify does not consult it.
func (s *Script) IsPushOnly() bool {
	for _, c := range s.chunks {
		if c.opcode > OP_16 {
			return false
		}
	}
	return true
}

// IsStandard reports whether s classifies as anything other than UNKNOWN.
func (s *Script) IsStandard() bool {
	return s.Classify() != UNKNOWN
}

// PushedData returns the payload of every push chunk in s, in order,
// including the empty payload pushed by OP_0.
func (s *Script) PushedData() [][]byte {
	var out [][]byte
	for _, c := range s.chunks {
		if c.IsPush() {
			out = append(out, c.payload)
		}
	}
	return out
}

// IsUnspendable reports whether s is provably unspendable: it classifies
// as DATA_OUT (an OP_RETURN output, which the network burns by
// convention) or fails to serve as a valid script at all. Scripts built
// or parsed in this package are always well-formed chunk sequences, so in
// practice this reduces to the DATA_OUT check.
func (s *Script) IsUnspendable() bool {
	return s.Classify() == DATA_OUT
}
