package tlv

import "fmt"

// Field is one decoded tag+length header, before the value is consumed.
type Field struct {
	Tag         string
	Length      int // declared value size: bytes for BER, characters for QRIS
	HeaderSize  int
	Constructed bool
}

// Grammar supplies the format-specific half of TLV decoding. The shared
// Walk below owns the depth guard, the bounds check against the enclosing
// region, pre-order row numbering, and recursion into constructed values.
type Grammar interface {
	// ReadField decodes one tag+length header at off within [off, end).
	// It must not read past end.
	ReadField(off, end, depth int, parentTag string) (Field, error)

	// MakeNode builds the node for a field whose value span has already
	// been bounds-checked against the enclosing region.
	MakeNode(f Field, off, depth int, parentTag string) *Node

	// MaxDepth is the nesting bound; exceeding it is a hard failure.
	MaxDepth() int
}

// State accumulates the flat row projection across one Walk. The single
// counter threaded through the recursion keeps the numbering pre-order,
// parent before children, with no gaps or reuse.
type State struct {
	Rows []FlatRow

	next int
}

func (s *State) nextIndex() int {
	s.next++
	return s.next
}

// Walk decodes the region [start, end) at the given depth as a sequence
// of TLV fields, recursing into constructed values. All state lives in
// st; the input held by the grammar is never mutated.
func Walk(g Grammar, start, end, depth int, parentTag string, st *State) ([]*Node, error) {
	if depth > g.MaxDepth() {
		return nil, ErrFormat{Offset: start, Msg: "Maximum nesting depth exceeded"}
	}

	var nodes []*Node
	off := start
	for off < end {
		f, err := g.ReadField(off, end, depth, parentTag)
		if err != nil {
			return nil, err
		}

		valueStart := off + f.HeaderSize
		valueEnd := valueStart + f.Length
		if valueEnd > end {
			return nil, ErrFormat{Offset: off, Msg: fmt.Sprintf(
				"declared length %d of tag %s exceeds available input length", f.Length, f.Tag)}
		}

		n := g.MakeNode(f, off, depth, parentTag)
		st.Rows = append(st.Rows, FlatRow{
			Index:  st.nextIndex(),
			Tag:    n.Tag,
			Name:   n.Name,
			Depth:  depth,
			Offset: off,
			Length: f.Length,
			Value:  n.DisplayValue(),
			Note:   n.Note(),
		})

		if f.Constructed && f.Length > 0 {
			children, err := Walk(g, valueStart, valueEnd, depth+1, n.Tag, st)
			if err != nil {
				return nil, err
			}
			n.Children = children
		}

		nodes = append(nodes, n)
		off = valueEnd
	}
	return nodes, nil
}
