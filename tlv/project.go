package tlv

// JSONNode is the export-safe projection of a Node. Internal bookkeeping
// (offsets, depths, row indices) is omitted; optional fields disappear
// from the serialized form when absent.
type JSONNode struct {
	Tag         string     `json:"tag"`
	Class       string     `json:"class,omitempty"`
	Name        string     `json:"name,omitempty"`
	Constructed bool       `json:"constructed,omitempty"`
	Length      int        `json:"length"`
	Value       string     `json:"value,omitempty"`
	Annotation  string     `json:"annotation,omitempty"`
	Preview     string     `json:"preview,omitempty"`
	Children    []JSONNode `json:"children,omitempty"`
}

// Project maps a node tree to its JSON export form.
func Project(nodes []*Node) []JSONNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]JSONNode, 0, len(nodes))
	for _, n := range nodes {
		j := JSONNode{
			Tag:         n.Tag,
			Name:        n.Name,
			Constructed: n.Constructed,
			Length:      n.Length,
			Annotation:  n.Annotation,
			Preview:     n.Preview,
			Children:    Project(n.Children),
		}
		if n.RawHex != "" {
			j.Class = n.Class.String()
			j.Value = n.ValueHex
		} else if !n.Constructed {
			j.Value = string(n.Value)
		}
		out = append(out, j)
	}
	return out
}

// Summarize computes decode statistics from the finished row projection.
func Summarize(inputLength int, rows []FlatRow, topLevel int) Summary {
	maxDepth := 0
	for _, r := range rows {
		if r.Depth > maxDepth {
			maxDepth = r.Depth
		}
	}
	return Summary{
		InputLength:   inputLength,
		NodeCount:     len(rows),
		MaxDepth:      maxDepth,
		TopLevelCount: topLevel,
	}
}
