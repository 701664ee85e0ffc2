package tlv

// TagClass is the BER tag class, taken from the top two bits of the
// first tag octet. QRIS nodes always carry ClassUniversal.
type TagClass uint8

const (
	ClassUniversal TagClass = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c TagClass) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "Context-specific"
	case ClassPrivate:
		return "Private"
	default:
		return "Unknown"
	}
}

// Node is one decoded TLV field. BER nodes use an uppercase hex Tag and
// fill Class, ValueHex, RawHex and Preview; QRIS nodes use a two-digit
// decimal Tag and fill Name and Annotation.
type Node struct {
	Tag         string
	Class       TagClass
	Name        string
	Constructed bool
	Length      int
	Offset      int
	Depth       int

	// Value holds the raw content of a primitive node. Constructed
	// nodes carry their content as Children instead.
	Value    []byte
	Children []*Node

	Annotation string
	ValueHex   string
	RawHex     string
	Preview    string
}

// DisplayValue returns the value as shown in a flat row: the value hex
// for BER nodes, the raw substring for QRIS nodes.
func (n *Node) DisplayValue() string {
	if n.RawHex != "" {
		return n.ValueHex
	}
	return string(n.Value)
}

// Note returns the human gloss attached to the node, if any.
func (n *Node) Note() string {
	if n.Annotation != "" {
		return n.Annotation
	}
	return n.Preview
}

// FlatRow is the pre-order projection of one Node. Index is 1-based and
// strictly increasing across the whole tree; the mapping to nodes is 1:1
// and order-preserving.
type FlatRow struct {
	Index  int    `json:"index"`
	Tag    string `json:"tag"`
	Name   string `json:"name,omitempty"`
	Depth  int    `json:"depth"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Value  string `json:"value,omitempty"`
	Note   string `json:"note,omitempty"`
}

// Summary holds decode statistics for one parse.
type Summary struct {
	InputLength   int `json:"inputLength"`
	NodeCount     int `json:"nodeCount"`
	MaxDepth      int `json:"maxDepth"`
	TopLevelCount int `json:"topLevelCount"`
}

// CrcResult reports QRIS checksum verification. A missing CRC tag is not
// an error; Present is simply false.
type CrcResult struct {
	Present  bool   `json:"present"`
	Valid    bool   `json:"valid"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// Issue levels for non-fatal validation findings.
const (
	IssueError = "error"
	IssueWarn  = "warn"
)

// Issue is one non-fatal validation finding.
type Issue struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Result is the top-level decode output.
type Result struct {
	Format     string     `json:"format"`
	Nodes      []*Node    `json:"-"`
	Rows       []FlatRow  `json:"rows"`
	Tree       []JSONNode `json:"jsonTree"`
	Summary    Summary    `json:"summary"`
	Crc        *CrcResult `json:"crc,omitempty"`
	Validation []Issue    `json:"validation,omitempty"`
}
