package tlv

import "fmt"

// ErrFormat is a structural decode failure. It aborts the whole parse;
// there is no partial result.
type ErrFormat struct {
	Offset int
	Msg    string
}

func (e ErrFormat) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}
