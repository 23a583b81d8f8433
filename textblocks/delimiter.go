// Package textblocks splits text into blocks of lines separated by a
// delimiter (a blank line by default) and maps lines and blocks into typed
// values with caller-supplied functions.
package textblocks

import (
	"strconv"
	"strings"
)

const (
	LF            = "\n"
	CRLF          = "\r\n"
	BlankLineLF   = LF + LF
	BlankLineCRLF = CRLF + CRLF
)

// Delimiter selects the string that separates blocks.
// The zero value is Auto.
type Delimiter struct {
	literal  string
	explicit bool
}

// Auto detects the line ending convention of the input: a blank line in CRLF
// form if the text contains "\r\n" anywhere, a blank line in LF form otherwise.
func Auto() Delimiter {
	return Delimiter{}
}

// Literal uses s as the block delimiter, unchanged. An empty s never matches,
// so the whole input becomes a single block.
func Literal(s string) Delimiter {
	return Delimiter{literal: s, explicit: true}
}

// IsAuto reports whether d detects the delimiter from the input.
func (d Delimiter) IsAuto() bool {
	return !d.explicit
}

// Resolve returns the concrete delimiter used for text.
func (d Delimiter) Resolve(text string) string {
	if d.explicit {
		return d.literal
	}
	if strings.Contains(text, CRLF) {
		return BlankLineCRLF
	}
	return BlankLineLF
}

func (d Delimiter) String() string {
	if d.explicit {
		return "literal(" + strconv.Quote(d.literal) + ")"
	}
	return "auto"
}
