// Package listing converts directory entries to editable text lines and back.
//
// A rendered line has the form
//
//	/<padded path id>/<prefix><name>
//
// with a trailing "/" for directories. The id segment is the only durable link
// between the text and an on-disk entity; a line without it is a new entry.
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/types"
)

// Line is the parsed form of one listing line
type Line struct {
	// PathID is valid only when HasID is true
	PathID int
	HasID  bool

	// Name is the entry name for id lines, or the whole line for new entries
	Name string
}

// IDWidther reports the digit width of the largest allocated id
type IDWidther interface {
	MaxIDWidth() int
}

// Codec renders and parses listing lines with a fixed prefix strategy
type Codec struct {
	widths   IDWidther
	prefixer Prefixer
}

// NewCodec returns a codec padding ids to widths.MaxIDWidth(). A nil
// prefixer means NoPrefix.
func NewCodec(widths IDWidther, prefixer Prefixer) *Codec {
	if prefixer == nil {
		prefixer = NoPrefix{}
	}
	return &Codec{widths: widths, prefixer: prefixer}
}

// Render returns one line per entry
func (c *Codec) Render(list []types.Entry) []string {
	width := 1
	if c.widths != nil {
		width = c.widths.MaxIDWidth()
	}

	lines := make([]string, len(list))
	for i, e := range list {
		lines[i] = c.RenderEntry(e, width)
	}
	return lines
}

// RenderEntry renders a single entry with ids zero-padded to width
func (c *Codec) RenderEntry(e types.Entry, width int) string {
	suffix := ""
	if e.IsDir() {
		suffix = "/"
	}
	return fmt.Sprintf("/%0*d/%s%s%s", width, e.PathID, c.prefixer.Prefix(e), e.Name, suffix)
}

// Parse parses one line, stripping the prefix from id lines
func (c *Codec) Parse(line string) Line {
	line = strings.TrimRight(line, "\r")
	parsed := ParseLine(line)
	if parsed.HasID {
		rest := strings.TrimPrefix(line, "/")
		rest = rest[strings.IndexByte(rest, '/')+1:]
		parsed.Name = nameSegment(c.prefixer.Strip(rest))
	}
	return parsed
}

// ParseLine parses a line rendered without prefix. The id is the leading
// "/<digits>/" segment. For id lines the name stops at the next "/"; lines
// without an id keep their full text so "a/b" can describe nested creation.
func ParseLine(line string) Line {
	line = strings.TrimRight(line, "\r")

	if id, rest, ok := splitID(line); ok {
		return Line{PathID: id, HasID: true, Name: nameSegment(rest)}
	}
	return Line{Name: line}
}

// IsBlank reports whether a line is entirely whitespace. Blank lines are
// never interpreted as a creation or a deletion.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func splitID(line string) (int, string, bool) {
	if !strings.HasPrefix(line, "/") {
		return 0, "", false
	}
	end := 1
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	if end == 1 || end >= len(line) || line[end] != '/' {
		return 0, "", false
	}
	id, err := strconv.Atoi(line[1:end])
	if err != nil {
		return 0, "", false
	}
	return id, line[end+1:], true
}

func nameSegment(rest string) string {
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}
