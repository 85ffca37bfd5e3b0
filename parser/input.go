package parser

import "regexp"

// InputStream is a forward-only cursor over the pattern source.
type InputStream struct {
	src string
	pos int
}

func NewInputStream(src string) *InputStream {
	return &InputStream{src: src}
}

func (s *InputStream) Source() string {
	return s.src
}

// Offset is the byte offset of the cursor.
func (s *InputStream) Offset() int {
	return s.pos
}

func (s *InputStream) AtEnd() bool {
	return s.pos >= len(s.src)
}

// Collect matches pattern anchored at the cursor. On success the cursor moves
// past the match and the matched text with its inclusive span is returned.
// pattern must be anchored with ^.
func (s *InputStream) Collect(pattern *regexp.Regexp) (value string, start, end int, ok bool) {
	if s.AtEnd() {
		return "", 0, 0, false
	}
	loc := pattern.FindStringIndex(s.src[s.pos:])
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return "", 0, 0, false
	}
	start = s.pos
	value = s.src[s.pos : s.pos+loc[1]]
	s.pos += loc[1]
	return value, start, s.pos - 1, true
}
