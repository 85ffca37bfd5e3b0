package parser

import "strings"

// Flags is the set of flags that follows the closing delimiter.
type Flags uint16

const (
	FlagHasIndices Flags = 1 << iota
	FlagGlobal
	FlagIgnoreCase
	FlagMultiline
	FlagDotAll
	FlagUnicode
	FlagUnicodeSets
	FlagSticky
)

var flagLetters = []struct {
	flag   Flags
	letter byte
}{
	{FlagHasIndices, 'd'},
	{FlagGlobal, 'g'},
	{FlagIgnoreCase, 'i'},
	{FlagMultiline, 'm'},
	{FlagDotAll, 's'},
	{FlagUnicode, 'u'},
	{FlagUnicodeSets, 'v'},
	{FlagSticky, 'y'},
}

// FlagFor returns the flag spelled by letter.
func FlagFor(letter byte) (Flags, bool) {
	for _, fl := range flagLetters {
		if fl.letter == letter {
			return fl.flag, true
		}
	}
	return 0, false
}

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// String spells the set in canonical order.
func (f Flags) String() string {
	var b strings.Builder
	for _, fl := range flagLetters {
		if f.Has(fl.flag) {
			b.WriteByte(fl.letter)
		}
	}
	return b.String()
}
