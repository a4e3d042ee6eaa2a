package domain

import (
	"runtime"
	"strings"
	"unicode/utf8"
)

// maxWordLength caps word file name length. Words are user-generated tokens;
// anything longer is noise and risks path-length limits.
const maxWordLength = 32

// windowsReserved lists the device names Windows refuses as file names,
// with or without an extension.
var windowsReserved = map[string]struct{}{
	"con": {}, "aux": {}, "prn": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// WordIsSaveable reports whether word can be used verbatim as a file name
// component under the output words/ directory. Words containing glob or path
// separator characters, empty words, and words longer than 32 characters are
// rejected; on Windows the reserved device names are rejected as well.
// Unsaveable words are dropped best-effort, not treated as errors.
func WordIsSaveable(word string) bool {
	return wordIsSaveableOn(word, runtime.GOOS)
}

func wordIsSaveableOn(word, goos string) bool {
	if strings.ContainsAny(word, `*?\/`) {
		return false
	}
	// Length is measured in characters, not bytes, so multi-byte words are
	// not penalized for their encoding.
	if n := utf8.RuneCountInString(word); n < 1 || n > maxWordLength {
		return false
	}
	if goos == "windows" {
		if _, reserved := windowsReserved[strings.ToLower(word)]; reserved {
			return false
		}
	}
	return true
}
