// Package humane orders strings the way people expect when they contain numbers.
//
// A string is split into runs of digits and runs of everything else. Two
// strings are compared run by run:
//
//   - numeric runs compare by value, so "item-2" sorts before "item-11"
//     and "007" equals "7"
//   - a numeric run sorts before a non-numeric run
//   - non-numeric runs compare byte-wise, like strings.Compare
//   - a string that runs out of runs first sorts first
//
// Runs are built from grapheme clusters, so a digit followed by a combining
// mark is never split from its mark. Digit runs of any length are compared
// without converting them to integers.
//
//	files := []string{"something-11", "something-1", "something-2"}
//	humane.Sort(files)
//	// [something-1 something-2 something-11]
package humane
