// Package almanac parses the seed almanac text format into a
// rangemap.Pipeline and answers both puzzle parts.
//
// The format is a seeds line followed by blank-line separated stage blocks:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each stage line holds three integers: destination start, source start and
// length. Construction is all-or-nothing: a malformed line fails the whole
// parse and no partial almanac is returned.
package almanac
