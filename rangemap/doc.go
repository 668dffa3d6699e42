// Package rangemap implements piecewise interval translation composed
// across ordered stages.
//
// An Entry translates the half-open source interval [Source, Source+Length)
// onto [Dest, Dest+Length) by a constant offset. A Stage is a set of
// source-disjoint entries; values not covered by any entry pass through
// unchanged. A Pipeline applies stages left to right.
//
// Two evaluation strategies are offered over the same Pipeline:
//
//   - point resolution (Resolve, MinimumDestination) pushes single values;
//   - range splitting (ResolveRange, Segments, MinimumDestinationForRanges)
//     pushes whole seed ranges, cutting them at entry boundaries so each
//     resulting segment maps affinely through every stage.
//
// MinimumDestinationBruteForce expands ranges into points and exists to
// cross-check the range algorithm on small inputs.
//
// All types are immutable after construction and safe for concurrent use.
//
//	st, _ := rangemap.NewStage("seed-to-soil",
//	    rangemap.Entry{Dest: 50, Source: 98, Length: 2},
//	    rangemap.Entry{Dest: 52, Source: 50, Length: 48},
//	)
//	p := rangemap.NewPipeline(st)
//	low, _ := p.MinimumDestination([]int64{79, 14, 55, 13})
package rangemap
