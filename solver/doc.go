// Package solver drives a full almanac run: load, part 1 over individual
// seeds, part 2 over seed ranges on a worker pool, and an optional
// brute-force check of part 2 on small inputs.
//
//	s, err := solver.New(solver.Options{Mode: solver.ModeBoth, Workers: 4})
//	res, err := s.SolveFile(ctx, "input.txt")
//	fmt.Println(res)
//
// Every run gets a uuid run id that tags its log lines and spans.
package solver
