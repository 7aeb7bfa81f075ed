// Package spmat is a compact toolkit for integer matrices that are mostly
// zeros — build them, combine them, and move them through a strict text
// format without ever densifying.
//
// 🚀 What is spmat?
//
//	A small, focused library built from three pieces:
//		• sparse  — dictionary-of-keys Matrix: At/Set element access,
//		  Add/Sub/Mul arithmetic, row-major Entries, fmt.Stringer dump
//		• matfile — strict line-oriented codec: rows=/cols= headers declare
//		  max indexes, (row, col, value) data triples, and every violation
//		  is reported with its 1-based line number
//		• cmd/spmat — an interactive calculator over matrix files
//
// ✨ Why choose spmat?
//
//   - Memory proportional to the non-zero count, never rows×cols
//   - Arithmetic walks stored elements only — no dense triple loops
//   - Strict parsing: a typo is a line-numbered error, not a skewed matrix
//   - Every failure is a sentinel error matched with errors.Is
//
// Under the hood, everything is organized under two subpackages and a cmd:
//
//	sparse/    — storage model, arithmetic, rendering
//	matfile/   — parse and serialize the text format
//	cmd/spmat/ — menu-driven driver writing result.txt
//	examples/  — runnable walkthroughs
//
// Quick taste:
//
//	a, _ := matfile.Load("a.txt")
//	b, _ := matfile.Load("b.txt")
//	sum, err := a.Add(b)
//	if err != nil {
//	  // shapes differ
//	}
//	_ = matfile.Save("result.txt", sum)
//
//	go get github.com/katalvlaran/spmat
package spmat
