// Package sparse implements dictionary-of-keys storage for integer
// matrices, keeping only the non-zero elements in memory.
//
// What:
//
//   - Matrix wraps fixed rows×cols dimensions around a coordinate→value map.
//   - At/Set element access with strict bounds checking; writing 0 erases.
//   - Add/Sub/Mul allocate fresh results and never modify their operands.
//   - Entries/String expose the non-zero set in row-major order.
//
// Why:
//
//   - Grids with few populated cells waste memory and iteration time in
//     dense form; storage here is proportional to the non-zero count.
//   - Deterministic (row, col, value) output keeps dumps diffable.
//
// Complexity:
//
//   - At / Set / NNZ:  O(1).
//   - Add / Sub:       O(nnz(a) + nnz(b)).
//   - Mul:             O(nnz(a)·k + nnz(b)), k = max non-zeros per row of b.
//   - Entries / String: O(nnz·log nnz) for the row-major sort.
//
// Errors:
//
//   - ErrInvalidDimensions: negative row or column count at construction.
//   - ErrIndexOutOfBounds: At/Set coordinate outside the matrix.
//   - ErrDimensionMismatch: Add/Sub operands differ in shape.
//   - ErrIncompatibleDimensions: Mul operands with cols(a) ≠ rows(b).
//   - ErrNilMatrix: nil operand passed to a binary operation.
//
// See matfile for the text serialization of these matrices.
package sparse
