package compress

// Position is the seek coordinate Stream hands back at a
// row-group boundary: the byte offset of the compression block the next
// write will land in, plus the offset within that block's *uncompressed*
// contents. Per spec.md §4.2, when compression is disabled the block-start
// component is omitted entirely — Ints() encodes that rule.
type Position struct {
	Compressed bool
	Block      int64
	InBlock    int
}

// Ints flattens the position into the row-index "positions" representation:
// two values when compression is enabled, one when it is not.
func (p Position) Ints() []uint64 {
	if p.Compressed {
		return []uint64{uint64(p.Block), uint64(p.InBlock)}
	}
	return []uint64{uint64(p.InBlock)}
}
