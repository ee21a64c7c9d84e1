// Package compress implements the ORC block-compression layer: the codec
// abstraction used to compress individual stream chunks, and the
// Stream that turns a sequence of encoder bytes into ORC's
// on-wire block format (a 3-byte length+flag header followed by either a
// compressed or an "original" block).
//
// # Codecs
//
// ORC identifies its compression codec by a small enum carried in the file
// PostScript; this package mirrors that enum as Kind and provides a
// Compressor/Decompressor pair per supported kind:
//
//   - None:   passthrough; a Stream of this kind is unframed (no headers)
//   - Snappy: github.com/golang/snappy, ORC's "SNAPPY" codec
//   - Zstd:   github.com/klauspost/compress/zstd, ORC's "ZSTD" codec
//
// Readers conforming to the Apache ORC v0.12 spec recognize all three.
//
// # Block framing
//
// Stream buffers writes into a block-sized staging area. When the area
// fills (or Finish is called), the block is compressed; if the compressed
// form is not smaller than the input, the original bytes are emitted
// instead and the header's is-original bit is set. With a compressing kind,
// every block, compressed or not, is preceded by the 3-byte header so a
// reader never needs to guess; with Kind None the bytes are written as-is,
// with no headers.
package compress
