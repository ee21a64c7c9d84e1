package column

import (
	"github.com/arloliu/orc/pb"
)

// sliceWriter adapts a *[]byte to io.Writer so tests can capture the raw
// bytes WriteDataStreams/WriteIndexStreams would otherwise send to a file.
type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

// streamKey identifies one emitted stream by column and kind, since a
// single flat buffer can carry the same Kind for several columns (e.g. a
// Union's tag DATA stream alongside its variants' own DATA streams).
type streamKey struct {
	column int
	kind   pb.Stream_Kind
}

// splitStreams slices a flat byte buffer into its constituent streams using
// the StreamInfo lengths WriteDataStreams recorded, in emission order.
func splitStreams(buf []byte, infos []StreamInfo) map[streamKey][]byte {
	out := make(map[streamKey][]byte, len(infos))
	off := 0
	for _, info := range infos {
		out[streamKey{int(info.Column), info.Kind}] = buf[off : off+int(info.Length)]
		off += int(info.Length)
	}
	return out
}
