package column

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/stretchr/testify/require"
)

func TestUnionWriter_TagsRoundTripAndTagCountsReconcile(t *testing.T) {
	intVariant := NewIntegerWriter(2, compress.None, 0, 0)
	strVariant := NewStringWriter(3, compress.None, 0, 0)
	u := NewUnionWriter(1, compress.None, 0, 0, []Writer{intVariant, strVariant})

	u.WriteValue(0)
	intVariant.WriteValue(42)
	u.WriteValue(1)
	strVariant.WriteValue([]byte("hi"))
	u.WriteValue(0)
	intVariant.WriteValue(7)

	var buf []byte
	var infos []StreamInfo
	u.WriteDataStreams(&sliceWriter{&buf}, &infos)

	streams := splitStreams(buf, infos)
	tags := rle.DecodeByteRLE(streams[streamKey{1, pb.Stream_DATA}])
	require.Equal(t, []byte{0, 1, 0}, tags)

	u.VerifyRowCount(3)
}

func TestUnionWriter_TagOutOfRangePanics(t *testing.T) {
	intVariant := NewIntegerWriter(2, compress.None, 0, 0)
	u := NewUnionWriter(1, compress.None, 0, 0, []Writer{intVariant})

	require.Panics(t, func() { u.WriteValue(5) })
}
