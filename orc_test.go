package orc

import (
	"bytes"
	"testing"

	"github.com/arloliu/orc/column"
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/decimal128"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/schema"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func longStructSchema(t *testing.T) *schema.Schema {
	t.Helper()
	root, err := schema.NewStruct(schema.Field{Name: "id", Type: schema.NewLong()})
	require.NoError(t, err)
	return root
}

// parsePostScript re-derives the PostScript from the trailing bytes of buf,
// the only "reading" spec.md's file-structure properties require (spec.md
// §8: "the byte at offset file_len-1 equals the PostScript length... the
// preceding psLen bytes parse as a valid PostScript").
func parsePostScript(t *testing.T, buf []byte) (*pb.PostScript, int) {
	t.Helper()
	require.NotEmpty(t, buf)
	psLen := int(buf[len(buf)-1])
	require.GreaterOrEqual(t, len(buf), psLen+1)

	ps := &pb.PostScript{}
	require.NoError(t, proto.Unmarshal(buf[len(buf)-1-psLen:len(buf)-1], ps))
	return ps, psLen
}

func TestWriter_MinimalFile(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t))
	require.NoError(t, err)

	id := w.Data().Struct().Children()[0].(*column.IntegerWriter)
	for i := int64(0); i < 5; i++ {
		w.Data().Struct().WriteRow()
		id.WriteValue(i * 10)
	}
	require.NoError(t, w.WriteBatch(5))

	_, err = w.Finish()
	require.NoError(t, err)

	out := buf.Bytes()
	require.Equal(t, "ORC", string(out[:3]))

	ps, _ := parsePostScript(t, out)
	require.Equal(t, "ORC", *ps.Magic)
	require.Equal(t, []uint32{0, 12}, ps.Version)
	require.Equal(t, pb.CompressionKind_NONE, *ps.Compression)
}

func TestWriter_FooterRowCountMatchesWritesAndContentLengthEquation(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t))
	require.NoError(t, err)

	id := w.Data().Struct().Children()[0].(*column.IntegerWriter)
	for i := int64(0); i < 37; i++ {
		w.Data().Struct().WriteRow()
		id.WriteValue(i)
	}
	require.NoError(t, w.WriteBatch(37))
	_, err = w.Finish()
	require.NoError(t, err)

	out := buf.Bytes()
	ps, psLen := parsePostScript(t, out)

	footerStart := len(out) - 1 - psLen - int(*ps.FooterLength)
	footerBytes := out[footerStart : footerStart+int(*ps.FooterLength)]

	footer := &pb.Footer{}
	require.NoError(t, proto.Unmarshal(footerBytes, footer))

	require.Equal(t, uint64(37), *footer.NumberOfRows)
	require.Len(t, footer.Stripes, 1)
	require.Equal(t, uint64(37), *footer.Stripes[0].NumberOfRows)
	require.Equal(t, uint64(3), *footer.HeaderLength)

	var sumStripeBytes uint64
	for _, si := range footer.Stripes {
		sumStripeBytes += *si.IndexLength + *si.DataLength + *si.FooterLength
	}

	lhs := *footer.HeaderLength + sumStripeBytes + *ps.MetadataLength + *ps.FooterLength
	rhs := uint64(len(out) - 1 - psLen)
	require.Equal(t, rhs, lhs)
}

func TestWriter_SnappyCompressionTagsPostScript(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t), WithCompression(compress.Snappy))
	require.NoError(t, err)

	id := w.Data().Struct().Children()[0].(*column.IntegerWriter)
	data := w.Data().Struct()
	for i := int64(0); i < 5; i++ {
		data.WriteRow()
		id.WriteValue(i)
	}
	require.NoError(t, w.WriteBatch(5))
	_, err = w.Finish()
	require.NoError(t, err)

	ps, _ := parsePostScript(t, buf.Bytes())
	require.Equal(t, pb.CompressionKind_SNAPPY, *ps.Compression)
}

func TestWriter_ListSumReconciliation(t *testing.T) {
	elem := schema.NewLong()
	xs := schema.NewList(elem)
	root, err := schema.NewStruct(
		schema.Field{Name: "id", Type: schema.NewLong()},
		schema.Field{Name: "xs", Type: xs},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, root)
	require.NoError(t, err)

	data := w.Data().Struct()
	id := data.Children()[0].(*column.IntegerWriter)
	list := data.Children()[1].(*column.ListWriter)
	elemW := list.Element().(*column.IntegerWriter)

	lengths := []int64{0, 3, 1, 2}
	for i, n := range lengths {
		data.WriteRow()
		id.WriteValue(int64(i))
		list.WriteValue(n)
		for j := int64(0); j < n; j++ {
			elemW.WriteValue(j)
		}
	}
	require.NoError(t, w.WriteBatch(int64(len(lengths))))
	_, err = w.Finish()
	require.NoError(t, err)
}

func TestWriter_ListMismatchedChildCountPanics(t *testing.T) {
	elem := schema.NewLong()
	root, err := schema.NewStruct(schema.Field{Name: "xs", Type: schema.NewList(elem)})
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, root)
	require.NoError(t, err)

	data := w.Data().Struct()
	list := data.Children()[0].(*column.ListWriter)

	data.WriteRow()
	list.WriteValue(2) // declares 2 elements but none are written

	require.Panics(t, func() { _ = w.WriteBatch(1) })
}

func TestWriter_MapWiring(t *testing.T) {
	root, err := schema.NewStruct(
		schema.Field{Name: "m", Type: schema.NewMap(schema.NewString(), schema.NewLong())},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, root)
	require.NoError(t, err)

	data := w.Data().Struct()
	m := data.Children()[0].(*column.MapWriter)
	key := m.Key().(*column.StringWriter)
	value := m.Value().(*column.IntegerWriter)

	entries := map[string]int64{"a": 1, "b": 2, "c": 3}
	data.WriteRow()
	m.WriteValue(int64(len(entries)))
	for k, v := range entries {
		key.WriteValue([]byte(k))
		value.WriteValue(v)
	}
	require.NoError(t, w.WriteBatch(1))
	_, err = w.Finish()
	require.NoError(t, err)
}

func TestWriter_DecimalPrecisionAndScale(t *testing.T) {
	dec, err := schema.NewDecimal(8, 3)
	require.NoError(t, err)
	root, err := schema.NewStruct(schema.Field{Name: "d", Type: dec})
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, root)
	require.NoError(t, err)

	data := w.Data().Struct()
	d := data.Children()[0].(*column.DecimalWriter)

	data.WriteRow()
	d.WriteValue(decimal128.FromInt64(123456))
	require.NoError(t, w.WriteBatch(1))
	_, err = w.Finish()
	require.NoError(t, err)
}

func TestWriter_StripeRollsOverSmallSizeThreshold(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t), WithStripeSize(1))
	require.NoError(t, err)

	id := w.Data().Struct().Children()[0].(*column.IntegerWriter)
	for batch := 0; batch < 3; batch++ {
		for i := int64(0); i < 10; i++ {
			w.Data().Struct().WriteRow()
			id.WriteValue(i)
		}
		require.NoError(t, w.WriteBatch(10))
	}
	_, err = w.Finish()
	require.NoError(t, err)

	require.Len(t, w.stripeInfos, 3)
	var total uint64
	for _, info := range w.stripeInfos {
		total += *info.NumberOfRows
	}
	require.Equal(t, uint64(30), total)
}

func TestWriter_FinishRejectsZeroRows(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t))
	require.NoError(t, err)
	_, err = w.Finish()
	require.ErrorIs(t, err, errs.ErrNoRows)
}

func TestWriter_SchemaReturnsConstructedRoot(t *testing.T) {
	root := longStructSchema(t)
	var buf bytes.Buffer
	w, err := NewWriter(&buf, root)
	require.NoError(t, err)
	require.Same(t, root, w.Schema())
}

func TestWriter_EstimatedSizeGrowsWithWrites(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t))
	require.NoError(t, err)

	before := w.EstimatedSize()
	id := w.Data().Struct().Children()[0].(*column.IntegerWriter)
	for i := int64(0); i < 100; i++ {
		w.Data().Struct().WriteRow()
		id.WriteValue(i)
	}
	require.NoError(t, w.WriteBatch(100))
	require.Greater(t, w.EstimatedSize(), before)
}

func TestWriter_UserMetadataRoundTripsThroughFooter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, longStructSchema(t), WithUserMetadata(map[string][]byte{
		"producer": []byte("orc-writer-test"),
	}))
	require.NoError(t, err)

	id := w.Data().Struct().Children()[0].(*column.IntegerWriter)
	w.Data().Struct().WriteRow()
	id.WriteValue(1)
	require.NoError(t, w.WriteBatch(1))
	_, err = w.Finish()
	require.NoError(t, err)

	out := buf.Bytes()
	ps, psLen := parsePostScript(t, out)
	footerStart := len(out) - 1 - psLen - int(*ps.FooterLength)
	footerBytes := out[footerStart : footerStart+int(*ps.FooterLength)]

	footer := &pb.Footer{}
	require.NoError(t, proto.Unmarshal(footerBytes, footer))

	require.Len(t, footer.Metadata, 1)
	require.Equal(t, "producer", *footer.Metadata[0].Name)
	require.Equal(t, []byte("orc-writer-test"), footer.Metadata[0].Value)
}
