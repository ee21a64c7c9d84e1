package stripe

import (
	"bytes"
	"testing"

	"github.com/arloliu/orc/column"
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/internal/ioutil"
	"github.com/arloliu/orc/schema"
	"github.com/stretchr/testify/require"
)

func buildLongStructSchema(t *testing.T) *schema.Schema {
	t.Helper()
	root, err := schema.NewStruct(schema.Field{Name: "x", Type: schema.NewLong()})
	require.NoError(t, err)
	schema.Assign(root)
	return root
}

func TestStripe_FlushEmptyIsNoOp(t *testing.T) {
	s := buildLongStructSchema(t)
	st := New(s, compress.None, 0, 10000, 3)

	var buf bytes.Buffer
	sink := ioutil.NewCountingWriter(&buf)
	info, stats := st.Flush(sink)
	require.Nil(t, info)
	require.Nil(t, stats)
	require.Equal(t, 0, buf.Len())
}

func TestStripe_FlushWritesRegionsAndAdvancesOffset(t *testing.T) {
	s := buildLongStructSchema(t)

	var buf bytes.Buffer
	sink := ioutil.NewCountingWriter(&buf)
	_, _ = sink.Write([]byte("ORC")) // header, so the sink's position matches the stripe's starting offset

	st := New(s, compress.None, 0, 10000, 3)
	structRoot := st.Root().(*column.StructWriter)
	longChild := structRoot.Children()[0].(*column.IntegerWriter)

	for i := int64(0); i < 10; i++ {
		structRoot.WriteRow()
		longChild.WriteValue(i)
	}
	st.WriteBatch(10)

	info, stats := st.Flush(sink)
	require.NotNil(t, info)
	require.NotNil(t, stats)
	require.Equal(t, uint64(10), *info.NumberOfRows)
	require.Equal(t, uint64(3), *info.Offset)
	require.Equal(t, uint64(buf.Len()), st.Offset())
	require.Equal(t, *info.IndexLength+*info.DataLength+*info.FooterLength, uint64(buf.Len())-3)
}
