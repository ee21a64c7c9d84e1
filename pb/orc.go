// Package pb holds hand-written Protocol Buffers message types for the ORC
// metadata structures (PostScript, Footer, StripeFooter, Metadata, and
// their nested Type/Stream/ColumnEncoding/Statistics messages), encoded via
// github.com/gogo/protobuf/proto's reflection-based Marshal — the same
// proto.Marshal(msg) entry point any hand-satisfied proto.Message reaches,
// with no protoc invocation involved. Each type here plays the role
// generated code would normally play: it implements the minimal
// proto.Message interface (Reset, String, ProtoMessage) and carries
// `protobuf:"..."` struct tags so Marshal can walk it by reflection.
//
// Field numbers and wire types follow the Apache ORC 0.12 orc_proto.proto
// definitions; see DESIGN.md for the one field (PostScript.magic) whose
// number could not be independently verified in this environment.
package pb

import "fmt"

// CompressionKind mirrors orc_proto.proto's CompressionKind enum; values
// must match the Apache ORC wire encoding exactly.
type CompressionKind int32

const (
	CompressionKind_NONE   CompressionKind = 0
	CompressionKind_ZLIB   CompressionKind = 1
	CompressionKind_SNAPPY CompressionKind = 2
	CompressionKind_LZO    CompressionKind = 3
	CompressionKind_LZ4    CompressionKind = 4
	CompressionKind_ZSTD   CompressionKind = 5
)

// Type_Kind mirrors orc_proto.proto's Type.Kind enum.
type Type_Kind int32

const (
	Type_BOOLEAN   Type_Kind = 0
	Type_BYTE      Type_Kind = 1
	Type_SHORT     Type_Kind = 2
	Type_INT       Type_Kind = 3
	Type_LONG      Type_Kind = 4
	Type_FLOAT     Type_Kind = 5
	Type_DOUBLE    Type_Kind = 6
	Type_STRING    Type_Kind = 7
	Type_BINARY    Type_Kind = 8
	Type_TIMESTAMP Type_Kind = 9
	Type_LIST      Type_Kind = 10
	Type_MAP       Type_Kind = 11
	Type_STRUCT    Type_Kind = 12
	Type_UNION     Type_Kind = 13
	Type_DECIMAL   Type_Kind = 14
	Type_DATE      Type_Kind = 15
	Type_VARCHAR   Type_Kind = 16
	Type_CHAR      Type_Kind = 17
)

// ColumnEncoding_Kind mirrors orc_proto.proto's ColumnEncoding.Kind enum.
// This writer only ever emits DIRECT (spec.md §4.4: "does not implement
// DICTIONARY").
type ColumnEncoding_Kind int32

const (
	ColumnEncoding_DIRECT        ColumnEncoding_Kind = 0
	ColumnEncoding_DICTIONARY    ColumnEncoding_Kind = 1
	ColumnEncoding_DIRECT_V2     ColumnEncoding_Kind = 2
	ColumnEncoding_DICTIONARY_V2 ColumnEncoding_Kind = 3
)

// Stream_Kind mirrors orc_proto.proto's Stream.Kind enum.
type Stream_Kind int32

const (
	Stream_PRESENT           Stream_Kind = 0
	Stream_DATA              Stream_Kind = 1
	Stream_LENGTH            Stream_Kind = 2
	Stream_DICTIONARY_DATA   Stream_Kind = 3
	Stream_DICTIONARY_COUNT  Stream_Kind = 4
	Stream_SECONDARY         Stream_Kind = 5
	Stream_ROW_INDEX         Stream_Kind = 6
	Stream_BLOOM_FILTER      Stream_Kind = 7
	Stream_BLOOM_FILTER_UTF8 Stream_Kind = 8
)

// PostScript is written uncompressed as the last variable-length section of
// the file (spec.md §4.7).
type PostScript struct {
	FooterLength         *uint64          `protobuf:"varint,1,opt,name=footerLength" json:"footerLength,omitempty"`
	Compression          *CompressionKind `protobuf:"varint,2,opt,name=compression,enum=orc.proto.CompressionKind" json:"compression,omitempty"`
	CompressionBlockSize *uint64          `protobuf:"varint,3,opt,name=compressionBlockSize" json:"compressionBlockSize,omitempty"`
	Version              []uint32         `protobuf:"varint,4,rep,packed,name=version" json:"version,omitempty"`
	MetadataLength       *uint64          `protobuf:"varint,5,opt,name=metadataLength" json:"metadataLength,omitempty"`
	WriterVersion        *uint32          `protobuf:"varint,6,opt,name=writerVersion" json:"writerVersion,omitempty"`
	Magic                *string          `protobuf:"bytes,8000,opt,name=magic" json:"magic,omitempty"`
}

func (m *PostScript) Reset()        { *m = PostScript{} }
func (m *PostScript) ProtoMessage() {}
func (m *PostScript) String() string { return fmt.Sprintf("%+v", *m) }

// Type is one entry of the pre-order-DFS schema listing in Footer.Types.
type Type struct {
	Kind           *Type_Kind `protobuf:"varint,1,opt,name=kind,enum=orc.proto.Type_Kind" json:"kind,omitempty"`
	Subtypes       []uint32   `protobuf:"varint,2,rep,name=subtypes" json:"subtypes,omitempty"`
	FieldNames     []string   `protobuf:"bytes,3,rep,name=fieldNames" json:"fieldNames,omitempty"`
	MaximumLength  *uint32    `protobuf:"varint,4,opt,name=maximumLength" json:"maximumLength,omitempty"`
	Precision      *uint32    `protobuf:"varint,5,opt,name=precision" json:"precision,omitempty"`
	Scale          *uint32    `protobuf:"varint,6,opt,name=scale" json:"scale,omitempty"`
}

func (m *Type) Reset()        { *m = Type{} }
func (m *Type) ProtoMessage() {}
func (m *Type) String() string { return fmt.Sprintf("%+v", *m) }

// StripeInformation locates one stripe within the file (Footer.Stripes).
type StripeInformation struct {
	Offset          *uint64 `protobuf:"varint,1,opt,name=offset" json:"offset,omitempty"`
	IndexLength     *uint64 `protobuf:"varint,2,opt,name=indexLength" json:"indexLength,omitempty"`
	DataLength      *uint64 `protobuf:"varint,3,opt,name=dataLength" json:"dataLength,omitempty"`
	FooterLength    *uint64 `protobuf:"varint,4,opt,name=footerLength" json:"footerLength,omitempty"`
	NumberOfRows    *uint64 `protobuf:"varint,5,opt,name=numberOfRows" json:"numberOfRows,omitempty"`
}

func (m *StripeInformation) Reset()        { *m = StripeInformation{} }
func (m *StripeInformation) ProtoMessage() {}
func (m *StripeInformation) String() string { return fmt.Sprintf("%+v", *m) }

// IntegerStatistics is the Integer flavor of ColumnStatistics.
type IntegerStatistics struct {
	Minimum *int64 `protobuf:"zigzag64,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum *int64 `protobuf:"zigzag64,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum     *int64 `protobuf:"zigzag64,3,opt,name=sum" json:"sum,omitempty"`
}

func (m *IntegerStatistics) Reset()        { *m = IntegerStatistics{} }
func (m *IntegerStatistics) ProtoMessage() {}
func (m *IntegerStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// DoubleStatistics is the Double flavor of ColumnStatistics.
type DoubleStatistics struct {
	Minimum *float64 `protobuf:"fixed64,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum *float64 `protobuf:"fixed64,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum     *float64 `protobuf:"fixed64,3,opt,name=sum" json:"sum,omitempty"`
}

func (m *DoubleStatistics) Reset()        { *m = DoubleStatistics{} }
func (m *DoubleStatistics) ProtoMessage() {}
func (m *DoubleStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// StringStatistics is the String/Char/VarChar flavor of ColumnStatistics.
type StringStatistics struct {
	Minimum *string `protobuf:"bytes,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum *string `protobuf:"bytes,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum     *int64  `protobuf:"zigzag64,3,opt,name=sum" json:"sum,omitempty"`
}

func (m *StringStatistics) Reset()        { *m = StringStatistics{} }
func (m *StringStatistics) ProtoMessage() {}
func (m *StringStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// BucketStatistics is the Boolean flavor of ColumnStatistics (named
// BucketStatistics in orc_proto.proto for historical reasons).
type BucketStatistics struct {
	Count []uint64 `protobuf:"varint,1,rep,name=count" json:"count,omitempty"`
}

func (m *BucketStatistics) Reset()        { *m = BucketStatistics{} }
func (m *BucketStatistics) ProtoMessage() {}
func (m *BucketStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// DecimalStatistics is the Decimal flavor of ColumnStatistics; values are
// decimal strings rendered at the column's scale (e.g. "12.34"), which
// matches how orc_proto
// carries arbitrary precision decimals over the wire (there is no i128
// wire type in protobuf).
type DecimalStatistics struct {
	Minimum *string `protobuf:"bytes,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum *string `protobuf:"bytes,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum     *string `protobuf:"bytes,3,opt,name=sum" json:"sum,omitempty"`
}

func (m *DecimalStatistics) Reset()        { *m = DecimalStatistics{} }
func (m *DecimalStatistics) ProtoMessage() {}
func (m *DecimalStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// TimestampStatistics is the Timestamp flavor of ColumnStatistics.
type TimestampStatistics struct {
	Minimum *int64 `protobuf:"zigzag64,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum *int64 `protobuf:"zigzag64,2,opt,name=maximum" json:"maximum,omitempty"`
}

func (m *TimestampStatistics) Reset()        { *m = TimestampStatistics{} }
func (m *TimestampStatistics) ProtoMessage() {}
func (m *TimestampStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// BinaryStatistics is the Binary flavor of ColumnStatistics.
type BinaryStatistics struct {
	Sum *int64 `protobuf:"zigzag64,1,opt,name=sum" json:"sum,omitempty"`
}

func (m *BinaryStatistics) Reset()        { *m = BinaryStatistics{} }
func (m *BinaryStatistics) ProtoMessage() {}
func (m *BinaryStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// ColumnStatistics wraps exactly one of the typed flavors above, plus the
// counts every column tracks (spec.md §4.5).
type ColumnStatistics struct {
	NumberOfValues *uint64                `protobuf:"varint,1,opt,name=numberOfValues" json:"numberOfValues,omitempty"`
	IntStatistics  *IntegerStatistics     `protobuf:"bytes,2,opt,name=intStatistics" json:"intStatistics,omitempty"`
	DoubleStatistics *DoubleStatistics    `protobuf:"bytes,3,opt,name=doubleStatistics" json:"doubleStatistics,omitempty"`
	StringStatistics *StringStatistics    `protobuf:"bytes,4,opt,name=stringStatistics" json:"stringStatistics,omitempty"`
	BucketStatistics *BucketStatistics    `protobuf:"bytes,5,opt,name=bucketStatistics" json:"bucketStatistics,omitempty"`
	DecimalStatistics *DecimalStatistics  `protobuf:"bytes,6,opt,name=decimalStatistics" json:"decimalStatistics,omitempty"`
	TimestampStatistics *TimestampStatistics `protobuf:"bytes,9,opt,name=timestampStatistics" json:"timestampStatistics,omitempty"`
	BinaryStatistics *BinaryStatistics    `protobuf:"bytes,8,opt,name=binaryStatistics" json:"binaryStatistics,omitempty"`
	HasNull          *bool                `protobuf:"varint,10,opt,name=hasNull" json:"hasNull,omitempty"`
}

func (m *ColumnStatistics) Reset()        { *m = ColumnStatistics{} }
func (m *ColumnStatistics) ProtoMessage() {}
func (m *ColumnStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// RowIndexEntry pairs encoder seek positions with the statistics of the
// row-group that starts there (spec.md §3, §4.4).
type RowIndexEntry struct {
	Positions   []uint64          `protobuf:"varint,1,rep,name=positions" json:"positions,omitempty"`
	Statistics  *ColumnStatistics `protobuf:"bytes,2,opt,name=statistics" json:"statistics,omitempty"`
}

func (m *RowIndexEntry) Reset()        { *m = RowIndexEntry{} }
func (m *RowIndexEntry) ProtoMessage() {}
func (m *RowIndexEntry) String() string { return fmt.Sprintf("%+v", *m) }

// RowIndex is one column's ROW_INDEX stream payload.
type RowIndex struct {
	Entry []*RowIndexEntry `protobuf:"bytes,1,rep,name=entry" json:"entry,omitempty"`
}

func (m *RowIndex) Reset()        { *m = RowIndex{} }
func (m *RowIndex) ProtoMessage() {}
func (m *RowIndex) String() string { return fmt.Sprintf("%+v", *m) }

// Stream describes one emitted stream within a stripe's footer.
type Stream struct {
	Kind   *Stream_Kind `protobuf:"varint,1,opt,name=kind,enum=orc.proto.Stream_Kind" json:"kind,omitempty"`
	Column *uint32      `protobuf:"varint,2,opt,name=column" json:"column,omitempty"`
	Length *uint64      `protobuf:"varint,3,opt,name=length" json:"length,omitempty"`
}

func (m *Stream) Reset()        { *m = Stream{} }
func (m *Stream) ProtoMessage() {}
func (m *Stream) String() string { return fmt.Sprintf("%+v", *m) }

// ColumnEncoding records the encoding strategy for one column, in column-id
// order.
type ColumnEncoding struct {
	Kind *ColumnEncoding_Kind `protobuf:"varint,1,opt,name=kind,enum=orc.proto.ColumnEncoding_Kind" json:"kind,omitempty"`
}

func (m *ColumnEncoding) Reset()        { *m = ColumnEncoding{} }
func (m *ColumnEncoding) ProtoMessage() {}
func (m *ColumnEncoding) String() string { return fmt.Sprintf("%+v", *m) }

// StripeFooter is emitted once per stripe, through its own fresh
// compression stream (spec.md §4.6 step 5).
type StripeFooter struct {
	Streams  []*Stream         `protobuf:"bytes,1,rep,name=streams" json:"streams,omitempty"`
	Columns  []*ColumnEncoding `protobuf:"bytes,2,rep,name=columns" json:"columns,omitempty"`
}

func (m *StripeFooter) Reset()        { *m = StripeFooter{} }
func (m *StripeFooter) ProtoMessage() {}
func (m *StripeFooter) String() string { return fmt.Sprintf("%+v", *m) }

// StripeStatistics carries one stripe's per-column statistics, in pre-order
// DFS column order (spec.md §4.7 step 3).
type StripeStatistics struct {
	ColStats []*ColumnStatistics `protobuf:"bytes,1,rep,name=colStats" json:"colStats,omitempty"`
}

func (m *StripeStatistics) Reset()        { *m = StripeStatistics{} }
func (m *StripeStatistics) ProtoMessage() {}
func (m *StripeStatistics) String() string { return fmt.Sprintf("%+v", *m) }

// Metadata is the file-level section holding every stripe's statistics
// (spec.md §4.7 step 3).
type Metadata struct {
	StripeStats []*StripeStatistics `protobuf:"bytes,1,rep,name=stripeStats" json:"stripeStats,omitempty"`
}

func (m *Metadata) Reset()        { *m = Metadata{} }
func (m *Metadata) ProtoMessage() {}
func (m *Metadata) String() string { return fmt.Sprintf("%+v", *m) }

// UserMetadataItem is one caller-supplied name/value pair stashed in the
// footer (spec.md §4.7 step 4's UserMetadata addition); value is opaque
// bytes, not interpreted by this writer.
type UserMetadataItem struct {
	Name  *string `protobuf:"bytes,1,req,name=name" json:"name,omitempty"`
	Value []byte  `protobuf:"bytes,2,req,name=value" json:"value,omitempty"`
}

func (m *UserMetadataItem) Reset()        { *m = UserMetadataItem{} }
func (m *UserMetadataItem) ProtoMessage() {}
func (m *UserMetadataItem) String() string { return fmt.Sprintf("%+v", *m) }

// Footer is the file-level footer message (spec.md §4.7 step 4).
type Footer struct {
	HeaderLength   *uint64              `protobuf:"varint,1,opt,name=headerLength" json:"headerLength,omitempty"`
	ContentLength  *uint64              `protobuf:"varint,2,opt,name=contentLength" json:"contentLength,omitempty"`
	Stripes        []*StripeInformation `protobuf:"bytes,3,rep,name=stripes" json:"stripes,omitempty"`
	Types          []*Type              `protobuf:"bytes,4,rep,name=types" json:"types,omitempty"`
	Metadata       []*UserMetadataItem  `protobuf:"bytes,5,rep,name=metadata" json:"metadata,omitempty"`
	NumberOfRows   *uint64              `protobuf:"varint,6,opt,name=numberOfRows" json:"numberOfRows,omitempty"`
	Statistics     []*ColumnStatistics  `protobuf:"bytes,7,rep,name=statistics" json:"statistics,omitempty"`
	RowIndexStride *uint32              `protobuf:"varint,8,opt,name=rowIndexStride" json:"rowIndexStride,omitempty"`
}

func (m *Footer) Reset()        { *m = Footer{} }
func (m *Footer) ProtoMessage() {}
func (m *Footer) String() string { return fmt.Sprintf("%+v", *m) }
