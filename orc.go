// Package orc implements a writer for the Apache ORC (Optimized Row
// Columnar) binary file format: header, stripes of DIRECT-encoded,
// optionally compressed column streams, a row-count-indexed footer, and a
// trailing PostScript (spec.md §1, §2).
//
// # Basic usage
//
//	root, err := schema.NewStruct(
//	    schema.Field{Name: "id", Type: schema.NewLong()},
//	    schema.Field{Name: "name", Type: schema.NewString()},
//	)
//	w, err := orc.NewWriter(sink, root)
//
//	data := w.Data().Struct()
//	id, name := data.Children()[0].(*column.IntegerWriter), data.Children()[1].(*column.StringWriter)
//	for _, row := range rows {
//	    data.WriteRow()
//	    id.WriteValue(row.ID)
//	    name.WriteValue(row.Name)
//	}
//	if err := w.WriteBatch(int64(len(rows))); err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := w.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// Large inputs are written incrementally across many WriteBatch calls;
// Writer flushes a stripe on its own once the pending one's estimated size
// crosses the configured stripe size (spec.md §4.6).
package orc

import (
	"fmt"
	"io"
	"sort"

	"github.com/arloliu/orc/column"
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/internal/ioutil"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/schema"
	"github.com/arloliu/orc/stripe"
	"github.com/gogo/protobuf/proto"
)

// header is the three-byte magic every ORC file opens with (spec.md §4.7
// step 1).
var header = []byte("ORC")

// RootColumnHandle is the entry point write calls navigate from; it wraps
// the schema's root column writer (spec.md §6's "data() -> &mut
// RootColumnHandle").
type RootColumnHandle struct {
	root column.Writer
}

// Struct unwraps the root handle as its Struct writer. Every conforming
// ORC file has a Struct at the schema root, so this is the only
// unwrap the root handle offers.
func (h RootColumnHandle) Struct() *column.StructWriter {
	return h.root.(*column.StructWriter)
}

// Writer assembles one ORC file onto a sink, one stripe at a time
// (spec.md §4.7, §5). It is not safe for concurrent use.
type Writer struct {
	sink   *ioutil.CountingWriter
	schema *schema.Schema
	cfg    *Config

	stripe *stripe.Stripe

	stripeInfos []*pb.StripeInformation
	stripeStats []*pb.StripeStatistics

	totalRows uint64
	done      bool
}

// NewWriter constructs a Writer over sink for the given schema, writes the
// file header immediately, and applies the supplied options to build a
// Config (spec.md §4.7's NewConfig defaults apply to any option left
// unset). root must be a Struct schema.
func NewWriter(sink io.Writer, root *schema.Schema, opts ...Option) (*Writer, error) {
	if root.Category != schema.Struct {
		return nil, fmt.Errorf("orc: schema root must be a struct, got %s", root.Category)
	}

	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	schema.Assign(root)

	cw := ioutil.NewCountingWriter(sink)
	if _, err := cw.Write(header); err != nil {
		return nil, err
	}

	st := stripe.New(root, cfg.compression, cfg.blockSize, cfg.rowIndexStride, uint64(cw.Pos()))

	return &Writer{sink: cw, schema: root, cfg: cfg, stripe: st}, nil
}

// Data returns the handle to navigate into the column tree and write
// values (spec.md §6).
func (w *Writer) Data() RootColumnHandle {
	return RootColumnHandle{root: w.stripe.Root()}
}

// Schema returns the root schema this Writer was constructed with.
func (w *Writer) Schema() *schema.Schema {
	return w.schema
}

// EstimatedSize returns the running estimated byte size of the file so
// far: bytes already flushed for prior stripes plus the pending stripe's
// own estimate. A caller can use this to decide when to roll over to a new
// file, distinct from the per-stripe rollover WriteBatch drives on its own.
func (w *Writer) EstimatedSize() uint64 {
	return uint64(w.sink.Pos()) + uint64(w.stripe.EstimatedSize())
}

// WriteBatch commits n rows to the current stripe: it verifies every
// column received exactly the right number of values for those n rows
// (spec.md §4.4's verify_row_count), then flushes the stripe if its
// estimated size has crossed the configured threshold.
func (w *Writer) WriteBatch(n int64) error {
	if w.done {
		return errs.ErrAlreadyDone
	}

	w.stripe.WriteBatch(n)
	w.totalRows += uint64(n)

	if int64(w.stripe.EstimatedSize()) >= w.cfg.stripeSize {
		return w.flushStripe()
	}
	return nil
}

func (w *Writer) flushStripe() error {
	info, stats := w.stripe.Flush(w.sink)
	if info == nil {
		return nil
	}
	w.stripeInfos = append(w.stripeInfos, info)
	w.stripeStats = append(w.stripeStats, stats)
	return nil
}

// Finish flushes any pending stripe, writes the metadata, footer, and
// postscript sections (spec.md §4.7 steps 3-6), and returns the
// byte-counting io.Writer that wraps the sink given to NewWriter, not that
// sink value itself. The Writer must not be used again afterward. Panics
// raised for contract or internal-invariant violations are not recovered.
func (w *Writer) Finish() (io.Writer, error) {
	if w.done {
		return nil, errs.ErrAlreadyDone
	}
	if w.totalRows == 0 {
		return nil, errs.ErrNoRows
	}
	w.done = true

	if err := w.flushStripe(); err != nil {
		return nil, err
	}

	contentLength := uint64(w.sink.Pos()) - uint64(len(header))

	metadataLength, err := w.writeMetadata()
	if err != nil {
		return nil, err
	}

	footerLength, err := w.writeFooter(contentLength)
	if err != nil {
		return nil, err
	}

	if err := w.writePostScript(metadataLength, footerLength); err != nil {
		return nil, err
	}

	return w.sink, nil
}

func (w *Writer) writeMetadata() (uint64, error) {
	meta := &pb.Metadata{StripeStats: w.stripeStats}
	data, err := proto.Marshal(meta)
	if err != nil {
		errs.NewInternalError(err)
	}

	stream, err := compress.NewStream(w.cfg.compression, w.cfg.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	if _, err := stream.Write(data); err != nil {
		return 0, err
	}

	before := w.sink.Pos()
	if _, err := stream.Finish(w.sink); err != nil {
		return 0, err
	}
	return uint64(w.sink.Pos() - before), nil
}

func (w *Writer) writeFooter(contentLength uint64) (uint64, error) {
	headerLen := uint64(len(header))
	numRows := w.totalRows
	stride := uint32(w.cfg.rowIndexStride)

	footer := &pb.Footer{
		HeaderLength:   &headerLen,
		ContentLength:  &contentLength,
		Stripes:        w.stripeInfos,
		Types:          schemaToTypes(w.schema),
		Metadata:       userMetadataItems(w.cfg.userMetadata),
		NumberOfRows:   &numRows,
		Statistics:     mergeAllStripeStatistics(w.stripeStats),
		RowIndexStride: &stride,
	}

	data, err := proto.Marshal(footer)
	if err != nil {
		errs.NewInternalError(err)
	}

	stream, err := compress.NewStream(w.cfg.compression, w.cfg.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	if _, err := stream.Write(data); err != nil {
		return 0, err
	}

	before := w.sink.Pos()
	if _, err := stream.Finish(w.sink); err != nil {
		return 0, err
	}
	return uint64(w.sink.Pos() - before), nil
}

// userMetadataItems converts the configured name/value map into the
// repeated footer field, sorting by name so Finish's output is
// deterministic across runs with the same Config.
func userMetadataItems(meta map[string][]byte) []*pb.UserMetadataItem {
	if len(meta) == 0 {
		return nil
	}
	names := make([]string, 0, len(meta))
	for name := range meta {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]*pb.UserMetadataItem, len(names))
	for i, name := range names {
		n := name
		items[i] = &pb.UserMetadataItem{Name: &n, Value: meta[n]}
	}
	return items
}

// writePostScript writes the PostScript message uncompressed, followed by
// its own length as a single trailing byte (spec.md §4.7 steps 5-6).
func (w *Writer) writePostScript(metadataLength, footerLength uint64) error {
	kind := pb.CompressionKind(w.cfg.compression)
	blockSize := uint64(w.cfg.blockSize)
	version := uint32(writerVersion)
	magic := "ORC"

	ps := &pb.PostScript{
		FooterLength:         &footerLength,
		Compression:          &kind,
		CompressionBlockSize: &blockSize,
		Version:              []uint32{0, 12},
		MetadataLength:       &metadataLength,
		WriterVersion:        &version,
		Magic:                &magic,
	}

	data, err := proto.Marshal(ps)
	if err != nil {
		errs.NewInternalError(err)
	}
	if len(data) > 255 {
		errs.NewInternalError(fmt.Errorf("postscript length %d exceeds 255 bytes", len(data)))
	}

	if _, err := w.sink.Write(data); err != nil {
		return err
	}
	_, err = w.sink.Write([]byte{byte(len(data))})
	return err
}
