package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"google.golang.org/protobuf/types/known/structpb"
)

// ItemsKey is the container field holding the record array.
const ItemsKey = "Items"

// SourceRecord is one scraped item. It is never mutated after reading.
type SourceRecord struct {
	index  int
	fields *structpb.Struct
}

// NewSourceRecord builds a record from plain Go values, mostly for tests and
// for callers that already hold decoded data.
func NewSourceRecord(index int, fields map[string]any) (*SourceRecord, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return &SourceRecord{index: index, fields: s}, nil
}

// Index is the record's position in the source Items array.
func (r *SourceRecord) Index() int { return r.index }

// Get returns the raw value of field. The boolean is false only when the
// field is absent; a JSON null is returned as a present NullValue.
func (r *SourceRecord) Get(field string) (*structpb.Value, bool) {
	v, ok := r.fields.GetFields()[field]
	return v, ok
}

// Has reports whether field is present, null included.
func (r *SourceRecord) Has(field string) bool {
	_, ok := r.Get(field)
	return ok
}

// FieldNames returns the record's field names in sorted order.
func (r *SourceRecord) FieldNames() []string {
	names := make([]string, 0, len(r.fields.GetFields()))
	for name := range r.fields.GetFields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source is a decoded snapshot.
type Source struct {
	Path  string
	Items []*SourceRecord
}

// DestinationRecord is one cleaned item with ordered keys.
type DestinationRecord struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewDestinationRecord returns an empty record.
func NewDestinationRecord() *DestinationRecord {
	return &DestinationRecord{fields: orderedmap.New[string, any]()}
}

// Set stores value under field. A new field goes last; an existing field
// keeps its position.
func (r *DestinationRecord) Set(field string, value any) {
	r.fields.Set(field, value)
}

// Get returns the value stored under field.
func (r *DestinationRecord) Get(field string) (any, bool) {
	return r.fields.Get(field)
}

// Has reports whether field is set.
func (r *DestinationRecord) Has(field string) bool {
	_, ok := r.fields.Get(field)
	return ok
}

// Keys returns the field names in output order.
func (r *DestinationRecord) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of fields.
func (r *DestinationRecord) Len() int { return r.fields.Len() }

// MarshalJSON encodes the record with keys in insertion order. HTML
// characters in values are written as they are.
func (r *DestinationRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for pair, first := r.fields.Oldest(), true; pair != nil; pair, first = pair.Next(), false {
		if !first {
			buf.WriteByte(',')
		}
		if err := encodeValue(enc, &buf, pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(enc, &buf, pair.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue writes v through enc and drops the newline Encode appends.
func encodeValue(enc *json.Encoder, buf *bytes.Buffer, v any) error {
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Destination is the cleaned document written by WriteDestination.
type Destination struct {
	Items []*DestinationRecord `json:"Items"`
}

// NewDestination returns a container with room for n items. Items is never
// nil so an empty run still encodes as {"Items":[]}.
func NewDestination(n int) *Destination {
	return &Destination{Items: make([]*DestinationRecord, 0, n)}
}

// Append adds rec at the end, preserving source order.
func (d *Destination) Append(rec *DestinationRecord) {
	d.Items = append(d.Items, rec)
}
