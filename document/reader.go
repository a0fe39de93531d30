package document

import (
	"bytes"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadSource loads and decodes the snapshot at path. Every failure,
// including a missing file, is a *MalformedInputError; the underlying fs
// error stays reachable through errors.Is.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Index: -1, Reason: "read", Err: err}
	}
	src, err := ParseSource(data)
	if err != nil {
		if mErr, ok := err.(*MalformedInputError); ok {
			mErr.Path = path
		}
		return nil, err
	}
	src.Path = path
	return src, nil
}

// ParseSource decodes a snapshot held in memory. Scrape exports written by
// the legacy tooling may carry a UTF-8 byte order mark, which is ignored.
func ParseSource(data []byte) (*Source, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var root structpb.Struct
	if err := protojson.Unmarshal(data, &root); err != nil {
		return nil, &MalformedInputError{Index: -1, Reason: "invalid JSON object", Err: err}
	}

	itemsVal, ok := root.GetFields()[ItemsKey]
	if !ok {
		return nil, &MalformedInputError{Index: -1, Reason: `missing "Items"`}
	}
	list := itemsVal.GetListValue()
	if list == nil {
		return nil, &MalformedInputError{Index: -1, Reason: `"Items" is not an array`}
	}

	src := &Source{Items: make([]*SourceRecord, 0, len(list.GetValues()))}
	for i, v := range list.GetValues() {
		obj := v.GetStructValue()
		if obj == nil {
			return nil, &MalformedInputError{Index: i, Reason: "item is not an object"}
		}
		src.Items = append(src.Items, &SourceRecord{index: i, fields: obj})
	}
	return src, nil
}
