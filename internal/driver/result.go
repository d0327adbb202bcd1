package driver

import (
	"quill/internal/diag"
	"quill/lit"
)

// Record describes one successfully parsed literal.
type Record struct {
	Path  string `json:"path,omitempty" msgpack:"path"`
	Line  int    `json:"line,omitempty" msgpack:"line"`
	Kind  string `json:"kind" msgpack:"kind"`
	Raw   string `json:"raw" msgpack:"raw"`
	Value string `json:"value" msgpack:"value"`
	// Hashes is the fence length of a raw literal; nil for escaped ones.
	Hashes *uint32 `json:"hashes,omitempty" msgpack:"hashes"`
}

// FileResult is the outcome of checking one literal list file.
type FileResult struct {
	Path     string
	Literals int // number of literal entries seen, valid or not
	Records  []Record
	Bag      *diag.Bag
}

// RecordOf flattens a parsed literal into an output record.
func RecordOf(path string, line int, l lit.Literal[string]) Record {
	r := Record{
		Path: path,
		Line: line,
		Raw:  l.Raw(),
	}
	switch v := l.(type) {
	case lit.StringLit[string]:
		r.Kind = "string"
		r.Value = v.Value()
		if n, ok := v.NumHashes(); ok {
			r.Hashes = &n
		}
	case lit.ByteStringLit[string]:
		r.Kind = "bytestring"
		r.Value = string(v.Value())
		if n, ok := v.NumHashes(); ok {
			r.Hashes = &n
		}
	case lit.BoolLit[string]:
		r.Kind = "bool"
		r.Value = v.String()
	}
	return r
}
