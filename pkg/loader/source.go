// Package loader reads page definition documents (YAML or JSON) into page
// models. Sources identify where a definition originated so the loader can
// operate on files, fs.FS entries or raw bytes without leaking
// implementation details.
package loader

import "path/filepath"

// Source identifies where a page definition originated.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing at an on-disk definition.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source identifying a definition inside an fs.FS
// supplied to the loader.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Kind() SourceKind { return SourceKindBytes }
func (s bytesSource) Location() string { return s.name }

// SourceFromBytes returns a Source wrapping an in-memory definition. The
// name is used for format sniffing and error messages only.
func SourceFromBytes(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}
