// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"io"
	"strings"

	"github.com/pierrec/lz4"
)

// Open opens an archive from r, checking the magic and decoding the
// index. Returns ErrFileFormat when r is not a gap archive.
func Open(r io.ReaderAt) (*Archive, error) {
	rawMagic := make([]byte, magicLength)
	if num, err := r.ReadAt(rawMagic, 0); err != nil {
		return nil, err
	} else if num < magicLength || strings.Compare(string(rawMagic), magic) != 0 {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, headerSizeLength)
	if num, err := r.ReadAt(headerSizeBytes, magicLength); err != nil {
		return nil, err
	} else if num < headerSizeLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToInt64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, magicLength+headerSizeLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := decodeHeader(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	return &Archive{
		reader: r,
		header: header,
		base:   magicLength + headerSizeLength + headerSize,
	}, nil
}

// Archive provides concurrent reads from a gap archive through any
// io.ReaderAt, typically a memory map.
type Archive struct {
	reader io.ReaderAt
	header Header
	base   int64
}

// Header returns the decoded archive header.
func (a *Archive) Header() Header {
	return a.header
}

// List returns the entry names in archive order.
func (a *Archive) List() []string {
	names := make([]string, len(a.header.Index))
	for i, entry := range a.header.Index {
		names[i] = entry.Name
	}
	return names
}

// Open returns a reader decompressing the named entry on the fly.
func (a *Archive) Open(name string) (io.Reader, error) {
	entry, ok := a.find(name)
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, a.base+entry.Offset, entry.CompressedSize)
	return lz4.NewReader(section), nil
}

// ReadAll returns the entire decompressed contents of the named entry.
func (a *Archive) ReadAll(name string) ([]byte, error) {
	entry, ok := a.find(name)
	if !ok {
		return nil, ErrNotFound
	}
	reader, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	data := make([]byte, entry.Size)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (a *Archive) find(name string) (IndexEntry, bool) {
	for _, entry := range a.header.Index {
		if entry.Name == name {
			return entry, true
		}
	}
	return IndexEntry{}, false
}
