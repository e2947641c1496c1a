// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in the
// header, it will be overwritten on write.
func NewBuilder(header Header) *Builder {
	return &Builder{header: header}
}

// Builder assembles an archive in memory. Archives are versioned and
// cannot be appended to; build a new one instead. Add compresses
// eagerly, WriteTo only assembles.
type Builder struct {
	header Header

	mutex sync.Mutex
	files []pendingFile
}

type pendingFile struct {
	name       string
	size       int64
	compressed []byte
}

// Add appends data under the given name. Blocks until lz4 finishes
// compressing. Safe to call concurrently from multiple goroutines.
func (b *Builder) Add(name string, data []byte) error {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = append(b.files, pendingFile{
		name:       name,
		size:       int64(len(data)),
		compressed: buf.Bytes(),
	})
	return nil
}

// WriteTo bundles everything added so far into a ready-to-use archive.
// The builder is drained afterwards.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	header.Index = nil
	var offset int64
	for _, f := range b.files {
		header.Index = append(header.Index, IndexEntry{
			Name:           f.name,
			Offset:         offset,
			Size:           f.size,
			CompressedSize: int64(len(f.compressed)),
		})
		offset += int64(len(f.compressed))
	}

	rawHeader, err := encodeHeader(&header)
	if err != nil {
		return 0, err
	}

	var written int64
	for _, chunk := range [][]byte{[]byte(magic), int64ToBinary(int64(len(rawHeader))), rawHeader} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	for _, f := range b.files {
		n, err := w.Write(f.compressed)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	b.files = b.files[:0]
	return written, nil
}
