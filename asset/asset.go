// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package asset is an lz4 backed archive format for shipping engine
// assets (meshes, shader snippets). The archive itself is uncompressed
// and carries a full index up front, so it can be memory mapped and
// read concurrently; every entry is individually lz4 compressed and
// decompressed on the fly when read. Space efficiency is secondary to
// getting assets from disk to a usable state fast.
package asset

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFileFormat = errors.New("asset: corrupted or not a gap archive")
	ErrNotFound   = errors.New("asset: no entry with that name")
)

const (
	magic            = "GAP\x00"
	magicLength      = 4
	headerSizeLength = binary.MaxVarintLen64
)

// IndexEntry is the index record of one archive entry. Offset is
// relative to the start of the data section.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the archive header: provenance plus the entry index.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func encodeHeader(h *Header) ([]byte, error) {
	var encoded bytes.Buffer
	if err := gob.NewEncoder(&encoded).Encode(h); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func decodeHeader(h *Header, raw []byte) error {
	return gob.NewDecoder(bytes.NewReader(raw)).Decode(h)
}

func int64ToBinary(num int64) []byte {
	buf := make([]byte, headerSizeLength)
	binary.PutVarint(buf, num)
	return buf
}

func binaryToInt64(raw []byte) (int64, error) {
	num, err := binary.ReadVarint(bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	return num, nil
}
