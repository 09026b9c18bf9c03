// Package dataset reads and writes dataset files: column metadata plus a
// record set, msgpack-encoded and lz4-compressed behind a small binary
// header. Datasets feed a view's data source; the engine itself never touches
// the filesystem.
package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// MagicBytes identify a go-tabview dataset file
	MagicBytes = "GTVW"
	// FormatVersion is the current file format version
	FormatVersion = 1
	// FileExtension for the binary format
	FileExtension = ".gtvw"

	// FlagUncompressed marks a payload stored without lz4 compression, for
	// blocks the compressor cannot shrink
	FlagUncompressed uint8 = 1 << 0
)

// FileHeader is the fixed-size prefix of a dataset file
type FileHeader struct {
	Magic    [4]byte // "GTVW"
	Version  uint8   // Format version
	Flags    uint8   // Reserved for future use
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer, flags uint8) error {
	header := FileHeader{
		Magic:   [4]byte{'G', 'T', 'V', 'W'},
		Version: FormatVersion,
		Flags:   flags,
	}
	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}
