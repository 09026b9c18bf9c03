package dataset

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/dtolley1/go-tabview/pkg/domain"
)

// Save writes the dataset to path in the binary format: header, uncompressed
// payload length, then an lz4 block of the msgpack-encoded dataset.
func Save(path string, ds *domain.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	payload, err := msgpack.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(payload)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(payload, compressed, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}

	// n == 0 means the block is incompressible; store it raw
	var flags uint8
	if n == 0 {
		flags = FlagUncompressed
		compressed = payload
	} else {
		compressed = compressed[:n]
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := WriteHeader(file, flags); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(file, binary.LittleEndian, uint32(len(payload))); err != nil {
		return fmt.Errorf("failed to write payload length: %w", err)
	}
	if _, err := file.Write(compressed); err != nil {
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	return nil
}

// Load reads a dataset from the binary format written by Save.
func Load(path string) (*domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	header, err := ReadHeader(file)
	if err != nil {
		return nil, fmt.Errorf("invalid file header: %w", err)
	}

	var payloadLen uint32
	if err := binary.Read(file, binary.LittleEndian, &payloadLen); err != nil {
		return nil, fmt.Errorf("failed to read payload length: %w", err)
	}

	compressed, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed data: %w", err)
	}

	var payload []byte
	if header.Flags&FlagUncompressed != 0 {
		payload = compressed
	} else {
		payload = make([]byte, payloadLen)
		n, err := lz4.UncompressBlock(compressed, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		payload = payload[:n]
	}

	var ds domain.Dataset
	if err := msgpack.Unmarshal(payload, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadJSON reads a dataset from a plain JSON file.
func LoadJSON(path string) (*domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadAny picks the loader by file extension: .gtvw for the binary format,
// .json for JSON.
func LoadAny(path string) (*domain.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case FileExtension:
		return Load(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported dataset extension: %s", filepath.Ext(path))
	}
}
