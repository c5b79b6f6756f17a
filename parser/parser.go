package parser

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"

	"vectorlib/filters"
	"vectorlib/observability"
	"vectorlib/raster"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Config controls container decoding.
type Config struct {
	// Decompressor inflates the concatenated data-chunk payload.
	// Defaults to filters.Default().
	Decompressor filters.Decompressor
	Limits       filters.Limits
	// VerifyChecksums enables CRC validation of each chunk. The default
	// matches the historical behavior: the trailing checksum is read and
	// ignored.
	VerifyChecksums bool
	Logger          observability.Logger
}

// Decoder walks the chunked container and reconstructs the pixel grid.
type Decoder struct {
	cfg Config
}

func NewDecoder(cfg Config) *Decoder {
	if cfg.Decompressor == nil {
		cfg.Decompressor = filters.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}
	return &Decoder{cfg: cfg}
}

// DecodeGrayscale parses an 8-bit grayscale image into a pixel grid.
// It fails fast: the first malformed byte aborts the decode.
func (d *Decoder) DecodeGrayscale(ctx context.Context, data []byte) (raster.Grid, raster.Header, error) {
	var hdr raster.Header
	if len(data) == 0 {
		return nil, hdr, &raster.EmptyInputError{}
	}
	if len(data) < len(signature) || !bytes.Equal(data[:len(signature)], signature) {
		return nil, hdr, &raster.FormatError{Reason: "bad signature"}
	}

	var payload []byte
	headerSeen := false
	pos := len(signature)
	for pos < len(data) {
		if len(data)-pos < 8 {
			return nil, hdr, &raster.FormatError{Reason: "truncated chunk header"}
		}
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		chunkType := data[pos+4 : pos+8]
		pos += 8
		if len(data)-pos < length+4 {
			return nil, hdr, &raster.FormatError{Reason: "truncated chunk payload"}
		}
		chunkData := data[pos : pos+length]
		pos += length
		crc := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4
		if d.cfg.VerifyChecksums {
			sum := crc32.Update(crc32.ChecksumIEEE(chunkType), crc32.IEEETable, chunkData)
			if sum != crc {
				return nil, hdr, &raster.FormatError{Reason: "chunk checksum mismatch"}
			}
		}

		switch string(chunkType) {
		case "IHDR":
			if len(chunkData) != 13 {
				return nil, hdr, &raster.FormatError{Reason: "incomplete header chunk"}
			}
			hdr = raster.Header{
				Width:        int(binary.BigEndian.Uint32(chunkData[0:4])),
				Height:       int(binary.BigEndian.Uint32(chunkData[4:8])),
				BitDepth:     chunkData[8],
				ColorType:    chunkData[9],
				Compression:  chunkData[10],
				FilterMethod: chunkData[11],
				Interlace:    chunkData[12],
			}
			headerSeen = true
		case "IDAT":
			if !headerSeen {
				return nil, hdr, &raster.FormatError{Reason: "data chunk before header chunk"}
			}
			payload = append(payload, chunkData...)
		case "IEND":
			pos = len(data)
		}
	}

	if !headerSeen {
		return nil, hdr, &raster.FormatError{Reason: "missing header chunk"}
	}
	if err := hdr.Validate(); err != nil {
		return nil, hdr, err
	}

	decompressed, err := filters.Decode(ctx, d.cfg.Decompressor, payload, d.cfg.Limits)
	if err != nil {
		return nil, hdr, &raster.FormatError{Reason: "corrupt stream"}
	}
	if len(decompressed) != hdr.Stride()*hdr.Height {
		return nil, hdr, &raster.FormatError{Reason: "size mismatch"}
	}

	grid, err := reconstruct(decompressed, hdr.Width, hdr.Height)
	if err != nil {
		return nil, hdr, err
	}
	d.cfg.Logger.Debug("decoded grayscale image",
		observability.Int("width", hdr.Width),
		observability.Int("height", hdr.Height),
		observability.Int("decompressed_bytes", len(decompressed)))
	return grid, hdr, nil
}
