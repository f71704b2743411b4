package http2

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CodecConfig holds the tunables RFC 7541/7540 leave
// implementation-defined: table sizing, string length ceilings, the
// per-stream cache bound, and whether a dynamic-table-size-update seen
// mid-block is tolerated.
type CodecConfig struct {
	// MaxDynamicTableSize bounds both the encoder's and decoder's
	// dynamic table, in the RFC 7541 Section 4.1 cost units.
	MaxDynamicTableSize int `yaml:"max_dynamic_table_size"`

	// MaxStringLength rejects any single HPACK string literal whose
	// length prefix (the encoded length on the wire, before any Huffman
	// decoding) exceeds this many bytes, guarding against a hostile
	// length prefix requesting an oversized allocation.
	MaxStringLength int `yaml:"max_string_length"`

	// MaxStreamCacheSize bounds FrameCodec's per-stream HPACK codec
	// cache. The two sentinel streams (0 and 2^31-1) do not count
	// against this bound.
	MaxStreamCacheSize int `yaml:"max_stream_cache_size"`

	// StrictSizeUpdatePosition rejects a dynamic-table-size-update
	// representation that does not appear at the start of a header
	// block, per the MAY-enforce language of RFC 7541 Section 4.2.
	StrictSizeUpdatePosition bool `yaml:"strict_size_update_position"`
}

// DefaultCodecConfig returns the configuration new codecs use absent an
// explicit profile: RFC 7540's default header table size, a generous
// but bounded string length, and a small stream cache sized for
// interactive use rather than a busy multiplexed connection.
func DefaultCodecConfig() CodecConfig {
	return CodecConfig{
		MaxDynamicTableSize:      DefaultHeaderTableSize,
		MaxStringLength:          64 << 10,
		MaxStreamCacheSize:       128,
		StrictSizeUpdatePosition: false,
	}
}

// Validate checks the configuration for internally inconsistent values
// and fills in any zero-valued fields with their defaults.
func (c *CodecConfig) Validate() error {
	def := DefaultCodecConfig()

	if c.MaxDynamicTableSize < 0 {
		return fmt.Errorf("http2: max_dynamic_table_size must not be negative, got %d", c.MaxDynamicTableSize)
	}
	if c.MaxDynamicTableSize == 0 {
		c.MaxDynamicTableSize = def.MaxDynamicTableSize
	}

	if c.MaxStringLength < 0 {
		return fmt.Errorf("http2: max_string_length must not be negative, got %d", c.MaxStringLength)
	}
	if c.MaxStringLength == 0 {
		c.MaxStringLength = def.MaxStringLength
	}

	if c.MaxStreamCacheSize < 0 {
		return fmt.Errorf("http2: max_stream_cache_size must not be negative, got %d", c.MaxStreamCacheSize)
	}
	if c.MaxStreamCacheSize == 0 {
		c.MaxStreamCacheSize = def.MaxStreamCacheSize
	}

	return nil
}

// LoadCodecConfig reads a YAML codec profile from path, validates it,
// and fills in defaults for any field the file left zero-valued.
func LoadCodecConfig(path string) (CodecConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CodecConfig{}, fmt.Errorf("http2: reading codec config: %w", err)
	}

	cfg := DefaultCodecConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CodecConfig{}, fmt.Errorf("http2: parsing codec config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return CodecConfig{}, err
	}

	return cfg, nil
}
