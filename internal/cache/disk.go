// Package cache persists synthesized chunk audio between runs so a book
// can be re-converted without paying for synthesis twice. Entries are
// zstd-compressed raw float32 sample buffers keyed by the synthesis
// request fingerprint. Caching is opt-in; a run without it touches no
// persistent state.
package cache

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Disk is an on-disk sample store. It satisfies the tts.Cache interface.
type Disk struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	mu      sync.Mutex
}

// NewDisk opens (and creates, if needed) a cache directory.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Disk{dir: dir, encoder: encoder, decoder: decoder}, nil
}

// Get retrieves the samples stored under key. A missing or corrupted
// entry is a miss; corrupted entries are removed so the next Put can
// replace them.
func (d *Disk) Get(key string) ([]float32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}

	data, err := d.decoder.DecodeAll(raw, nil)
	if err != nil || len(data)%4 != 0 {
		os.Remove(d.path(key))
		return nil, false
	}

	samples := make([]float32, len(data)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return samples, true
}

// Put stores samples under key. The write goes through a temp file and a
// rename so a crash cannot leave a truncated entry behind.
func (d *Disk) Put(key string, samples []float32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(s))
	}
	compressed := d.encoder.EncodeAll(data, nil)

	tmp := d.path(key) + ".tmp"
	if err := os.WriteFile(tmp, compressed, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, d.path(key)); err != nil {
		return fmt.Errorf("finalize cache entry: %w", err)
	}
	return nil
}

func (d *Disk) path(key string) string {
	return filepath.Join(d.dir, key+".f32.zst")
}
