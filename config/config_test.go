package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfig = `
# Chip topology
cells_per_frame  = 0x40_000
ring_buffer_size = 4G

// Generation settings
adc_per_nucleotide = 8
random_seed        = 12345
data_frames        = 5
filler_value       = 0x0E
diag_values        = 0xAA, 0x55

nucleotide_file   = nucleotides.def
fragment_file     = fragments.def
distribution_file = distribution.def
output_file       = frames.bin

future_key = ignored
`

func TestParseConfig(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse(strings.NewReader(testConfig))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(0x40000, cfg.CellsPerFrame)
	assert.Equal(uint64(4)<<30, cfg.RingBufferSize)
	assert.Equal(8, cfg.AdcPerNucleotide)
	assert.Equal(int64(12345), cfg.RandomSeed)
	assert.Equal(5, cfg.DataFrames)
	assert.Equal(uint8(0x0E), cfg.FillerValue)
	assert.Equal([]uint8{0xAA, 0x55}, cfg.DiagValues)
	assert.Equal("nucleotides.def", cfg.NucleotideFile)
	assert.Equal("fragments.def", cfg.FragmentFile)
	assert.Equal("distribution.def", cfg.DistributionFile)
	assert.Equal("frames.bin", cfg.OutputFile)
}

func TestParseConfigAlias(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse(strings.NewReader("contig_size = 256M\n"))
	assert.NoError(err)
	assert.Equal(uint64(256)<<20, cfg.RingBufferSize)
}

func TestParseConfigBadValue(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse(strings.NewReader("data_frames = 5\nring_buffer_size = 9T\n"))
	assert.ErrorIs(err, ErrSuffix(""))
	assert.Nil(cfg)
	assert.Contains(err.Error(), "line 2")
}
