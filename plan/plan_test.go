package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sfgen/genome"
)

// testRegistry builds a registry with fragment x of length 5 and
// fragment y of length 2.
func testRegistry(t *testing.T) *genome.Registry {
	t.Helper()

	reg := &genome.Registry{AdcPerNucleotide: 1}
	err := reg.ParseFragments(strings.NewReader("x = 1, 2, 3, 4, 5\ny = 8, 9\n"))
	if err != nil {
		t.Fatal(err)
	}

	return reg
}

func TestParseDistribution(t *testing.T) {
	assert := assert.New(t)

	reg := testRegistry(t)

	input := []string{
		"# comment",
		"this line has no delimiter and is skipped",
		"1, 2048, 1 $ x",
		"7 $ y,",
		"5, 9 $ y, x",
	}

	records, err := ParseDistribution(strings.NewReader(strings.Join(input, "\n")), reg, 2048)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(3, len(records))

	assert.Equal(1, records[0].First)
	assert.Equal(2048, records[0].Last)
	assert.Equal(1, records[0].Step)
	assert.Equal(5, len(records[0].Seq))

	// last defaults to first, step defaults to 1
	assert.Equal(7, records[1].First)
	assert.Equal(7, records[1].Last)
	assert.Equal(1, records[1].Step)
	assert.Equal(2, len(records[1].Seq))

	// trailing names concatenate in order
	assert.Equal(5, records[2].First)
	assert.Equal(9, records[2].Last)
	assert.Equal(7, len(records[2].Seq))
	assert.Equal(uint8(8), records[2].Seq[0].Value)
	assert.Equal(uint8(1), records[2].Seq[2].Value)
}

func TestParseDistributionCellOutOfRange(t *testing.T) {
	assert := assert.New(t)

	reg := testRegistry(t)

	_, err := ParseDistribution(strings.NewReader("0, 5, 1 $ x\n"), reg, 2048)
	assert.ErrorIs(err, ErrCellRange(0))

	_, err = ParseDistribution(strings.NewReader("2049 $ x\n"), reg, 2048)
	assert.ErrorIs(err, ErrCellRange(0))
}

func TestParseDistributionUndefinedFragment(t *testing.T) {
	assert := assert.New(t)

	reg := testRegistry(t)

	_, err := ParseDistribution(strings.NewReader("1 $ nope\n"), reg, 2048)
	assert.ErrorIs(err, ErrUndefinedFragment(""))
	assert.Contains(err.Error(), "nope")
}

func TestLongestSequence(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, LongestSequence(nil))

	records := []Record{
		{Seq: make([]genome.Item, 3)},
		{Seq: make([]genome.Item, 7)},
		{Seq: make([]genome.Item, 5)},
	}
	assert.Equal(7, LongestSequence(records))
}
