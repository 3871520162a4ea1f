package membuf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapNullAddress(t *testing.T) {
	assert := assert.New(t)

	_, err := Map(0, 4096)
	// Either refused outright or blocked by privileges; never a mapping.
	if err != ErrNotRoot {
		assert.ErrorIs(err, ErrNullAddress)
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	region := &Region{data: make([]byte, 8), size: 8}

	var progress bytes.Buffer
	err := region.Load(strings.NewReader("\x01\x02\x03\x04"), 4, &progress)
	assert.NoError(err)

	assert.Equal([]byte{1, 2, 3, 4, 0, 0, 0, 0}, region.data)
	assert.Contains(progress.String(), "100")
}

func TestLoadTooBig(t *testing.T) {
	assert := assert.New(t)

	region := &Region{data: make([]byte, 8), size: 8}

	err := region.Load(strings.NewReader(""), 16, &bytes.Buffer{})
	assert.ErrorIs(err, ErrTooBig)
}
