// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package membuf maps a physical memory range into the process and
// streams a generated data file into it.
package membuf

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Region is a physical memory range mapped through /dev/mem.
type Region struct {
	data   []byte
	offset int // Page-alignment offset of the requested address.
	size   int
}

// Map maps size bytes of physical memory at addr. The mapping is
// page-aligned internally; Bytes always starts at addr.
func Map(addr uint64, size int) (region *Region, err error) {
	if os.Geteuid() != 0 {
		err = ErrNotRoot
		return
	}

	// Minimal effort to keep the user from blowing away their system.
	if addr == 0 {
		err = ErrNullAddress
		return
	}

	fd, err := unix.Open("/dev/mem", unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return
	}
	defer unix.Close(fd)

	page := uint64(unix.Getpagesize())
	base := addr &^ (page - 1)
	span := int(addr-base) + size

	data, err := unix.Mmap(fd, int64(base), span, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return
	}

	region = &Region{
		data:   data,
		offset: int(addr - base),
		size:   size,
	}

	return
}

// Bytes returns the mapped range at the requested address.
func (region *Region) Bytes() []byte {
	return region.data[region.offset : region.offset+region.size]
}

// Close unmaps the region.
func (region *Region) Close() (err error) {
	err = unix.Munmap(region.data)
	region.data = nil
	return
}

// blockSize is the unit of the sequential copy, 1 GiB.
const blockSize = 1 << 30

// Load streams size bytes from input into the region, displaying an
// incremental completion percentage on the progress writer.
func (region *Region) Load(input io.Reader, size int64, progress io.Writer) (err error) {
	dst := region.Bytes()
	if size > int64(len(dst)) {
		err = ErrTooBig
		return
	}

	fmt.Fprintf(progress, "Percent loaded =   0")

	var loaded int64
	for loaded < size {
		block := size - loaded
		if block > blockSize {
			block = blockSize
		}

		if _, err = io.ReadFull(input, dst[loaded:loaded+block]); err != nil {
			return
		}
		loaded += block

		fmt.Fprintf(progress, "\b\b\b%3d", 100*loaded/size)
	}

	fmt.Fprintf(progress, "\b\b\b100\n")

	return
}
