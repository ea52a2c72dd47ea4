// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/intel/fasthuff/compress/huff/internal/huffman"
)

// Container layout, all integers little-endian:
//
//	[u16 symbol count]
//	symbol count times: [u8 symbol][u32 frequency]
//	[u8 padding bits, 0..7]
//	[packed code bits, MSB-first, ending in padding zero bits]
const (
	countSize   = 2
	entrySize   = 1 + 4
	paddingSize = 1
	maxSymbols  = 256
)

// headerSize is the number of bytes in front of the packed bits.
func headerSize(symbols int) int {
	return countSize + symbols*entrySize + paddingSize
}

// appendFrequencies serializes freqs in ascending symbol order.
func appendFrequencies(dst []byte, freqs *huffman.Frequencies) ([]byte, error) {
	syms := freqs.Symbols()
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(syms)))
	for _, s := range syms {
		f := freqs[s]
		if f > math.MaxUint32 {
			return nil, fmt.Errorf("%w: symbol %#02x occurs %d times", ErrTooLarge, s, f)
		}
		dst = append(dst, s)
		dst = binary.LittleEndian.AppendUint32(dst, uint32(f))
	}
	return dst, nil
}

// container is a parsed compressed stream.
type container struct {
	freqs   huffman.Frequencies
	symbols int
	padding uint8
	payload []byte
}

// bits reports the number of code bits in the payload.
func (c *container) bits() int {
	return len(c.payload)*8 - int(c.padding)
}

func (c *container) size() int {
	return headerSize(c.symbols) + len(c.payload)
}

// offsetReader tracks how many bytes have been consumed so that
// errors can point at the broken field.
type offsetReader struct {
	r   *bufio.Reader
	off int64
}

func (o *offsetReader) readFull(buf []byte, field string) error {
	n, err := io.ReadFull(o.r, buf)
	o.off += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %s at offset %d", ErrTruncatedContainer, field, o.off)
	}
	return err
}

// readContainer parses a container from r, reading it to the end.
func readContainer(r io.Reader) (*container, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	o := &offsetReader{r: br}

	var hdr [countSize]byte
	if err := o.readFull(hdr[:], "symbol count"); err != nil {
		return nil, err
	}
	c := &container{symbols: int(binary.LittleEndian.Uint16(hdr[:]))}
	if c.symbols > maxSymbols {
		return nil, CorruptInputError(0)
	}

	var entry [entrySize]byte
	for i := 0; i < c.symbols; i++ {
		start := o.off
		if err := o.readFull(entry[:], "frequency entry"); err != nil {
			return nil, err
		}
		s, f := entry[0], binary.LittleEndian.Uint32(entry[1:])
		if f == 0 || c.freqs[s] != 0 {
			return nil, CorruptInputError(start)
		}
		c.freqs[s] = uint64(f)
	}

	start := o.off
	var pad [paddingSize]byte
	if err := o.readFull(pad[:], "padding"); err != nil {
		return nil, err
	}
	c.padding = pad[0]
	if c.padding > 7 {
		return nil, CorruptInputError(start)
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	c.payload = payload
	switch {
	case c.symbols == 0 && (c.padding != 0 || len(payload) != 0):
		return nil, CorruptInputError(start)
	case c.bits() < 0:
		return nil, fmt.Errorf("%w: %d padding bits but no code bytes", ErrTruncatedContainer, c.padding)
	}
	return c, nil
}

// shiftOffset moves a CorruptInputError reported relative to the payload so
// that it is relative to the start of the container.
func shiftOffset(err error, by int) error {
	var cerr CorruptInputError
	if errors.As(err, &cerr) {
		return cerr + CorruptInputError(by)
	}
	return err
}
