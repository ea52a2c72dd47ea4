// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitio

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"

	icza "github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

// bitstring renders the low ns[i] bits of each bs[i], in order, as
// colon-separated zero-padded bytes.
func bitstring(bs []uint64, ns []uint8) string {
	var sb strings.Builder
	for i, b := range bs {
		if ns[i] == 0 {
			continue
		}
		s := fmt.Sprintf("%064b", b)
		sb.WriteString(s[64-int(ns[i]):])
	}
	s := sb.String()
	for len(s)%8 != 0 {
		s += "0"
	}
	var out []string
	for len(s) > 0 {
		out = append(out, s[:8])
		s = s[8:]
	}
	return strings.Join(out, ":")
}

func render(b []byte) string {
	var out []string
	for _, x := range b {
		out = append(out, fmt.Sprintf("%08b", x))
	}
	return strings.Join(out, ":")
}

func randomCodes(rng *rand.Rand, n int) ([]uint64, []uint8) {
	bs := make([]uint64, n)
	ns := make([]uint8, n)
	for i := range bs {
		ns[i] = uint8(rng.Intn(65))
		bs[i] = rng.Uint64() & lowMask(uint(ns[i]))
	}
	return bs, ns
}

func TestWriteBits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		bs, ns := randomCodes(rng, 64)
		w := NewWriter(0)
		total := 0
		for i := range bs {
			require.NoError(t, w.WriteBits(bs[i], ns[i]))
			total += int(ns[i])
		}
		require.Equal(t, total, w.Len())
		padding, err := w.Flush()
		require.NoError(t, err)
		require.Equal(t, uint8((8-total%8)%8), padding)
		require.Equal(t, bitstring(bs, ns), render(w.Bytes()))
	}
}

// flushed returns the padded output of w.
func flushed(t *testing.T, w *Writer) []byte {
	t.Helper()
	_, err := w.Flush()
	require.NoError(t, err)
	return w.Bytes()
}

func TestWriteWideMatchesWriteBits(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		bs, ns := randomCodes(rng, 97)
		narrow, wide, mixed := NewWriter(0), NewWriter(0), NewWriter(0)
		var ref bytes.Buffer
		iw := icza.NewWriter(&ref)
		for i := range bs {
			require.NoError(t, narrow.WriteBits(bs[i], ns[i]))
			require.NoError(t, wide.WriteWide(bs[i], ns[i]))
			if i%3 == 0 {
				require.NoError(t, mixed.WriteBits(bs[i], ns[i]))
			} else {
				require.NoError(t, mixed.WriteWide(bs[i], ns[i]))
			}
			require.NoError(t, iw.WriteBits(bs[i], ns[i]))
		}
		require.Equal(t, narrow.Len(), wide.Len())
		require.Equal(t, narrow.Len(), mixed.Len())
		_, err := iw.Align()
		require.NoError(t, err)
		want := ref.Bytes()
		require.Equal(t, want, flushed(t, narrow))
		require.Equal(t, want, flushed(t, wide))
		require.Equal(t, want, flushed(t, mixed))
	}
}

func TestWriterFixed(t *testing.T) {
	w := NewWriter(16)
	for _, bit := range []uint64{0, 1, 1, 1, 0, 1} {
		require.NoError(t, w.WriteBits(bit, 1))
	}
	require.Empty(t, w.Bytes(), "partial byte stays pending")
	padding, err := w.Flush()
	require.NoError(t, err)
	require.Equal(t, uint8(2), padding)
	require.Equal(t, "01110100", render(w.Bytes()))

	// writing resumes on the next byte boundary
	require.NoError(t, w.WriteWide(0xff, 8))
	padding, err = w.Flush()
	require.NoError(t, err)
	require.Zero(t, padding)
	require.Equal(t, []byte{0b01110100, 0xff}, w.Bytes())
	require.Equal(t, 14, w.Len())

	w.Reset()
	require.Equal(t, 0, w.Len())
	require.Empty(t, w.Bytes())
}

func TestReader(t *testing.T) {
	data := []byte{0xf2, 0x80}
	r := NewReader(data, 10)
	var sb strings.Builder
	for {
		b, err := r.ReadBit()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		sb.WriteByte('0' + b)
	}
	require.Equal(t, "1111001010", sb.String())
	require.Equal(t, 10, r.Pos())
	require.Equal(t, 0, r.Remaining())
}

func TestReaderClamp(t *testing.T) {
	r := NewReader([]byte{0xff}, 100)
	require.Equal(t, 8, r.Remaining())
	r = NewReader(nil, -3)
	_, err := r.ReadBit()
	require.Equal(t, io.EOF, err)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bs, ns := randomCodes(rng, 200)
	w := NewWriter(0)
	for i := range bs {
		require.NoError(t, w.WriteWide(bs[i], ns[i]))
	}
	r := NewReader(flushed(t, w), w.Len())
	for i := range bs {
		var got uint64
		for j := uint8(0); j < ns[i]; j++ {
			b, err := r.ReadBit()
			require.NoError(t, err)
			got = got<<1 | uint64(b)
		}
		require.Equal(t, bs[i], got, "code %d", i)
	}
	_, err := r.ReadBit()
	require.Equal(t, io.EOF, err)
}

func TestReadBits(t *testing.T) {
	r := NewReader([]byte{0xf2, 0x80}, 10)
	u, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b111), u)
	b, err := r.ReadBit()
	require.NoError(t, err)
	require.Equal(t, uint8(1), b)
	u, err = r.ReadBits(6)
	require.NoError(t, err)
	require.Equal(t, uint64(0b001010), u)

	// the padding bits after the limit stay unread
	_, err = r.ReadBits(1)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 10, r.Pos())
}
