// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReader(t *testing.T) {
	data := randomBytes(6, 20000, 64)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// split writes must give the same container as one-shot Compress
	for off := 0; off < len(data); off += 777 {
		end := min(off+777, len(data))
		n, err := w.Write(data[off:end])
		require.NoError(t, err)
		require.Equal(t, end-off, n)
	}
	require.Zero(t, buf.Len(), "nothing is written before Close")
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	want, err := Compress(data)
	require.NoError(t, err)
	require.Equal(t, want, buf.Bytes())

	_, err = w.Write([]byte("late"))
	require.Error(t, err)

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.NoError(t, r.Close())
}

func TestWriterReset(t *testing.T) {
	var first, second bytes.Buffer
	w := NewWriter(&first)
	_, err := io.Copy(w, bytes.NewReader([]byte("first payload")))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w.Reset(&second)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := NewReader(&first)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "first payload", string(got))

	require.NoError(t, r.(Resetter).Reset(&second))
	got, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "second", string(got))
}

type failWriter struct{}

var errSink = errors.New("sink failed")

func (failWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWriterError(t *testing.T) {
	w := NewWriter(failWriter{})
	_, err := w.Write([]byte("data"))
	require.NoError(t, err)
	require.ErrorIs(t, w.Close(), errSink)
	_, err = w.Write([]byte("more"))
	require.ErrorIs(t, err, errSink)
}

func TestReaderSmallReads(t *testing.T) {
	data := []byte("small reads still see every byte")
	c, err := Compress(data)
	require.NoError(t, err)
	r := NewReader(bytes.NewReader(c))
	var got []byte
	b := make([]byte, 3)
	for {
		n, err := r.Read(b)
		got = append(got, b[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, data, got)
}

func TestReaderErrors(t *testing.T) {
	c, err := Compress([]byte("truncate me please"))
	require.NoError(t, err)

	_, err = io.ReadAll(NewReader(bytes.NewReader(c[:len(c)-1])))
	require.ErrorIs(t, err, ErrTruncatedStream)

	d := Decoder{Lenient: true}
	got, err := io.ReadAll(d.NewReader(bytes.NewReader(c[:len(c)-1])))
	require.NoError(t, err)
	require.Equal(t, []byte("truncate me please")[:len(got)], got)

	got, err = io.ReadAll(NewReader(bytes.NewReader(nil)))
	require.ErrorIs(t, err, ErrTruncatedContainer)
	require.Empty(t, got)
}
