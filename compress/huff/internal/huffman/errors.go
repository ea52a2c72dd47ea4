// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"strconv"
)

var (
	ErrEmptyAlphabet   = errors.New("huff: empty alphabet")
	ErrMalformedTree   = errors.New("huff: malformed tree")
	ErrUnknownSymbol   = errors.New("huff: unknown symbol")
	ErrTruncatedStream = errors.New("huff: truncated stream")
)

// A CorruptInputError reports the presence of corrupt input at a given offset.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "huff: corrupt input before offset " + strconv.FormatInt(int64(e), 10)
}
