// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package httpapi exposes the huff codec over HTTP.
package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/intel/fasthuff/compress/huff"
)

const contentType = "application/octet-stream"

// DefaultMaxBody is the request body limit used when none is configured.
const DefaultMaxBody = 32 << 20

// CodecHandler serves the compress, decompress, stats and estimate endpoints.
type CodecHandler struct {
	maxBody int64
}

// NewCodecHandler returns a handler that rejects bodies larger than maxBody
// bytes. A non-positive maxBody selects DefaultMaxBody.
func NewCodecHandler(maxBody int64) *CodecHandler {
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &CodecHandler{maxBody: maxBody}
}

type statsResp struct {
	Symbols       int     `json:"symbols"`
	InputSize     uint64  `json:"input_size"`
	EncodedBits   uint64  `json:"encoded_bits"`
	Padding       uint8   `json:"padding"`
	ContainerSize uint64  `json:"container_size"`
	Ratio         float64 `json:"ratio"`
}

func newStatsResp(st huff.Stats) statsResp {
	return statsResp{
		Symbols:       st.Symbols,
		InputSize:     st.InputSize,
		EncodedBits:   st.EncodedBits,
		Padding:       st.Padding,
		ContainerSize: st.ContainerSize,
		Ratio:         st.Ratio(),
	}
}

// body reads the whole request body so that an oversized request fails with
// 413 before any of it is parsed.
func (h *CodecHandler) body(c *gin.Context) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
}

// Compress responds with the container for the request body.
func (h *CodecHandler) Compress(c *gin.Context) {
	src, err := h.body(c)
	if err != nil {
		fail(c, err)
		return
	}
	out, err := huff.Compress(src)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, out)
}

// Decompress responds with the original bytes of the container in the
// request body. The lenient query parameter selects a lenient decoder.
func (h *CodecHandler) Decompress(c *gin.Context) {
	lenient, err := strconv.ParseBool(c.DefaultQuery("lenient", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lenient: " + err.Error()})
		return
	}
	src, err := h.body(c)
	if err != nil {
		fail(c, err)
		return
	}
	d := huff.Decoder{Lenient: lenient}
	out, err := d.Decode(src)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, out)
}

// Stats reports the statistics of the container in the request body.
func (h *CodecHandler) Stats(c *gin.Context) {
	src, err := h.body(c)
	if err != nil {
		fail(c, err)
		return
	}
	st, err := huff.Inspect(bytes.NewReader(src))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStatsResp(st))
}

// Estimate reports what compressing the request body would produce.
func (h *CodecHandler) Estimate(c *gin.Context) {
	src, err := h.body(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStatsResp(huff.Estimate(src)))
}

// status maps codec errors to HTTP status codes.
func status(err error) int {
	var (
		maxErr  *http.MaxBytesError
		corrupt huff.CorruptInputError
	)
	switch {
	case errors.As(err, &maxErr), errors.Is(err, huff.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &corrupt),
		errors.Is(err, huff.ErrTruncatedContainer),
		errors.Is(err, huff.ErrTruncatedStream),
		errors.Is(err, huff.ErrMalformedTree):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(status(err), gin.H{"error": err.Error()})
}
