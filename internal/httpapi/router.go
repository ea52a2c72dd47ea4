// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package httpapi

import (
	"github.com/gin-gonic/gin"

	fasthuff "github.com/intel/fasthuff"
)

// Dependencies holds the handlers Register mounts.
type Dependencies struct {
	Codec *CodecHandler
}

// Register mounts the health check and the /api/v1 codec routes on r.
func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "optimized": fasthuff.Optimized()})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.Codec.Compress)
		v1.POST("/decompress", d.Codec.Decompress)
		v1.POST("/stats", d.Codec.Stats)
		v1.POST("/estimate", d.Codec.Estimate)
	}
}
