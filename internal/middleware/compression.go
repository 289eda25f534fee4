package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. PDF and XLSX
// downloads are already compressed, so paths ending in those extensions and
// any excludedPaths prefix are sent as is.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".pdf", ".xlsx"}),
		gzip.WithExcludedPaths(excludedPaths),
	)
}
