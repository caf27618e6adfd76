package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip-encoded request bodies before they reach
// the JSON binding layer. Snapshot imports are the main compressed payload.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.TrimSpace(c.GetHeader("Content-Encoding"))
		if !strings.EqualFold(encoding, "gzip") {
			c.Next()
			return
		}

		body := c.Request.Body
		defer body.Close()

		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
