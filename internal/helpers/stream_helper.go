package helpers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const streamChunkSize = 32 * 1024

// StreamAttachment sends data as a downloadable file. Once the headers are
// out the status can no longer change, so any error returned here means the
// response is already broken and the caller should only log and abort.
func StreamAttachment(c *gin.Context, contentType, filename string, data []byte) error {
	ctx := c.Request.Context()

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()

	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(streamChunkSize, len(data))
		if _, err := c.Writer.Write(data[:n]); err != nil {
			return err
		}
		c.Writer.Flush()
		data = data[n:]
	}
	return nil
}

// AbortConnection drops the client connection without writing a response.
// It relies on net/http recovering http.ErrAbortHandler.
func AbortConnection() {
	panic(http.ErrAbortHandler)
}

// Cancelled reports whether err comes from the client going away.
func Cancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
