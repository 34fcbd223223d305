package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindOptionalJSON decodes the body into obj, treating an empty body as an
// empty object.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
