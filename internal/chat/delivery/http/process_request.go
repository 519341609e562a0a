package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processChatReq requires a JSON object body. A missing message is the empty
// message; a null one is an error.
func (h *handler) processChatReq(c *gin.Context) (string, error) {
	if c.ContentType() != binding.MIMEJSON {
		return "", errNotJSON
	}
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", errNotJSON
	}
	return req.text()
}
