package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "gems-assistant/pkg/errors"
)

// processCreateReq binds the create intent request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

// processUpdateReq binds the update request body and the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processSmartReq binds a topic-driven request body; the URI param is
// optional and only present on update.
func (h *handler) processSmartReq(c *gin.Context) (smartReq, error) {
	var req smartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processSyncReq binds the sync query parameters.
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	err := c.ShouldBindQuery(&req)
	return req, err
}
