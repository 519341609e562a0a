package http

import (
	"github.com/gin-gonic/gin"

	"gems-assistant/internal/catalog"
	"gems-assistant/internal/intent"
	pkgErrors "gems-assistant/pkg/errors"
	"gems-assistant/pkg/response"
)

// List godoc
// @Summary     List intents
// @Description Returns every dynamic intent ordered by tag, or the tags fuzzy-matching q.
// @Tags        Intents
// @Produce     json
// @Security    AdminKey
// @Param       q query string false "Fuzzy tag filter"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/intents [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create an intent
// @Description Stores a new intent. Entries are trimmed and empty ones dropped; at least one response is required.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body createReq true "Intent"
// @Success     201 {object} intentEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Conflict - tag already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/intents [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newIntentEnvelope(output.Intent))
}

// CreateSmart godoc
// @Summary     Create an intent from a topic
// @Description Generates the tag and patterns from a topic and comma or newline separated detail keywords.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body smartReq true "Topic, details and responses"
// @Success     201 {object} smartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/intents/smart [POST]
func (h *handler) CreateSmart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSmartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSmart(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateSmart: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newSmartResp(output))
}

// Detail godoc
// @Summary     Get intent detail
// @Tags        Intents
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Intent ID"
// @Success     200 {object} intentEnvelope
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/intents/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntentEnvelope(output.Intent))
}

// Update godoc
// @Summary     Replace an intent
// @Description Replaces the tag, patterns and responses of an intent.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       id   path string    true "Intent ID"
// @Param       body body updateReq true "Intent"
// @Success     200 {object} intentEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - tag already exists"
// @Router      /api/v1/admin/intents/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntentEnvelope(output.Intent))
}

// UpdateSmart godoc
// @Summary     Regenerate an intent from a topic
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       id   path string   true "Intent ID"
// @Param       body body smartReq true "Topic, details and responses"
// @Success     200 {object} smartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/intents/{id}/smart [PUT]
func (h *handler) UpdateSmart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSmartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateSmart(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateSmart: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSmartResp(output))
}

// Delete godoc
// @Summary     Delete an intent
// @Tags        Intents
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Intent ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/intents/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Preview godoc
// @Summary     Preview an intent
// @Description Returns one randomly chosen response of the intent.
// @Tags        Intents
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Intent ID"
// @Success     200 {object} previewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/intents/{id}/preview [GET]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Preview(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, previewResp{Preview: output.Preview})
}

// Sync godoc
// @Summary     Seed intents from the definition file
// @Description Adds intents whose tag is not stored yet; with update_existing also overwrites stored ones.
// @Tags        Intents
// @Produce     json
// @Security    AdminKey
// @Param       update_existing query bool false "Overwrite intents already stored"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/intents/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	intents, err := catalog.LoadFile(h.intentsPath)
	if err != nil {
		h.l.Errorf(ctx, "catalog.LoadFile: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError, nil)
		return
	}

	output, err := h.uc.Sync(ctx, intent.SyncInput{Intents: intents, UpdateExisting: req.UpdateExisting})
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSyncResp(output))
}
