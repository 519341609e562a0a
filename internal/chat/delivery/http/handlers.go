package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	errNotJSON   = errors.New("request must be JSON")
	errNoMessage = errors.New("no message provided")

	errMessageNotString = errors.New("message must be a string")
)

// Chat godoc
// @Summary     Send a chat message
// @Description Resolves one message against the live intent catalog, or the static engine when the catalog is empty.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} errorResp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	msg, err := h.processChatReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}

	res := h.resolver.Resolve(ctx, msg)
	h.l.Debugf(ctx, "chat: resolved via %s", res.Path)
	c.JSON(http.StatusOK, chatResp{Response: res.Response})
}

// Stream godoc
// @Summary     Chat over a websocket
// @Description Every text frame {"message": "..."} is answered with {"response": "..."}. A frame that is not JSON is treated as the message itself.
// @Tags        Chat
// @Router      /ws/chat [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "chat.Stream upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.l.Warnf(ctx, "chat.Stream read: %v", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		res := h.resolver.Resolve(ctx, frameMessage(data))
		h.l.Debugf(ctx, "chat.Stream: resolved via %s", res.Path)
		if err := conn.WriteJSON(chatResp{Response: res.Response}); err != nil {
			h.l.Warnf(ctx, "chat.Stream write: %v", err)
			return
		}
	}
}

// frameMessage extracts the message of a websocket frame.
func frameMessage(data []byte) string {
	var req chatReq
	if err := json.Unmarshal(data, &req); err == nil && len(req.Message) > 0 {
		if msg, err := req.text(); err == nil {
			return msg
		}
	}
	return string(data)
}
