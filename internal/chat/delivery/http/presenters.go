package http

import "encoding/json"

// chatReq is the body of POST /chat and of every websocket frame.
type chatReq struct {
	Message json.RawMessage `json:"message" swaggertype:"string"`
}

// text returns the message. An absent field reads as "", an explicit null is
// rejected.
func (r chatReq) text() (string, error) {
	if len(r.Message) == 0 {
		return "", nil
	}
	if string(r.Message) == "null" {
		return "", errNoMessage
	}
	var s string
	if err := json.Unmarshal(r.Message, &s); err != nil {
		return "", errMessageNotString
	}
	return s, nil
}

type chatResp struct {
	Response string `json:"response"`
}

type errorResp struct {
	Error string `json:"error"`
}
