package http

import (
	"gems-assistant/internal/intent"
	"gems-assistant/internal/model"
	"gems-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"  binding:"required"`
	Responses []string `json:"responses" binding:"required"`
}

func (r createReq) toInput() intent.CreateInput {
	return intent.CreateInput{
		Tag:       r.Tag,
		Patterns:  r.Patterns,
		Responses: r.Responses,
	}
}

// ---

type listReq struct {
	Query string `form:"q"`
}

func (r listReq) toInput() intent.ListInput {
	return intent.ListInput{Query: r.Query}
}

// ---

type updateReq struct {
	ID        string   `json:"-"` // populated from URI param
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"  binding:"required"`
	Responses []string `json:"responses" binding:"required"`
}

func (r updateReq) toInput() intent.UpdateInput {
	return intent.UpdateInput{
		ID:        r.ID,
		Tag:       r.Tag,
		Patterns:  r.Patterns,
		Responses: r.Responses,
	}
}

// ---

type smartReq struct {
	ID        string   `json:"-"`
	Topic     string   `json:"topic"`
	Details   string   `json:"details"`
	Responses []string `json:"responses" binding:"required"`
}

func (r smartReq) toInput() intent.SmartInput {
	return intent.SmartInput{
		ID:        r.ID,
		Topic:     r.Topic,
		Details:   r.Details,
		Responses: r.Responses,
	}
}

// ---

type syncReq struct {
	UpdateExisting bool `form:"update_existing"`
}

// --- Response DTOs ---

type intentResp struct {
	ID        string            `json:"id"`
	Tag       string            `json:"tag"`
	Patterns  []string          `json:"patterns"`
	Responses []string          `json:"responses"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
	UpdatedAt response.DateTime `json:"updated_at" swaggertype:"string"`
}

func newIntentResp(it model.Intent) intentResp {
	return intentResp{
		ID:        it.ID,
		Tag:       it.Tag,
		Patterns:  it.Patterns,
		Responses: it.Responses,
		CreatedAt: response.DateTime(it.CreatedAt),
		UpdatedAt: response.DateTime(it.UpdatedAt),
	}
}

type intentEnvelope struct {
	Intent intentResp `json:"intent"`
}

func (h *handler) newIntentEnvelope(it model.Intent) intentEnvelope {
	return intentEnvelope{Intent: newIntentResp(it)}
}

type listResp struct {
	Intents []intentResp `json:"intents"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(out intent.ListOutput) listResp {
	items := make([]intentResp, len(out.Intents))
	for i, it := range out.Intents {
		items[i] = newIntentResp(it)
	}
	return listResp{Intents: items, Total: out.Total}
}

type generatedResp struct {
	Tag      string   `json:"tag"`
	Patterns []string `json:"patterns"`
}

type smartResp struct {
	Intent    intentResp    `json:"intent"`
	Generated generatedResp `json:"generated"`
}

func (h *handler) newSmartResp(out intent.SmartOutput) smartResp {
	return smartResp{
		Intent:    newIntentResp(out.Intent),
		Generated: generatedResp{Tag: out.Tag, Patterns: out.Patterns},
	}
}

type previewResp struct {
	Preview string `json:"preview"`
}

type syncResp struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func (h *handler) newSyncResp(out intent.SyncOutput) syncResp {
	return syncResp{Added: out.Added, Updated: out.Updated, Skipped: out.Skipped}
}
