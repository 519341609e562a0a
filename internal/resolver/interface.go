// Package resolver picks, per message, between the administrator-edited
// dynamic catalog and the static engine chosen at startup.
package resolver

import "context"

// Responder is the contract shared by every resolution strategy.
// Respond always returns a string and never an error.
type Responder interface {
	Respond(ctx context.Context, message string) string
}

// Mode is the static engine fixed for the lifetime of an Orchestrator.
type Mode string

const (
	ModeStaticRules  Mode = "STATIC_RULES"
	ModeStaticNeural Mode = "STATIC_NEURAL"
)

// Path records which strategy produced a response.
type Path string

const (
	PathDynamic Path = "dynamic"
	PathRules   Path = "rules"
	PathNeural  Path = "neural"
)

// Result is a response plus the path that produced it. Path is for logs and
// metrics only; chat clients only ever see Response.
type Result struct {
	Response string
	Path     Path
}
