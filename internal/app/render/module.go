package render

import "go.uber.org/fx"

// ActionPath is where the page posts dispatched actions
const ActionPath = "/actions"

// Response headers of the action endpoint read by the page script
const (
	ScopeHeader = "X-Render-Scope"
	TimeHeader  = "X-Render-Time"
)

// Module provides the HTML renderer
var Module = fx.Module("render",
	fx.Provide(func() (*Renderer, error) {
		return NewRenderer(ActionPath)
	}),
)
