// Package render re-exports the deterministic render tree generator.
package render

import "github.com/goliatone/go-pagebuilder/internal/render"

type (
	Node     = render.Node
	Renderer = render.Renderer
	Option   = render.Option
)

// New constructs a renderer.
var New = render.New

// WithMediaResolver wires a media URL resolver into the renderer.
var WithMediaResolver = render.WithMediaResolver

// Element constructs an element node.
var Element = render.Element

// Text constructs a text node.
var Text = render.Text

// EmbedURL rewrites a provider URL into its embeddable form.
var EmbedURL = render.EmbedURL
