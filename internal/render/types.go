// Package render maps locale content into a framework-neutral tree of render
// instructions. Rendering is pure and total: the same input always produces a
// structurally identical tree, and malformed or half-configured blocks are
// skipped rather than failing, so unsaved editor drafts can be previewed
// before validation.
package render

import (
	"strings"

	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// Node is one render instruction. Element nodes carry a tag, optional
// attributes, and children; text nodes carry only Text. Consumers turn the
// tree into markup or UI elements; the shape is the stable contract.
type Node struct {
	Tag        string            `json:"tag,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
	Text       string            `json:"text,omitempty"`
}

// Element constructs an element node.
func Element(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text constructs a text node.
func Text(text string) *Node {
	return &Node{Text: text}
}

// WithAttr sets an attribute, allocating the map lazily. Empty values are
// dropped so attribute maps stay deterministic.
func (n *Node) WithAttr(key, value string) *Node {
	if value == "" {
		return n
	}
	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	n.Attributes[key] = value
	return n
}

// WithClasses joins class tokens into the class attribute.
func (n *Node) WithClasses(classes ...string) *Node {
	filtered := classes[:0:0]
	for _, class := range classes {
		if strings.TrimSpace(class) != "" {
			filtered = append(filtered, class)
		}
	}
	if len(filtered) == 0 {
		return n
	}
	return n.WithAttr("class", strings.Join(filtered, " "))
}

// Append adds non-nil children in order.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMediaResolver injects the resolver used to turn public identifiers
// into deliverable URLs.
func WithMediaResolver(resolver interfaces.MediaResolver) Option {
	return func(r *Renderer) {
		if resolver != nil {
			r.media = resolver
		}
	}
}

// Renderer walks locale content and emits render trees.
type Renderer struct {
	media interfaces.MediaResolver
}

// New constructs a renderer. Without options media URLs pass through as the
// raw public identifier.
func New(opts ...Option) *Renderer {
	r := &Renderer{media: passthroughResolver{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// passthroughResolver returns identifiers unchanged so the renderer works
// without a configured CDN.
type passthroughResolver struct{}

func (passthroughResolver) ResolveURL(publicID string, _ interfaces.MediaKind, _ interfaces.MediaTransform) (string, error) {
	return publicID, nil
}

func (r *Renderer) mediaURL(publicID string, kind interfaces.MediaKind) string {
	url, err := r.media.ResolveURL(publicID, kind, interfaces.MediaTransform{})
	if err != nil || url == "" {
		return publicID
	}
	return url
}
