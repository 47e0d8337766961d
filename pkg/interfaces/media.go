package interfaces

// MediaKind discriminates the asset families the resolver can address.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaTransform carries optional delivery transformations applied when a
// public URL is constructed. Zero values are omitted from the resulting URL.
type MediaTransform struct {
	Width   int
	Height  int
	Crop    string
	Quality string
	Format  string
}

// MediaResolver turns a stored public identifier into a deliverable URL.
// Implementations perform pure string construction (templated CDN paths);
// they never reach the network, so renderers can call them freely.
type MediaResolver interface {
	ResolveURL(publicID string, kind MediaKind, transform MediaTransform) (string, error)
}
