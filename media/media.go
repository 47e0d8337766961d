// Package media re-exports the media URL resolvers.
package media

import (
	"github.com/goliatone/go-pagebuilder/internal/media"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

type (
	Resolver        = interfaces.MediaResolver
	Kind            = interfaces.MediaKind
	Transform       = interfaces.MediaTransform
	ResolverOptions = media.ResolverOptions
	URLKitResolver  = media.URLKitResolver
)

const (
	KindImage = interfaces.MediaKindImage
	KindVideo = interfaces.MediaKindVideo
)

var (
	ErrPublicIDRequired = media.ErrPublicIDRequired
	ErrRouteUnavailable = media.ErrRouteUnavailable

	NewURLKitResolver = media.NewURLKitResolver
	NewCDNResolver    = media.NewCDNResolver
	NewNoOpResolver   = media.NewNoOpResolver
)
