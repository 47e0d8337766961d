// Package media builds deliverable URLs for stored assets. Resolution is
// pure string construction over templated CDN routes; nothing here touches
// the network, so renderers call resolvers freely.
package media

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

var (
	ErrPublicIDRequired = errors.New("media: public id is required")
	ErrRouteUnavailable = errors.New("media: cdn route unavailable")
)

// ResolverOptions configures the go-urlkit backed resolver.
type ResolverOptions struct {
	Manager       *urlkit.RouteManager
	Group         string
	ImageRoute    string
	VideoRoute    string
	PublicIDParam string
}

// URLKitResolver resolves asset URLs through a go-urlkit route manager.
type URLKitResolver struct {
	manager       *urlkit.RouteManager
	group         string
	imageRoute    string
	videoRoute    string
	publicIDParam string
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts ResolverOptions) *URLKitResolver {
	if opts.Group == "" {
		opts.Group = "cdn"
	}
	if opts.ImageRoute == "" {
		opts.ImageRoute = "image"
	}
	if opts.VideoRoute == "" {
		opts.VideoRoute = "video"
	}
	if opts.PublicIDParam == "" {
		opts.PublicIDParam = "publicId"
	}
	return &URLKitResolver{
		manager:       opts.Manager,
		group:         opts.Group,
		imageRoute:    opts.ImageRoute,
		videoRoute:    opts.VideoRoute,
		publicIDParam: opts.PublicIDParam,
	}
}

// NewCDNResolver builds a resolver over a single CDN base URL with the
// conventional upload paths.
func NewCDNResolver(baseURL string) *URLKitResolver {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "cdn",
				BaseURL: strings.TrimRight(baseURL, "/"),
				Paths: map[string]string{
					"image": "/image/upload/:publicId",
					"video": "/video/upload/:publicId",
				},
			},
		},
	})
	return NewURLKitResolver(ResolverOptions{Manager: manager})
}

// ResolveURL satisfies interfaces.MediaResolver.
func (r *URLKitResolver) ResolveURL(publicID string, kind interfaces.MediaKind, transform interfaces.MediaTransform) (string, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return "", ErrPublicIDRequired
	}

	route := r.imageRoute
	if kind == interfaces.MediaKindVideo {
		route = r.videoRoute
	}

	group, err := r.lookupGroup()
	if err != nil {
		return "", err
	}
	builder, err := r.safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	builder.WithParam(r.publicIDParam, publicID)

	built, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("media: build url: %w", err)
	}
	return appendTransform(built, transform), nil
}

func (r *URLKitResolver) lookupGroup() (group *urlkit.Group, err error) {
	if r.manager == nil {
		return nil, ErrRouteUnavailable
	}
	defer func() {
		if rec := recover(); rec != nil {
			group, err = nil, fmt.Errorf("%w: group %q", ErrRouteUnavailable, r.group)
		}
	}()
	group = r.manager.Group(r.group)
	return group, err
}

func (r *URLKitResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, ErrRouteUnavailable
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder, err = nil, fmt.Errorf("%w: route %q", ErrRouteUnavailable, route)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

// appendTransform encodes non-zero delivery transformations as query
// parameters on the built URL.
func appendTransform(built string, transform interfaces.MediaTransform) string {
	values := url.Values{}
	if transform.Width > 0 {
		values.Set("w", strconv.Itoa(transform.Width))
	}
	if transform.Height > 0 {
		values.Set("h", strconv.Itoa(transform.Height))
	}
	if transform.Crop != "" {
		values.Set("c", transform.Crop)
	}
	if transform.Quality != "" {
		values.Set("q", transform.Quality)
	}
	if transform.Format != "" {
		values.Set("f", transform.Format)
	}
	if len(values) == 0 {
		return built
	}
	separator := "?"
	if strings.Contains(built, "?") {
		separator = "&"
	}
	return built + separator + values.Encode()
}

// NewNoOpResolver returns a resolver that hands back identifiers unchanged.
func NewNoOpResolver() interfaces.MediaResolver {
	return noopResolver{}
}

type noopResolver struct{}

func (noopResolver) ResolveURL(publicID string, _ interfaces.MediaKind, _ interfaces.MediaTransform) (string, error) {
	return publicID, nil
}
