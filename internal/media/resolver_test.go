package media

import (
	"errors"
	"testing"

	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

func TestResolveURLBuildsImagePath(t *testing.T) {
	resolver := NewCDNResolver("https://cdn.example.com")

	got, err := resolver.ResolveURL("posts/hero", interfaces.MediaKindImage, interfaces.MediaTransform{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "https://cdn.example.com/image/upload/posts/hero" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestResolveURLBuildsVideoPath(t *testing.T) {
	resolver := NewCDNResolver("https://cdn.example.com/")

	got, err := resolver.ResolveURL("clips/intro", interfaces.MediaKindVideo, interfaces.MediaTransform{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "https://cdn.example.com/video/upload/clips/intro" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestResolveURLAppendsTransformQuery(t *testing.T) {
	resolver := NewCDNResolver("https://cdn.example.com")

	got, err := resolver.ResolveURL("posts/hero", interfaces.MediaKindImage, interfaces.MediaTransform{
		Width:   800,
		Quality: "auto",
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "https://cdn.example.com/image/upload/posts/hero?q=auto&w=800" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestResolveURLRejectsBlankPublicID(t *testing.T) {
	resolver := NewCDNResolver("https://cdn.example.com")

	if _, err := resolver.ResolveURL("  ", interfaces.MediaKindImage, interfaces.MediaTransform{}); !errors.Is(err, ErrPublicIDRequired) {
		t.Fatalf("expected ErrPublicIDRequired, got %v", err)
	}
}

func TestResolveURLFailsWithoutManager(t *testing.T) {
	resolver := NewURLKitResolver(ResolverOptions{})

	if _, err := resolver.ResolveURL("posts/hero", interfaces.MediaKindImage, interfaces.MediaTransform{}); !errors.Is(err, ErrRouteUnavailable) {
		t.Fatalf("expected ErrRouteUnavailable, got %v", err)
	}
}

func TestNoOpResolverReturnsIdentifierUnchanged(t *testing.T) {
	resolver := NewNoOpResolver()

	got, err := resolver.ResolveURL("raw-id", interfaces.MediaKindImage, interfaces.MediaTransform{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "raw-id" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
