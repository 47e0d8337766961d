// Command preview renders a document payload into its render tree and
// prints the tree as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-pagebuilder/content"
	"github.com/goliatone/go-pagebuilder/domain"
	"github.com/goliatone/go-pagebuilder/media"
	"github.com/goliatone/go-pagebuilder/render"
)

func main() {
	var (
		filePath = flag.String("file", "", "Path to the document payload JSON")
		locale   = flag.String("locale", "en", "Locale to render (en or ar)")
		kind     = flag.String("kind", "flat", "Payload shape: flat (blog) or grid (page)")
		cdnBase  = flag.String("cdn", "", "CDN base URL for media resolution (optional)")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	loc := domain.Locale(*locale)
	source, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read payload: %v", err)
	}

	options := []render.Option{}
	if *cdnBase != "" {
		options = append(options, render.WithMediaResolver(media.NewCDNResolver(*cdnBase)))
	}
	renderer := render.New(options...)

	var tree []*render.Node
	switch *kind {
	case "flat":
		var payload content.LocalizedContent
		if err := json.Unmarshal(source, &payload); err != nil {
			log.Fatalf("decode flat payload: %v", err)
		}
		tree = renderer.RenderFlat(loc, payload)
	case "grid":
		var payload content.LocaleContent
		if err := json.Unmarshal(source, &payload); err != nil {
			log.Fatalf("decode grid payload: %v", err)
		}
		tree = renderer.RenderGrid(loc, payload)
	default:
		log.Fatalf("unknown payload kind %q (want flat or grid)", *kind)
	}

	encoded, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		log.Fatalf("encode render tree: %v", err)
	}

	fmt.Fprintln(os.Stdout, string(encoded))
}
