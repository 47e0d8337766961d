package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// Meta is the structured frontmatter recognised at the top of an authored
// document. Unknown keys are collected into Custom.
type Meta struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Summary    string         `yaml:"summary"`
	Status     string         `yaml:"status"`
	Tags       []string       `yaml:"tags"`
	Author     string         `yaml:"author"`
	CoverImage string         `yaml:"coverImage"`
	Date       *time.Time     `yaml:"date"`
	Custom     map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. Documents without a frontmatter block yield an empty Meta and
// the source unchanged.
func ParseFrontMatter(source []byte) (Meta, []byte, error) {
	var meta Meta

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
