// Package entity defines the core domain entities and validation logic for the application.
// It contains the News record, its validation rules, its deterministic identity and
// domain-specific errors.
package entity

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// idSeparator joins the identity fields before hashing.
const idSeparator = "|"

// News is an immutable, validated news article.
// Values are only created through NewNews, so a *News always satisfies the field rules.
type News struct {
	id          int64
	title       string
	source      string
	author      string
	url         string
	urlImage    string
	description string
	content     string
	publishedAt time.Time
}

// NewNews validates the supplied fields and builds a News whose id is derived
// from title, source and author. url and urlImage are informational and never validated.
//
// Rules:
//   - title: at least 3 characters
//   - source: at least 3 characters
//   - author: at least 4 characters
//   - description: at least 11 characters
//   - content: any value, empty included
//   - publishedAt: non-zero
//
// The first violated rule is returned as a *ValidationError.
func NewNews(
	title, source, author, url, urlImage, description, content string,
	publishedAt time.Time,
) (*News, error) {
	if err := requireMinLength("title", title, MinTitleLength); err != nil {
		return nil, err
	}
	if err := requireMinLength("source", source, MinSourceLength); err != nil {
		return nil, err
	}
	if err := requireMinLength("author", author, MinAuthorLength); err != nil {
		return nil, err
	}
	if err := requireMinLength("description", description, MinDescriptionLength); err != nil {
		return nil, err
	}
	if err := requireTime("publishedAt", publishedAt); err != nil {
		return nil, err
	}

	return &News{
		id:          NewsID(title, source, author),
		title:       title,
		source:      source,
		author:      author,
		url:         url,
		urlImage:    urlImage,
		description: description,
		content:     content,
		publishedAt: publishedAt,
	}, nil
}

// NewsID returns the deterministic identity of a News: the xxHash64 (seed 0) of the
// UTF-8 bytes of "title|source|author", reinterpreted as a signed integer.
// It is the de-duplication key shared with any system that recomputes ids.
func NewsID(title, source, author string) int64 {
	return int64(xxhash.Sum64String(title + idSeparator + source + idSeparator + author))
}

// ID returns the deterministic identity.
func (n *News) ID() int64 { return n.id }

// Title returns the headline.
func (n *News) Title() string { return n.title }

// Source returns the publisher name.
func (n *News) Source() string { return n.source }

// Author returns the author.
func (n *News) Author() string { return n.author }

// URL returns the link to the article, possibly empty.
func (n *News) URL() string { return n.url }

// URLImage returns the link to the article image, possibly empty.
func (n *News) URLImage() string { return n.urlImage }

// Description returns the article description.
func (n *News) Description() string { return n.description }

// Content returns the article body.
func (n *News) Content() string { return n.content }

// PublishedAt returns the publication time with its original location.
func (n *News) PublishedAt() time.Time { return n.publishedAt }
