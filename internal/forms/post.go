// Package forms holds the validation schemas for form submissions.
package forms

import (
	"net/url"
	"strings"

	"quill/internal/models"
)

// Errors maps a form field name to its validation message. An empty map
// means the form is valid.
type Errors map[string]string

// PostForm is the field set required to create or edit a post. Binding uses
// the form tags; Validate performs no I/O.
type PostForm struct {
	Title    string `form:"title"`
	Subtitle string `form:"subtitle"`
	Author   string `form:"author"`
	ImageURL string `form:"image_url"`
	Body     string `form:"body"`
}

// FromPost pre-populates a form from an existing post for the edit page.
func FromPost(p *models.Post) *PostForm {
	return &PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Author:   p.Author,
		ImageURL: p.ImageURL,
		Body:     p.Body,
	}
}

// Validate normalizes the single-line fields and returns one message per
// failing field. The body keeps its rich-text content as submitted.
func (f *PostForm) Validate() Errors {
	f.Title = strings.TrimSpace(f.Title)
	f.Subtitle = strings.TrimSpace(f.Subtitle)
	f.Author = strings.TrimSpace(f.Author)
	f.ImageURL = strings.TrimSpace(f.ImageURL)

	errs := Errors{}
	if f.Title == "" {
		errs["title"] = "Title is required"
	}
	if f.Subtitle == "" {
		errs["subtitle"] = "Subtitle is required"
	}
	if f.Author == "" {
		errs["author"] = "Author is required"
	}
	if f.ImageURL == "" {
		errs["image_url"] = "Image URL is required"
	} else if !isAbsoluteURL(f.ImageURL) {
		errs["image_url"] = "Image URL must be a valid absolute URL"
	}
	if strings.TrimSpace(f.Body) == "" {
		errs["body"] = "Body is required"
	}
	return errs
}

// Fields returns the normalized values as the mutable column set.
func (f *PostForm) Fields() models.PostFields {
	return models.PostFields{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Author:   f.Author,
		ImageURL: f.ImageURL,
		Body:     f.Body,
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
