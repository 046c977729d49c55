package forms

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
)

func validForm() PostForm {
	return PostForm{
		Title:    "Hello",
		Subtitle: "World",
		Author:   "A",
		ImageURL: "https://example.com/x.png",
		Body:     "<p>hi</p>",
	}
}

func TestValidateValidForm(t *testing.T) {
	form := validForm()
	assert.Empty(t, form.Validate())
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *PostForm)
		field  string
	}{
		{"empty title", func(f *PostForm) { f.Title = "" }, "title"},
		{"whitespace title", func(f *PostForm) { f.Title = "   " }, "title"},
		{"empty subtitle", func(f *PostForm) { f.Subtitle = "" }, "subtitle"},
		{"empty author", func(f *PostForm) { f.Author = "" }, "author"},
		{"empty image url", func(f *PostForm) { f.ImageURL = "" }, "image_url"},
		{"relative image url", func(f *PostForm) { f.ImageURL = "/images/x.png" }, "image_url"},
		{"schemeless image url", func(f *PostForm) { f.ImageURL = "example.com/x.png" }, "image_url"},
		{"empty body", func(f *PostForm) { f.Body = "" }, "body"},
		{"whitespace body", func(f *PostForm) { f.Body = "  \n " }, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := form.Validate()
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateTrimsSingleLineFields(t *testing.T) {
	form := PostForm{
		Title:    "  Hello  ",
		Subtitle: " World ",
		Author:   " A ",
		ImageURL: " https://example.com/x.png ",
		Body:     "<p>hi</p>",
	}

	assert.Empty(t, form.Validate())
	assert.Equal(t, "Hello", form.Title)
	assert.Equal(t, "World", form.Subtitle)
	assert.Equal(t, "A", form.Author)
	assert.Equal(t, "https://example.com/x.png", form.ImageURL)
	// Rich text keeps its content exactly as submitted.
	assert.Equal(t, "<p>hi</p>", form.Body)
}

func TestFieldsRoundTrip(t *testing.T) {
	form := validForm()

	assert.Equal(t, models.PostFields{
		Title:    "Hello",
		Subtitle: "World",
		Author:   "A",
		ImageURL: "https://example.com/x.png",
		Body:     "<p>hi</p>",
	}, form.Fields())
}

func TestFromPost(t *testing.T) {
	post := &models.Post{
		ID:       7,
		Title:    "Hello",
		Subtitle: "World",
		Date:     "April 03, 2025",
		Body:     "<p>hi</p>",
		Author:   "A",
		ImageURL: "https://example.com/x.png",
	}

	form := FromPost(post)
	assert.Equal(t, "Hello", form.Title)
	assert.Equal(t, "World", form.Subtitle)
	assert.Equal(t, "A", form.Author)
	assert.Equal(t, "https://example.com/x.png", form.ImageURL)
	assert.Equal(t, "<p>hi</p>", form.Body)
}
