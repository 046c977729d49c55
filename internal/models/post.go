package models

import "html/template"

// DateFormat is the publication date layout stored on every post,
// e.g. "April 03, 2025". The posts table orders by this string value.
const DateFormat = "January 02, 2006"

// Post is a single blog article row.
type Post struct {
	ID       uint   `gorm:"primaryKey" form:"-"`
	Title    string `gorm:"uniqueIndex;not null" form:"title"`
	Subtitle string `gorm:"not null" form:"subtitle"`
	// Date is assigned once at creation and never recomputed on edit.
	Date     string `gorm:"not null" form:"-"`
	Body     string `gorm:"type:text;not null" form:"body"`
	Author   string `gorm:"not null" form:"author"`
	ImageURL string `gorm:"not null" form:"image_url"`
}

// BodyHTML returns the stored rich-text fragment for unescaped rendering.
func (p *Post) BodyHTML() template.HTML {
	return template.HTML(p.Body)
}

// PostFields carries the five mutable columns of a post. ID and Date are
// excluded: both are fixed for the lifetime of the row.
type PostFields struct {
	Title    string
	Subtitle string
	Author   string
	ImageURL string
	Body     string
}
