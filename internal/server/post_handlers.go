package server

import (
	"fmt"
	"time"

	"quill/internal/forms"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.posts.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{"Posts": posts})
}

// ShowPost handles GET /post/:id
func (s *Server) ShowPost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return s.renderNotFound(c)
	}

	post, err := s.posts.GetByID(c.Context(), id)
	if models.IsNotFound(err) {
		return s.renderNotFound(c)
	}
	if err != nil {
		return err
	}
	return c.Render("post", fiber.Map{"Post": post})
}

// NewPost handles GET /new-post
func (s *Server) NewPost(c *fiber.Ctx) error {
	return s.renderPostForm(c, "New Post", "/new-post", &forms.PostForm{}, forms.Errors{})
}

// CreatePost handles POST /new-post. The publication date is assigned here
// from the server clock and never changes afterwards.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var form forms.PostForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); len(errs) > 0 {
		return s.renderPostForm(c, "New Post", "/new-post", &form, errs)
	}

	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     time.Now().Format(models.DateFormat),
		Body:     form.Body,
		Author:   form.Author,
		ImageURL: form.ImageURL,
	}

	err := s.posts.Create(c.Context(), post)
	if models.IsConflict(err) {
		errs := forms.Errors{"title": "A post with this title already exists"}
		return s.renderPostForm(c, "New Post", "/new-post", &form, errs)
	}
	if err != nil {
		return err
	}

	return c.Redirect("/", fiber.StatusFound)
}

// EditPost handles GET /edit-post/:id
func (s *Server) EditPost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return s.renderNotFound(c)
	}

	post, err := s.posts.GetByID(c.Context(), id)
	if models.IsNotFound(err) {
		return s.renderNotFound(c)
	}
	if err != nil {
		return err
	}

	action := fmt.Sprintf("/edit-post/%d", post.ID)
	return s.renderPostForm(c, "Edit Post", action, forms.FromPost(post), forms.Errors{})
}

// UpdatePost handles POST /edit-post/:id. The original publication date is
// preserved; only the five mutable fields are written.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return s.renderNotFound(c)
	}

	var form forms.PostForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	action := fmt.Sprintf("/edit-post/%d", id)
	if errs := form.Validate(); len(errs) > 0 {
		return s.renderPostForm(c, "Edit Post", action, &form, errs)
	}

	err := s.posts.Update(c.Context(), id, form.Fields())
	if models.IsNotFound(err) {
		return s.renderNotFound(c)
	}
	if models.IsConflict(err) {
		errs := forms.Errors{"title": "A post with this title already exists"}
		return s.renderPostForm(c, "Edit Post", action, &form, errs)
	}
	if err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/post/%d", id), fiber.StatusFound)
}

// DeletePost handles GET /delete/:id. Deleting a post that no longer exists
// still redirects to the list: repeated deletes look the same to the client.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if ok {
		err := s.posts.Delete(c.Context(), id)
		if err != nil && !models.IsNotFound(err) {
			return err
		}
	}
	return c.Redirect("/", fiber.StatusFound)
}

func (s *Server) renderPostForm(c *fiber.Ctx, heading, action string, form *forms.PostForm, errs forms.Errors) error {
	return c.Render("make-post", fiber.Map{
		"Heading": heading,
		"Action":  action,
		"Form":    form,
		"Errors":  errs,
	})
}

func (s *Server) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
		"Code":    fiber.StatusNotFound,
		"Message": "That post doesn't exist.",
	})
}

// postID parses the :id path parameter. Non-numeric or non-positive values
// are treated the same as a missing post.
func postID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
