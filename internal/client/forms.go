package client

import (
	"context"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CommentInput is the payload for a blog comment submission.
type CommentInput struct {
	Blog          int    `json:"blog"`
	AuthorName    string `json:"authorName"`
	AuthorEmail   string `json:"authorEmail"`
	Content       string `json:"content"`
	ParentComment *int   `json:"parentComment,omitempty"`
}

// Validate checks the comment before it reaches the CMS.
func (i CommentInput) Validate() error {
	errs := validation.Errors{}
	if i.Blog <= 0 {
		errs["blog"] = validation.NewError("scale.comments.blog_required", "blog id is required")
	}
	if strings.TrimSpace(i.AuthorName) == "" {
		errs["authorName"] = validation.NewError("scale.comments.author_name_required", "author name is required")
	}
	if email := strings.TrimSpace(i.AuthorEmail); email == "" || !strings.Contains(email, "@") {
		errs["authorEmail"] = validation.NewError("scale.comments.author_email_invalid", "a valid author email is required")
	}
	if strings.TrimSpace(i.Content) == "" {
		errs["content"] = validation.NewError("scale.comments.content_required", "comment content is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeadInput is the payload for the contact / lead-generation form.
type LeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Program string `json:"program,omitempty"`
	Message string `json:"message"`
}

// Validate checks the lead form before it reaches the CMS.
func (i LeadInput) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = validation.NewError("scale.leads.name_required", "name is required")
	}
	if email := strings.TrimSpace(i.Email); email == "" || !strings.Contains(email, "@") {
		errs["email"] = validation.NewError("scale.leads.email_invalid", "a valid email is required")
	}
	if strings.TrimSpace(i.Message) == "" {
		errs["message"] = validation.NewError("scale.leads.message_required", "message is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CollaborationInput is the payload of the multi-step industry
// collaboration form.
type CollaborationInput struct {
	CompanyName string   `json:"companyName"`
	ContactName string   `json:"contactName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Areas       []string `json:"areas,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// Validate checks the collaboration form before it reaches the CMS.
func (i CollaborationInput) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(i.CompanyName) == "" {
		errs["companyName"] = validation.NewError("scale.collaborations.company_required", "company name is required")
	}
	if strings.TrimSpace(i.ContactName) == "" {
		errs["contactName"] = validation.NewError("scale.collaborations.contact_required", "contact name is required")
	}
	if email := strings.TrimSpace(i.Email); email == "" || !strings.Contains(email, "@") {
		errs["email"] = validation.NewError("scale.collaborations.email_invalid", "a valid email is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// submission is the CMS write envelope. The reference id exists for log
// correlation only; it is never read back.
type submission struct {
	Data any `json:"data"`
}

// SubmitComment validates and posts a comment. Callers refetch the comment
// list on success; there is no optimistic merge.
func (c *Client) SubmitComment(ctx context.Context, input CommentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	reference := uuid.NewString()
	if err := c.fetch.Post(ctx, "comments", submission{Data: input}, nil); err != nil {
		c.log.Error("comment submission failed", "reference", reference, "error", err)
		return err
	}
	c.log.Info("comment submitted", "reference", reference, "blog", input.Blog)
	return nil
}

// SubmitLead validates and posts a lead form entry.
func (c *Client) SubmitLead(ctx context.Context, input LeadInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	reference := uuid.NewString()
	if err := c.fetch.Post(ctx, "leads", submission{Data: input}, nil); err != nil {
		c.log.Error("lead submission failed", "reference", reference, "error", err)
		return err
	}
	c.log.Info("lead submitted", "reference", reference)
	return nil
}

// SubmitCollaboration validates and posts an industry collaboration request.
func (c *Client) SubmitCollaboration(ctx context.Context, input CollaborationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	reference := uuid.NewString()
	if err := c.fetch.Post(ctx, "collaborations", submission{Data: input}, nil); err != nil {
		c.log.Error("collaboration submission failed", "reference", reference, "error", err)
		return err
	}
	c.log.Info("collaboration submitted", "reference", reference)
	return nil
}

// IncrementViewCount fires a view-count increment and swallows any failure;
// losing a count is preferable to surfacing an error on a page view.
func (c *Client) IncrementViewCount(ctx context.Context, contentType string, id int) {
	path := strings.TrimLeft(contentType, "/") + "/" + strconv.Itoa(id) + "/view"
	if err := c.fetch.Post(ctx, path, nil, nil); err != nil {
		c.log.Warn("view count increment failed", "path", path, "error", err)
	}
}
