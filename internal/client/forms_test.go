package client

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func validComment() CommentInput {
	return CommentInput{
		Blog:        7,
		AuthorName:  "Asha Pillai",
		AuthorEmail: "asha@example.com",
		Content:     "Great writeup.",
	}
}

func TestCommentInputValidate(t *testing.T) {
	if err := validComment().Validate(); err != nil {
		t.Fatalf("expected valid comment, got %v", err)
	}

	input := CommentInput{AuthorEmail: "not-an-email"}
	err := input.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	for _, field := range []string{"blog", "authorName", "authorEmail", "content"} {
		if _, present := errs[field]; !present {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestLeadInputValidate(t *testing.T) {
	lead := LeadInput{Name: "Ravi", Email: "ravi@example.com", Message: "Send the brochure."}
	if err := lead.Validate(); err != nil {
		t.Fatalf("expected valid lead, got %v", err)
	}

	err := LeadInput{Email: "  "}.Validate()
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected name, email and message errors, got %v", errs)
	}
}

func TestCollaborationInputValidate(t *testing.T) {
	input := CollaborationInput{
		CompanyName: "Nexlify",
		ContactName: "Divya",
		Email:       "divya@nexlify.example.com",
		Areas:       []string{"internships"},
	}
	if err := input.Validate(); err != nil {
		t.Fatalf("expected valid collaboration, got %v", err)
	}

	err := CollaborationInput{}.Validate()
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, present := errs["companyName"]; !present {
		t.Fatalf("expected company error, got %v", errs)
	}
}

func TestSubmitCommentValidatesBeforePosting(t *testing.T) {
	stub := newStubFetcher()
	cms := New(stub)

	if err := cms.SubmitComment(context.Background(), CommentInput{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(stub.posts) != 0 {
		t.Fatalf("expected no write on invalid input, got %v", stub.posts)
	}

	if err := cms.SubmitComment(context.Background(), validComment()); err != nil {
		t.Fatalf("submit comment: %v", err)
	}
	if len(stub.posts) != 1 || stub.posts[0] != "comments" {
		t.Fatalf("expected one comments write, got %v", stub.posts)
	}
}

func TestIncrementViewCountSwallowsFailure(t *testing.T) {
	stub := newStubFetcher()
	cms := New(stub)

	cms.IncrementViewCount(context.Background(), "blogs", 42)
	if len(stub.posts) != 1 || stub.posts[0] != "blogs/42/view" {
		t.Fatalf("expected view increment path, got %v", stub.posts)
	}
}
