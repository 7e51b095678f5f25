package content

import (
	"github.com/sonascale/go-content/internal/media"
)

// Author is the resolved form of the polymorphic author field. The upstream
// record may carry a bare display name, a nested author object, or author
// fields flattened onto the content record itself; resolution collapses all
// three into this shape. A non-nil Author always has a non-blank Name.
type Author struct {
	Name     string            `json:"name"`
	Role     string            `json:"role,omitempty"`
	Bio      string            `json:"bio,omitempty"`
	Image    *media.Descriptor `json:"image"`
	LinkedIn string            `json:"linkedin,omitempty"`
	Twitter  string            `json:"twitter,omitempty"`
	Email    string            `json:"email,omitempty"`
}

// Category is an already-flat taxonomy record.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// Tag is an already-flat taxonomy record.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Body holds the entry body in whichever form the CMS delivered it: a
// markdown string or a structured rich-text block array. Block rendering is
// out of scope; blocks are preserved verbatim for the frontend placeholder.
type Body struct {
	Markdown string `json:"markdown,omitempty"`
	Blocks   []any  `json:"blocks,omitempty"`
}

// BlogLeaf is a blog entry without its related collection. Related entries
// are normalized as leaves, so the type system itself bounds the
// related-of-related expansion at depth one.
type BlogLeaf struct {
	ID              int               `json:"id"`
	DocumentID      string            `json:"documentId"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Excerpt         string            `json:"excerpt"`
	Content         *Body             `json:"content"`
	Author          *Author           `json:"author"`
	Featured        bool              `json:"featured"`
	ViewCount       int               `json:"viewCount"`
	ShowComments    bool              `json:"showComments"`
	MetaTitle       string            `json:"metaTitle,omitempty"`
	MetaDescription string            `json:"metaDescription,omitempty"`
	PublishedDate   string            `json:"publishedDate,omitempty"`
	ReadTime        string            `json:"readTime,omitempty"`
	BannerImage     *media.Descriptor `json:"bannerImage"`
	Thumbnail       *media.Descriptor `json:"thumbnail"`
	Categories      []Category        `json:"categories"`
	Tags            []Tag             `json:"tags"`
}

// Blog is a fully populated blog entry.
type Blog struct {
	BlogLeaf
	RelatedBlogs []BlogLeaf `json:"relatedBlogs"`
}

// EventLeaf is an event without its related collection.
type EventLeaf struct {
	ID                 int               `json:"id"`
	DocumentID         string            `json:"documentId"`
	Title              string            `json:"title"`
	Slug               string            `json:"slug"`
	Excerpt            string            `json:"excerpt"`
	Content            *Body             `json:"content"`
	Author             *Author           `json:"author"`
	Featured           bool              `json:"featured"`
	ViewCount          int               `json:"viewCount"`
	ShowComments       bool              `json:"showComments"`
	MetaTitle          string            `json:"metaTitle,omitempty"`
	MetaDescription    string            `json:"metaDescription,omitempty"`
	EventType          string            `json:"eventType,omitempty"`
	EventDate          string            `json:"eventDate,omitempty"`
	EventTime          string            `json:"eventTime,omitempty"`
	EventLocation      string            `json:"eventLocation,omitempty"`
	RegistrationStatus string            `json:"registrationStatus,omitempty"`
	FeaturedImage      *media.Descriptor `json:"featuredImage"`
	ThumbnailImage     *media.Descriptor `json:"thumbnailImage"`
	Categories         []Category        `json:"categories"`
	Tags               []Tag             `json:"tags"`
}

// Event is a fully populated event.
type Event struct {
	EventLeaf
	RelatedEvents []EventLeaf `json:"relatedEvents"`
}

// CaseStudyLeaf is a case study without its related collection.
type CaseStudyLeaf struct {
	ID              int               `json:"id"`
	DocumentID      string            `json:"documentId"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Excerpt         string            `json:"excerpt"`
	Content         *Body             `json:"content"`
	Author          *Author           `json:"author"`
	Featured        bool              `json:"featured"`
	ViewCount       int               `json:"viewCount"`
	ShowComments    bool              `json:"showComments"`
	MetaTitle       string            `json:"metaTitle,omitempty"`
	MetaDescription string            `json:"metaDescription,omitempty"`
	PublishedDate   string            `json:"publishedDate,omitempty"`
	ProjectDate     string            `json:"projectDate,omitempty"`
	ReadTime        string            `json:"readTime,omitempty"`
	BannerImage     *media.Descriptor `json:"bannerImage"`
	Thumbnail       *media.Descriptor `json:"thumbnail"`
	Categories      []Category        `json:"categories"`
	Tags            []Tag             `json:"tags"`
}

// CaseStudy is a fully populated case study.
type CaseStudy struct {
	CaseStudyLeaf
	RelatedCaseStudies []CaseStudyLeaf `json:"relatedCaseStudies"`
}
