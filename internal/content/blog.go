package content

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// BlogNormalizer converts raw blog payloads into canonical records.
type BlogNormalizer struct {
	Config NormalizerConfig
}

// NewBlogNormalizer returns a normalizer with the Sona editorial default.
func NewBlogNormalizer() BlogNormalizer {
	return BlogNormalizer{Config: NormalizerConfig{DefaultAuthorName: DefaultBlogAuthor}}
}

// Normalize converts one raw blog record. It is total over JSON-shaped
// input: malformed optional fields default, and only a record without a
// numeric id yields nil. Related entries are normalized as leaves so their
// own related collections are empty regardless of what the CMS returned.
func (n BlogNormalizer) Normalize(raw any) *Blog {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	blog := &Blog{
		BlogLeaf:     n.leaf(record),
		RelatedBlogs: []BlogLeaf{},
	}
	for _, element := range strapi.ExtractCollection(record.Attrs["relatedBlogs"]) {
		related, ok := strapi.ResolveRecord(element)
		if !ok {
			continue
		}
		blog.RelatedBlogs = append(blog.RelatedBlogs, n.leaf(related))
	}
	return blog
}

func (n BlogNormalizer) leaf(record strapi.Record) BlogLeaf {
	attrs := record.Attrs
	viewCount, _ := strapi.IntAttr(attrs, "viewCount")

	return BlogLeaf{
		ID:              record.ID,
		DocumentID:      strapi.StringAttr(attrs, "documentId"),
		Title:           strapi.StringAttr(attrs, "title"),
		Slug:            strapi.StringAttr(attrs, "slug"),
		Excerpt:         strapi.StringAttr(attrs, "excerpt"),
		Content:         normalizeBody(attrs["content"]),
		Author:          n.Config.ResolveAuthor(attrs["author"], attrs),
		Featured:        strapi.BoolAttr(attrs, "featured"),
		ViewCount:       viewCount,
		ShowComments:    strapi.BoolAttr(attrs, "showComments"),
		MetaTitle:       strapi.StringAttr(attrs, "metaTitle"),
		MetaDescription: strapi.StringAttr(attrs, "metaDescription"),
		PublishedDate:   strapi.StringAttr(attrs, "publishedDate"),
		ReadTime:        strapi.StringAttr(attrs, "readTime"),
		BannerImage:     media.Normalize(attrs["bannerImage"]),
		Thumbnail:       media.Normalize(attrs["thumbnail"]),
		Categories:      NormalizeCategories(attrs["categories"]),
		Tags:            NormalizeTags(attrs["tags"]),
	}
}
