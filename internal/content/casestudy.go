package content

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
	"github.com/sonascale/go-content/internal/util"
)

// CaseStudyNormalizer converts raw case-study payloads into canonical
// records. Case studies carry two fallbacks the other content types do not:
// meta fields derive from title/excerpt when absent, and the thumbnail falls
// back to the banner image.
type CaseStudyNormalizer struct {
	Config NormalizerConfig
}

// NewCaseStudyNormalizer returns a normalizer with the Sona editorial default.
func NewCaseStudyNormalizer() CaseStudyNormalizer {
	return CaseStudyNormalizer{Config: NormalizerConfig{DefaultAuthorName: DefaultBlogAuthor}}
}

// Normalize converts one raw case-study record. Related case studies are
// normalized as leaves with their own related collections forced empty.
func (n CaseStudyNormalizer) Normalize(raw any) *CaseStudy {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	study := &CaseStudy{
		CaseStudyLeaf:      n.leaf(record),
		RelatedCaseStudies: []CaseStudyLeaf{},
	}
	for _, element := range strapi.ExtractCollection(record.Attrs["relatedCaseStudies"]) {
		related, ok := strapi.ResolveRecord(element)
		if !ok {
			continue
		}
		study.RelatedCaseStudies = append(study.RelatedCaseStudies, n.leaf(related))
	}
	return study
}

func (n CaseStudyNormalizer) leaf(record strapi.Record) CaseStudyLeaf {
	attrs := record.Attrs
	viewCount, _ := strapi.IntAttr(attrs, "viewCount")

	title := strapi.StringAttr(attrs, "title")
	excerpt := strapi.StringAttr(attrs, "excerpt")

	banner := media.Normalize(attrs["bannerImage"])
	thumbnail := media.Normalize(attrs["thumbnail"])
	if thumbnail == nil {
		thumbnail = banner
	}

	metaTitle := util.FirstNonEmpty(strapi.StringAttr(attrs, "metaTitle"), title)
	metaDescription := util.FirstNonEmpty(strapi.StringAttr(attrs, "metaDescription"), excerpt)

	return CaseStudyLeaf{
		ID:              record.ID,
		DocumentID:      strapi.StringAttr(attrs, "documentId"),
		Title:           title,
		Slug:            strapi.StringAttr(attrs, "slug"),
		Excerpt:         excerpt,
		Content:         normalizeBody(attrs["content"]),
		Author:          n.Config.ResolveAuthor(attrs["author"], attrs),
		Featured:        strapi.BoolAttr(attrs, "featured"),
		ViewCount:       viewCount,
		ShowComments:    strapi.BoolAttr(attrs, "showComments"),
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		PublishedDate:   strapi.StringAttr(attrs, "publishedDate"),
		ProjectDate:     strapi.StringAttr(attrs, "projectDate"),
		ReadTime:        strapi.StringAttr(attrs, "readTime"),
		BannerImage:     banner,
		Thumbnail:       thumbnail,
		Categories:      NormalizeCategories(attrs["categories"]),
		Tags:            NormalizeTags(attrs["tags"]),
	}
}
