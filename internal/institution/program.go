package institution

import (
	"github.com/sonascale/go-content/internal/media"
	"github.com/sonascale/go-content/internal/strapi"
)

// ProgramSection is one ordered block of the program overview.
type ProgramSection struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       *int       `json:"order,omitempty"`
	Icon        *IconBadge `json:"icon"`
}

// Program is the institution program overview with its ordered sections.
type Program struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Image       *media.Descriptor `json:"image"`
	Sections    []ProgramSection  `json:"sections"`
}

// NormalizeProgram resolves the program section, normalizing and sorting
// its nested sections.
func NormalizeProgram(raw any) *Program {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}

	sections := make([]ProgramSection, 0)
	for _, element := range strapi.ExtractCollection(record.Attrs["sections"]) {
		if section := normalizeProgramSection(element); section != nil {
			sections = append(sections, *section)
		}
	}
	sortOrdered(sections,
		func(s ProgramSection) *int { return s.Order },
		func(s ProgramSection) string { return s.Title },
	)

	return &Program{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Image:       media.Normalize(record.Attrs["image"]),
		Sections:    sections,
	}
}

func normalizeProgramSection(raw any) *ProgramSection {
	record, ok := strapi.ResolveRecord(raw)
	if !ok {
		return nil
	}
	return &ProgramSection{
		ID:          record.ID,
		Title:       strapi.StringAttr(record.Attrs, "title"),
		Description: strapi.StringAttr(record.Attrs, "description"),
		Order:       orderAttr(record.Attrs),
		Icon:        NormalizeIconBadge(record.Attrs["icon"]),
	}
}
