package notion

import (
	"strings"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// untitled is used when no title rule matches.
const untitled = "Untitled"

// titleCandidate carries everything a title rule may inspect.
type titleCandidate struct {
	properties    notionapi.Properties
	databaseTitle []notionapi.RichText

	// childPage looks the object up as a child_page block. It is only
	// called when every earlier rule came up empty.
	childPage func() string
}

// titleRules are evaluated in order; the first non-empty result wins.
var titleRules = []domain.Rule[titleCandidate]{
	titleProperty("title"),
	titleProperty("Name"),
	titleProperty("name"),
	databaseTitle,
	childPageTitle,
}

// resolveTitle applies titleRules to the candidate.
func resolveTitle(c titleCandidate) string {
	return domain.FirstNonEmpty(c, titleRules, untitled)
}

// titleProperty reads a title-typed property by key.
func titleProperty(key string) domain.Rule[titleCandidate] {
	return func(c titleCandidate) string {
		prop, ok := c.properties[key].(*notionapi.TitleProperty)
		if !ok {
			return ""
		}
		return plainText(prop.Title)
	}
}

func databaseTitle(c titleCandidate) string {
	return plainText(c.databaseTitle)
}

func childPageTitle(c titleCandidate) string {
	if c.childPage == nil {
		return ""
	}
	return c.childPage()
}

// plainText concatenates the plain text of rich text segments.
func plainText(segments []notionapi.RichText) string {
	var b strings.Builder
	for _, rt := range segments {
		b.WriteString(rt.PlainText)
	}
	return strings.TrimSpace(b.String())
}
