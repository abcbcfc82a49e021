package notion

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

const (
	bullet         = "• "
	untitledDB     = "Untitled"
	rowFieldJoiner = ", "
)

// pageContent linearises the blocks of a page to text within the budget.
func (c *Connector) pageContent(ctx context.Context, pageID string) (string, error) {
	w := &contentWriter{budget: c.config.ContentBudget}
	if err := c.writeBlocks(ctx, w, notionapi.BlockID(pageID), 0); err != nil {
		return "", wrapError(err)
	}
	return domain.Truncate(strings.TrimSpace(w.b.String()), c.config.ContentBudget), nil
}

// contentWriter accumulates lines until the budget is spent.
type contentWriter struct {
	b      strings.Builder
	budget int
}

func (w *contentWriter) full() bool {
	return utf8.RuneCountInString(w.b.String()) >= w.budget
}

func (w *contentWriter) line(prefix, text string) {
	if text == "" {
		return
	}
	w.b.WriteString(prefix)
	w.b.WriteString(text)
	w.b.WriteByte('\n')
}

// writeBlocks renders the children of id. Nested databases and pages are
// followed only while depth is below the configured maximum. Only the
// top-level fetch error is returned; nested failures are logged and skipped.
func (c *Connector) writeBlocks(ctx context.Context, w *contentWriter, id notionapi.BlockID, depth int) error {
	resp, err := c.client.Block.GetChildren(ctx, id, &notionapi.Pagination{PageSize: ChildrenPageSize})
	if err != nil {
		return err
	}

	nested := depth < c.config.MaxDepth
	for _, block := range resp.Results {
		if w.full() {
			return nil
		}
		switch blk := block.(type) {
		case *notionapi.ParagraphBlock:
			w.line("", plainText(blk.Paragraph.RichText))
		case *notionapi.Heading1Block:
			w.line("# ", plainText(blk.Heading1.RichText))
		case *notionapi.Heading2Block:
			w.line("## ", plainText(blk.Heading2.RichText))
		case *notionapi.Heading3Block:
			w.line("### ", plainText(blk.Heading3.RichText))
		case *notionapi.BulletedListItemBlock:
			w.line(bullet, plainText(blk.BulletedListItem.RichText))
		case *notionapi.NumberedListItemBlock:
			w.line(bullet, plainText(blk.NumberedListItem.RichText))
		case *notionapi.ChildDatabaseBlock:
			if !nested {
				continue
			}
			if err := c.writeDatabase(ctx, w, blk); err != nil {
				logger.Warn("notion: database %s failed: %v", blk.ID, err)
			}
		case *notionapi.ChildPageBlock:
			if !nested {
				continue
			}
			w.line("### ", blk.ChildPage.Title)
			if err := c.writeBlocks(ctx, w, blk.ID, depth+1); err != nil {
				logger.Warn("notion: child page %s failed: %v", blk.ID, err)
			}
		}
	}
	return nil
}

// writeDatabase renders a nested database as a header and one line per row.
func (c *Connector) writeDatabase(ctx context.Context, w *contentWriter, blk *notionapi.ChildDatabaseBlock) error {
	resp, err := c.client.Database.Query(ctx, notionapi.DatabaseID(blk.ID.String()), &notionapi.DatabaseQueryRequest{
		PageSize: DatabasePageSize,
	})
	if err != nil {
		return err
	}

	title := blk.ChildDatabase.Title
	if title == "" {
		title = untitledDB
	}
	w.line("", "[Database: "+title+"] ("+strconv.Itoa(len(resp.Results))+" entries)")
	for _, row := range resp.Results {
		if w.full() {
			return nil
		}
		w.line("", rowLine(row.Properties))
	}
	return nil
}

// rowLine renders supported properties as "key: value" pairs in key order.
func rowLine(props notionapi.Properties) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := propertyValue(props[k]); v != "" {
			fields = append(fields, k+": "+v)
		}
	}
	return strings.Join(fields, rowFieldJoiner)
}

func propertyValue(p notionapi.Property) string {
	switch v := p.(type) {
	case *notionapi.TitleProperty:
		return plainText(v.Title)
	case *notionapi.RichTextProperty:
		return plainText(v.RichText)
	case *notionapi.EmailProperty:
		return v.Email
	case *notionapi.NumberProperty:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return ""
}
