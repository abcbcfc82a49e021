package notion

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jomei/notionapi"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/transport"
	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.NotesSource = (*Connector)(nil)

// Connector searches a Notion workspace.
type Connector struct {
	client *notionapi.Client
	config *Config
}

// New creates a Notion connector.
func New(cfg *Config) (*Connector, error) {
	if cfg == nil || cfg.Token == "" {
		return nil, ErrTokenRequired
	}
	c := *cfg
	c.applyDefaults()

	httpClient := c.HTTPClient
	if c.BaseURL != "" {
		target, err := url.Parse(c.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("notion: invalid base url: %w", err)
		}
		redirected := *httpClient
		redirected.Transport = transport.RedirectTo(target, httpClient.Transport)
		httpClient = &redirected
	}

	client := notionapi.NewClient(
		notionapi.Token(c.Token),
		notionapi.WithHTTPClient(httpClient),
	)
	return &Connector{client: client, config: &c}, nil
}

// Search runs a workspace search and enriches page results with content.
func (c *Connector) Search(ctx context.Context, query string) ([]domain.Page, error) {
	resp, err := c.client.Search.Do(ctx, &notionapi.SearchRequest{
		Query:    query,
		PageSize: c.config.PageSize,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	pages := make([]domain.Page, 0, len(resp.Results))
	var withContent []int
	for _, obj := range resp.Results {
		switch o := obj.(type) {
		case *notionapi.Page:
			withContent = append(withContent, len(pages))
			pages = append(pages, c.pageResult(ctx, o))
		case *notionapi.Database:
			pages = append(pages, databaseResult(o))
		}
	}

	c.fillContent(ctx, pages, withContent)
	return pages, nil
}

func (c *Connector) pageResult(ctx context.Context, p *notionapi.Page) domain.Page {
	id := p.ID.String()
	return domain.Page{
		ID: id,
		Title: resolveTitle(titleCandidate{
			properties: p.Properties,
			childPage:  func() string { return c.childPageTitle(ctx, id) },
		}),
		URL:        p.URL,
		LastEdited: p.LastEditedTime,
		Type:       "page",
	}
}

func databaseResult(d *notionapi.Database) domain.Page {
	return domain.Page{
		ID: d.ID.String(),
		Title: resolveTitle(titleCandidate{
			properties:    nil,
			databaseTitle: d.Title,
		}),
		URL:        d.URL,
		LastEdited: d.LastEditedTime,
		Type:       "database",
	}
}

// childPageTitle retrieves the object as a block and reads its child_page title.
func (c *Connector) childPageTitle(ctx context.Context, id string) string {
	block, err := c.client.Block.Get(ctx, notionapi.BlockID(id))
	if err != nil {
		logger.Debug("notion: child page lookup for %s failed: %v", id, err)
		return ""
	}
	if cp, ok := block.(*notionapi.ChildPageBlock); ok {
		return cp.ChildPage.Title
	}
	return ""
}

// fillContent fetches content for pages[i] for every i in indexes.
// Failures leave content empty.
func (c *Connector) fillContent(ctx context.Context, pages []domain.Page, indexes []int) {
	var g errgroup.Group
	g.SetLimit(contentWorkers)
	for _, i := range indexes {
		g.Go(func() error {
			content, err := c.pageContent(ctx, pages[i].ID)
			if err != nil {
				logger.Warn("notion: content for %s failed: %v", pages[i].ID, err)
				return nil
			}
			pages[i].Content = content
			return nil
		})
	}
	_ = g.Wait()
}
