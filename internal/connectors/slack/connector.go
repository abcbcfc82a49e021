package slack

import (
	"context"
	"strings"

	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.ChatSource = (*Connector)(nil)

const (
	unknownChannel = "unknown"
	unknownAuthor  = "Unknown"
)

// Connector searches a Slack workspace.
type Connector struct {
	client *slack.Client
	config *Config
}

// New creates a Slack connector.
func New(cfg *Config) (*Connector, error) {
	if cfg == nil || cfg.Token == "" {
		return nil, ErrTokenRequired
	}
	c := *cfg
	c.applyDefaults()

	opts := []slack.Option{slack.OptionHTTPClient(c.HTTPClient)}
	if c.BaseURL != "" {
		base := c.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, slack.OptionAPIURL(base))
	}
	return &Connector{client: slack.New(c.Token, opts...), config: &c}, nil
}

// Search returns messages matching query, at most ResultLimit of them.
func (c *Connector) Search(ctx context.Context, query string) ([]domain.Message, error) {
	messages, err := c.searchMessages(ctx, query)
	if err != nil {
		logger.Debug("slack: search.messages failed, scanning history: %v", err)
	}
	if err != nil || len(messages) == 0 {
		messages, err = c.scanHistory(ctx, query)
		if err != nil {
			return nil, err
		}
	}
	return capMessages(messages, c.config.ResultLimit), nil
}

// searchMessages uses the search.messages method.
func (c *Connector) searchMessages(ctx context.Context, query string) ([]domain.Message, error) {
	params := slack.NewSearchParameters()
	params.Count = c.config.SearchCount

	resp, err := c.client.SearchMessagesContext(ctx, query, params)
	if err != nil {
		return nil, wrapError(err)
	}

	messages := make([]domain.Message, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		msg := domain.Message{
			Timestamp: m.Timestamp,
			Text:      m.Text,
			Channel:   channelName(m.Channel.Name),
			Username:  domain.FirstNonEmpty(author{username: m.Username, user: m.User}, authorRules, unknownAuthor),
		}
		if m.Permalink != "" {
			permalink := m.Permalink
			msg.Permalink = &permalink
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// scanHistory filters the recent history of member channels.
func (c *Connector) scanHistory(ctx context.Context, query string) ([]domain.Message, error) {
	channels, err := c.memberChannels(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	perChannel := make([][]domain.Message, len(channels))

	var g errgroup.Group
	g.SetLimit(historyWorkers)
	for i, ch := range channels {
		g.Go(func() error {
			found, err := c.channelMatches(ctx, ch, needle)
			if err != nil {
				logger.Warn("slack: history for #%s failed: %v", ch.Name, err)
				return nil
			}
			perChannel[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var messages []domain.Message
	for _, found := range perChannel {
		messages = append(messages, found...)
	}
	return messages, nil
}

// memberChannels lists public and private channels the bot belongs to.
func (c *Connector) memberChannels(ctx context.Context) ([]slack.Channel, error) {
	all, _, err := c.client.GetConversationsContext(ctx, &slack.GetConversationsParameters{
		Types:           conversationTypes,
		Limit:           ConversationListLimit,
		ExcludeArchived: true,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	var member []slack.Channel
	for _, ch := range all {
		if !ch.IsMember {
			continue
		}
		member = append(member, ch)
		if len(member) == c.config.ChannelLimit {
			break
		}
	}
	return member, nil
}

func (c *Connector) channelMatches(ctx context.Context, ch slack.Channel, needle string) ([]domain.Message, error) {
	resp, err := c.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: ch.ID,
		Limit:     c.config.HistoryLimit,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	channel := channelName(ch.Name)
	var found []domain.Message
	for _, m := range resp.Messages {
		if !strings.Contains(strings.ToLower(m.Text), needle) {
			continue
		}
		msg := domain.Message{
			Timestamp: m.Timestamp,
			Text:      domain.Truncate(m.Text, FallbackTextLimit),
			Channel:   channel,
			Username:  domain.FirstNonEmpty(author{username: m.Username, user: m.User}, authorRules, unknownAuthor),
		}
		if msg.Text != m.Text {
			msg.FullText = m.Text
		}
		found = append(found, msg)
	}
	return found, nil
}

func capMessages(messages []domain.Message, limit int) []domain.Message {
	if len(messages) > limit {
		return messages[:limit]
	}
	return messages
}

func channelName(name string) string {
	if name == "" {
		return unknownChannel
	}
	return name
}

// author carries the candidate author fields of a message.
type author struct {
	username string
	user     string
}

// authorRules prefer the display username over the user id.
var authorRules = []domain.Rule[author]{
	func(a author) string { return a.username },
	func(a author) string { return a.user },
}
