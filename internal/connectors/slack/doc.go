// Package slack provides the chat source connector backed by the Slack Web
// API (via github.com/slack-go/slack).
//
// Search first tries search.messages. That method needs a user token, so a
// bot token usually gets an error; when it fails or finds nothing the
// connector scans the recent history of channels the bot belongs to and
// matches the query case-insensitively.
package slack
