// Package notion provides the notes/wiki source connector backed by the
// Notion REST API (via github.com/jomei/notionapi).
//
// A search returns pages and databases in upstream order. Page results are
// enriched with their block content, linearised to plain text:
//
//	paragraph            -> text line
//	heading_1/2/3        -> "# ", "## ", "### " prefixed line
//	bulleted/numbered    -> "• " prefixed line
//	child_database       -> "[Database: <title>] (<n> entries)" + one line per row
//	child_page           -> "### <title>" + the child page's own blocks
//
// Nested databases and pages are followed up to Config.MaxDepth levels.
// Content is capped at Config.ContentBudget characters.
package notion
