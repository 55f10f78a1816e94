// Package markdown turns blog post bodies into safe HTML.
package markdown

import (
	"bytes"
	htmlstd "html"
	"html/template"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var spaceRegex = regexp.MustCompile(`\s+`)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// Raw HTML is let through here and stripped by the policy below.
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
	)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("loading").Matching(regexp.MustCompile("^lazy$")).OnElements("img")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowRelativeURLs(true)

	return &Renderer{md: md, policy: p, strict: bluemonday.StrictPolicy()}
}

// Render converts markdown to sanitized HTML. Content that fails to convert is
// shown escaped as plain text.
func (r *Renderer) Render(content string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(strings.TrimSpace(r.policy.Sanitize(buf.String())))
}

// Excerpt returns the post's own excerpt or, failing that, the first maxRunes
// characters of its text with formatting removed. Cut text ends on a word
// boundary followed by an ellipsis.
func (r *Renderer) Excerpt(post domain.BlogPost, maxRunes int) string {
	if s := strings.TrimSpace(post.Excerpt); s != "" {
		return s
	}
	return truncate(r.PlainText(post.Content), maxRunes)
}

// PlainText renders content and strips every tag, leaving collapsed text.
func (r *Renderer) PlainText(content string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		buf.Reset()
		buf.WriteString(content)
	}
	text := htmlstd.UnescapeString(r.strict.Sanitize(buf.String()))
	return strings.TrimSpace(spaceRegex.ReplaceAllString(text, " "))
}

func truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:maxRunes])
	if !unicode.IsSpace(runes[maxRunes]) {
		if i := strings.LastIndexByte(cut, ' '); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
