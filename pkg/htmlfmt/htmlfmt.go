// Package htmlfmt turns AI-generated text into styled HTML for display.
// It runs a markdown pass first and falls back to a line-oriented
// formatter when the input turns out not to be markdown.
package htmlfmt

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithRendererOptions(htmlrenderer.WithHardWraps()),
)

var (
	ulPattern      = regexp.MustCompile(`<ul>`)
	olPattern      = regexp.MustCompile(`<ol>`)
	liPattern      = regexp.MustCompile(`<li>`)
	headingPattern = regexp.MustCompile(`<h([1-6])`)
	strongPattern  = regexp.MustCompile(`<strong>`)
	emPattern      = regexp.MustCompile(`<em>`)

	bulletPattern   = regexp.MustCompile(`^[*\-•]\s+`)
	numberedPattern = regexp.MustCompile(`^\d+[.)]\s+`)

	boldStars        = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscores  = regexp.MustCompile(`__(.*?)__`)
	italicStar       = regexp.MustCompile(`\*(.*?)\*`)
	italicUnderscore = regexp.MustCompile(`_(.*?)_`)
	codeBackticks    = regexp.MustCompile("`(.*?)`")
)

// Render converts markdown text to HTML with styling classes injected
func Render(text string) string {
	if text == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return manualFormat(text)
	}

	return enhance(buf.String())
}

// SmartRender renders text that may or may not be markdown. When the
// markdown pass produces almost no markup (fewer than three tags), the
// line-oriented fallback takes over.
func SmartRender(text string) string {
	if text == "" {
		return ""
	}

	rendered := Render(text)
	if strings.Count(rendered, "<") < 3 {
		return manualFormat(text)
	}

	return rendered
}

// enhance injects CSS classes into the tags goldmark produced
func enhance(rendered string) string {
	rendered = ulPattern.ReplaceAllString(rendered, `<ul class="ai-bullet-list">`)
	rendered = olPattern.ReplaceAllString(rendered, `<ol class="ai-numbered-list">`)
	rendered = liPattern.ReplaceAllString(rendered, `<li class="ai-list-item">`)
	rendered = headingPattern.ReplaceAllString(rendered, `<h$1 class="ai-heading"`)
	rendered = strongPattern.ReplaceAllString(rendered, `<strong class="ai-bold">`)
	rendered = emPattern.ReplaceAllString(rendered, `<em class="ai-italic">`)
	return rendered
}

// manualFormat is a best-effort formatter for text that doesn't follow
// strict markdown: bullet and numbered lines, short colon-terminated
// lines as headings, everything else as paragraphs.
func manualFormat(text string) string {
	var out []string
	inList := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if inList {
				out = append(out, "</ul>")
				inList = false
			}
			out = append(out, "<br>")
			continue
		}

		switch {
		case bulletPattern.MatchString(line):
			if !inList {
				out = append(out, `<ul class="ai-bullet-list">`)
				inList = true
			}
			content := formatInline(bulletPattern.ReplaceAllString(line, ""))
			out = append(out, `<li class="ai-list-item">`+content+"</li>")

		case numberedPattern.MatchString(line):
			if inList {
				out = append(out, "</ul>")
				inList = false
			}
			content := formatInline(numberedPattern.ReplaceAllString(line, ""))
			out = append(out, `<ol class="ai-numbered-list">`)
			out = append(out, `<li class="ai-list-item">`+content+"</li>")
			out = append(out, "</ol>")

		case strings.HasSuffix(line, ":") && len(line) < 100:
			if inList {
				out = append(out, "</ul>")
				inList = false
			}
			content := formatInline(strings.TrimSuffix(line, ":"))
			out = append(out, `<h4 class="ai-heading">`+content+"</h4>")

		default:
			if inList {
				out = append(out, "</ul>")
				inList = false
			}
			out = append(out, `<p class="ai-paragraph">`+formatInline(line)+"</p>")
		}
	}

	if inList {
		out = append(out, "</ul>")
	}

	return strings.Join(out, "\n")
}

// formatInline escapes the line and applies bold/italic/code substitution
func formatInline(text string) string {
	text = html.EscapeString(text)

	text = boldStars.ReplaceAllString(text, `<strong class="ai-bold">$1</strong>`)
	text = boldUnderscores.ReplaceAllString(text, `<strong class="ai-bold">$1</strong>`)
	text = italicStar.ReplaceAllString(text, `<em class="ai-italic">$1</em>`)
	text = italicUnderscore.ReplaceAllString(text, `<em class="ai-italic">$1</em>`)
	text = codeBackticks.ReplaceAllString(text, `<code class="ai-code">$1</code>`)

	return text
}
