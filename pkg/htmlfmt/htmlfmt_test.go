package htmlfmt

import (
	"strings"
	"testing"
)

func TestRenderMarkdownList(t *testing.T) {
	got := Render("# Key points\n\n- first item\n- second item")

	for _, want := range []string{
		`<h1 class="ai-heading"`,
		`<ul class="ai-bullet-list">`,
		`<li class="ai-list-item">`,
		"first item",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderBoldAndItalic(t *testing.T) {
	got := Render("This is **important** and *subtle*.")

	if !strings.Contains(got, `<strong class="ai-bold">important</strong>`) {
		t.Errorf("bold not styled: %s", got)
	}
	if !strings.Contains(got, `<em class="ai-italic">subtle</em>`) {
		t.Errorf("italic not styled: %s", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
	if got := SmartRender(""); got != "" {
		t.Errorf("SmartRender(\"\") = %q, want empty", got)
	}
}

func TestSmartRenderFallsBackForPlainText(t *testing.T) {
	// A bare one-liner renders to a single <p>, below the tag threshold
	got := SmartRender("Main findings:")

	if !strings.Contains(got, `<h4 class="ai-heading">Main findings</h4>`) {
		t.Errorf("fallback heading not produced:\n%s", got)
	}
}

func TestSmartRenderKeepsMarkdownOutput(t *testing.T) {
	got := SmartRender("- first\n- second")

	if !strings.Contains(got, `<ul class="ai-bullet-list">`) {
		t.Errorf("markdown list lost:\n%s", got)
	}
}

func TestManualFormatBulletsAndParagraphs(t *testing.T) {
	text := "Main findings:\n• revenue grew\n• costs stayed flat\n\nNext quarter looks stable."
	got := manualFormat(text)

	if !strings.Contains(got, `<h4 class="ai-heading">Main findings</h4>`) {
		t.Errorf("colon heading not detected:\n%s", got)
	}
	if !strings.Contains(got, `<ul class="ai-bullet-list">`) {
		t.Errorf("bullet list not detected:\n%s", got)
	}
	if !strings.Contains(got, `<p class="ai-paragraph">Next quarter looks stable.</p>`) {
		t.Errorf("trailing paragraph not wrapped:\n%s", got)
	}
}

func TestManualFormatNumberedLines(t *testing.T) {
	got := manualFormat("1. first step\n2. second step")

	if strings.Count(got, `<ol class="ai-numbered-list">`) != 2 {
		t.Errorf("each numbered line should open its own list:\n%s", got)
	}
	if !strings.Contains(got, "second step") {
		t.Errorf("numbered content lost:\n%s", got)
	}
}

func TestManualFormatEscapesHTML(t *testing.T) {
	got := manualFormat("use <script> carefully")

	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped tag:\n%s", got)
	}
}

func TestManualFormatLongColonLineIsParagraph(t *testing.T) {
	long := strings.Repeat("word ", 25) + "ends with colon:"
	got := manualFormat(long)

	if strings.Contains(got, "<h4") {
		t.Errorf("line of %d chars should not become a heading:\n%s", len(long), got)
	}
}
