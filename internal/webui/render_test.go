package webui

import (
	"html/template"
	"strings"
	"testing"
)

func panelCount(html template.HTML) int {
	return strings.Count(string(html), `<div class="panel"`)
}

func TestRenderHTML_SpotsBranch(t *testing.T) {
	raw := []byte(`{"spots":[{"name":"A"},{"name":"B"}]}`)

	html, err := RenderHTML(raw)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if panelCount(html) != 2 {
		t.Fatalf("expected 2 spot panels, got %d\n%s", panelCount(html), out)
	}
	if !strings.Contains(out, "Spot 1") || !strings.Contains(out, "Spot 2") {
		t.Fatalf("missing ordinal labels:\n%s", out)
	}
	if strings.Index(out, "Spot 1") > strings.Index(out, "Spot 2") {
		t.Fatal("spot panels out of order")
	}
	if !strings.Contains(out, "Found 2 spots") {
		t.Fatalf("missing header:\n%s", out)
	}

	rawView := template.HTMLEscapeString(prettyJSON(`{"spots":[{"name":"A"},{"name":"B"}]}`))
	if !strings.Contains(out, "<details") || !strings.Contains(out, rawView) {
		t.Fatalf("raw view must contain the full original object:\n%s", out)
	}
}

func TestRenderHTML_MessageBranch(t *testing.T) {
	html, err := RenderHTML([]byte(`{"message":"All set"}`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if panelCount(html) != 1 {
		t.Fatalf("expected exactly 1 panel, got %d\n%s", panelCount(html), out)
	}
	if !strings.Contains(out, "All set") {
		t.Fatalf("missing message text:\n%s", out)
	}
	if strings.Contains(out, "Spot ") {
		t.Fatal("message branch must not render spot panels")
	}
	// the fallback branch would have rendered the key name in bold
	if strings.Contains(out, "<strong>message</strong>") {
		t.Fatal("message branch must not fall through to key/value panels")
	}
}

func TestRenderHTML_FallbackBranchKeepsKeyOrder(t *testing.T) {
	html, err := RenderHTML([]byte(`{"status":"ok","count":3}`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if panelCount(html) != 2 {
		t.Fatalf("expected 2 key panels, got %d\n%s", panelCount(html), out)
	}
	if !strings.Contains(out, "<strong>status</strong> ok") {
		t.Fatalf("scalar values render as-is:\n%s", out)
	}
	if !strings.Contains(out, "<strong>count</strong> 3") {
		t.Fatalf("scalar values render as-is:\n%s", out)
	}
	if strings.Index(out, "status") > strings.Index(out, "count") {
		t.Fatal("panels must follow the object's own key order")
	}
}

func TestRenderHTML_FallbackPrettyPrintsComposites(t *testing.T) {
	html, err := RenderHTML([]byte(`{"meta":{"a":1}}`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if !strings.Contains(out, "<pre>") {
		t.Fatalf("object values should be pretty-printed:\n%s", out)
	}
}

func TestRenderHTML_SpotsWinsOverMessage(t *testing.T) {
	html, err := RenderHTML([]byte(`{"spots":[{"name":"A"}],"message":"ignored"}`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if !strings.Contains(out, "Spot 1") {
		t.Fatalf("spots branch should win:\n%s", out)
	}
	if strings.Contains(out, `panel-highlight`) {
		t.Fatal("message branch must not also run")
	}
}

func TestRenderHTML_NonObjectRendersRawOnly(t *testing.T) {
	html, err := RenderHTML([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if panelCount(html) != 0 {
		t.Fatalf("non-objects get no panels:\n%s", out)
	}
	if !strings.Contains(out, "<details") {
		t.Fatalf("raw view must still render:\n%s", out)
	}
}

func TestRenderHTML_EscapesServerText(t *testing.T) {
	html, err := RenderHTML([]byte(`{"message":"<script>alert(1)</script>"}`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(html)

	if strings.Contains(out, "<script>") {
		t.Fatalf("server text must be escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup:\n%s", out)
	}
}

func TestRenderHTML_InvalidJSON(t *testing.T) {
	if _, err := RenderHTML([]byte(`{"spots":`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
