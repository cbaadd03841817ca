package webui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/tidwall/gjson"
)

// RenderHTML converts an arbitrary JSON response body into an HTML fragment.
//
// Objects get a human-readable section first: a panel per spot when the
// payload carries a "spots" sequence, a single highlighted panel when it
// carries a "message", and otherwise one panel per top-level key in the
// object's own key order. A collapsible raw-JSON view is always appended.
// Non-object payloads render the raw view only.
//
// Every response-derived string passes through HTML escaping before being
// embedded; the server's payload is untrusted.
func RenderHTML(raw []byte) (template.HTML, error) {
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("response body is not valid JSON")
	}

	root := gjson.ParseBytes(raw)

	var b strings.Builder
	if root.IsObject() {
		renderObject(&b, root)
	}
	renderRawView(&b, raw)

	return template.HTML(b.String()), nil
}

// renderObject writes the human-readable section. Branch precedence is
// fixed: spots, then message, then the generic key/value fallback. Only
// one branch applies.
func renderObject(b *strings.Builder, root gjson.Result) {
	if spots := root.Get("spots"); spots.IsArray() {
		renderSpots(b, spots)
		return
	}
	if message := root.Get("message"); message.Exists() {
		renderMessage(b, message)
		return
	}
	renderKeyValues(b, root)
}

func renderSpots(b *strings.Builder, spots gjson.Result) {
	entries := spots.Array()
	fmt.Fprintf(b, "<h3>Found %d spots</h3>\n", len(entries))
	for i, entry := range entries {
		fmt.Fprintf(b, `<div class="panel"><strong>Spot %d</strong><pre>%s</pre></div>`+"\n",
			i+1, template.HTMLEscapeString(prettyJSON(entry.Raw)))
	}
}

func renderMessage(b *strings.Builder, message gjson.Result) {
	fmt.Fprintf(b, `<div class="panel panel-highlight">%s</div>`+"\n",
		template.HTMLEscapeString(message.String()))
}

func renderKeyValues(b *strings.Builder, root gjson.Result) {
	root.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() || value.IsArray() {
			fmt.Fprintf(b, `<div class="panel"><strong>%s</strong><pre>%s</pre></div>`+"\n",
				template.HTMLEscapeString(key.String()),
				template.HTMLEscapeString(prettyJSON(value.Raw)))
		} else {
			fmt.Fprintf(b, `<div class="panel"><strong>%s</strong> %s</div>`+"\n",
				template.HTMLEscapeString(key.String()),
				template.HTMLEscapeString(value.String()))
		}
		return true
	})
}

func renderRawView(b *strings.Builder, raw []byte) {
	fmt.Fprintf(b, `<details class="raw-view"><summary>Raw JSON</summary><pre>%s</pre></details>`+"\n",
		template.HTMLEscapeString(prettyJSON(string(raw))))
}

func prettyJSON(raw string) string {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(raw), "", "  "); err != nil {
		return raw
	}
	return out.String()
}
