package webui

import "html/template"

// PageData feeds the page template. Exactly one panel is rendered visible
// for the given state.
type PageData struct {
	State   State
	Results template.HTML
	Error   string
}

const pageSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Hangout Spot Finder</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; }
.panel { border: 1px solid #ccc; border-radius: 4px; padding: 0.75rem; margin: 0.5rem 0; }
.panel-highlight { background: #f0f7ff; }
.error { color: #b00020; }
pre { overflow-x: auto; }
</style>
</head>
<body>
<h1>Hangout Spot Finder</h1>
<form id="gps-form" method="post" action="/submit">
  <label>Budget <input type="number" step="any" name="budget" required></label>
  <label>Distance <input type="number" step="any" name="distance" required></label>
  <button type="submit">Find spots</button>
</form>

<section id="idle-panel"{{if ne .State "idle"}} hidden{{end}}>
  <p>Enter a budget and a distance to get hangout suggestions.</p>
</section>

<section id="loading-panel"{{if ne .State "loading"}} hidden{{end}}>
  <p>Looking for spots…</p>
</section>

<section id="results-panel"{{if ne .State "results"}} hidden{{end}}>
  <div id="results">{{.Results}}</div>
</section>

<section id="error-panel"{{if ne .State "error"}} hidden{{end}}>
  <p class="error" id="error-message">{{.Error}}</p>
</section>
</body>
</html>
`

// PageTemplate parses the form page template.
func PageTemplate() *template.Template {
	return template.Must(template.New("page").Parse(pageSource))
}
