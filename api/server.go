package api

import (
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/matt-g-everett/glitchtx/glitch"
	"github.com/pkg/errors"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>glitch</title>
<style>
.glitch { position: relative; width: 40em; font-size: 8px; }
.glitch .strip {
  background-image: linear-gradient(90deg, #f06, #fc0, #0cf, #90f);
  background-size: 40em {{.Height}}em;
  animation-iteration-count: infinite;
}
.code { display: flex; gap: 1em; }
.code .column { flex: 1; overflow: auto; }
{{.CSS}}
</style>
</head>
<body>
<div class="glitch">
{{.Strips}}
</div>
<div class="code">
  <div class="column">
    <div class="heading">HTML</div>
    <pre>{{.HTML}}</pre>
  </div>
  <div class="column">
    <div class="heading">CSS</div>
    <pre>{{.Source}}</pre>
  </div>
</div>
</body>
</html>
`))

type pageData struct {
	Height int
	CSS    template.CSS
	Strips template.HTML
	HTML   string
	Source string
}

// Api serves a live preview of the generated effect.
type Api struct {
	mu        sync.Mutex
	generator *glitch.Generator
	height    int
	address   string
}

func NewApi(generator *glitch.Generator, height int, address string) *Api {
	a := new(Api)
	a.generator = generator
	a.height = height
	a.address = address
	return a
}

// document regenerates the effect. The generator's random source is not safe
// for concurrent use.
func (a *Api) document() glitch.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generator.Document(a.height)
}

func (a *Api) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	doc := a.document()
	data := pageData{
		Height: a.height,
		CSS:    template.CSS(doc.CSS()),
		Strips: template.HTML(doc.HTML()),
		HTML:   doc.HTML(),
		Source: doc.CSS(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (a *Api) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	css := a.generator.Stylesheet()
	a.mu.Unlock()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := w.Write([]byte(glitch.Document{Keyframes: css}.CSS())); err != nil {
		log.Printf("write stylesheet: %v", err)
	}
}

func (a *Api) handleStrips(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	strips := a.generator.GlitchHTML(a.height)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(glitch.Document{Strips: strips}.HTML())); err != nil {
		log.Printf("write strips: %v", err)
	}
}

// Handler routes the preview page and the raw sources.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", a.handlePage)
	mux.HandleFunc("/glitch.css", a.handleStylesheet)
	mux.HandleFunc("/strips.html", a.handleStrips)
	return mux
}

// Serve blocks serving the preview.
func (a *Api) Serve() error {
	log.Printf("Listening on %s...", a.address)
	return errors.Wrap(http.ListenAndServe(a.address, a.Handler()), "serve preview")
}
