package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/pthm/linkel"
	"github.com/pthm/linkel/lib/dom"
)

func main() {
	reg := dom.NewRegistry()
	def, err := linkel.Register(reg)
	if err != nil {
		log.Fatal(err)
	}

	doc := dom.NewDocument(reg)
	nodes, err := doc.ParseFragment(`
		<nav>
			<cmp-link url="/">Home</cmp-link>
			<cmp-link url="/docs" is-button="" color-scheme="primary">Read the docs</cmp-link>
			<cmp-link url="https://github.com/pthm/linkel" is-external="">Source</cmp-link>
		</nav>`)
	if err != nil {
		log.Fatal(err)
	}
	doc.Scheduler().Flush()

	// Drive one link through its accessors after mount: the rendered page
	// below picks up the settled result.
	nav := dom.FindByTag(nodes, "nav")
	for _, kid := range nav.Children() {
		el, ok := kid.(*dom.Element)
		if !ok || el.Tag() != linkel.TagName {
			continue
		}
		if l, ok := def.LinkFor(el); ok && l.IsButton() {
			l.SetColorScheme("secondary")
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<!DOCTYPE html><html><body>")
		if err := linkel.Fragment(nodes).Render(context.Background(), w); err != nil {
			log.Println(err)
		}
		fmt.Fprint(w, "</body></html>")
	})

	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
