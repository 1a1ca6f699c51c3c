package main

import (
	"flag"
	"log"
	"net/http"
	"path/filepath"
)

// Serves the compiled demo: build stipple.wasm first, then run this and
// open the printed address in a browser with webcam access.
func main() {
	addr := flag.String("a", ":5000", "address to serve (host:port)")
	root := flag.String("r", ".", "directory holding index.html and stipple.wasm")
	flag.Parse()

	dir, err := filepath.Abs(*root)
	if err != nil {
		log.Fatalln(err)
	}

	fs := http.FileServer(http.Dir(dir))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		fs.ServeHTTP(w, r)
	})

	log.Printf("serving %s on %s", dir, *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalln(err)
	}
}
