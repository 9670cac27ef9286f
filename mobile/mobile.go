package mobile

import (
	"log"
	"net/http"

	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server in the background.
// webDir: physical path to the extracted web assets, empty for the built-in page
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	srv := httpserver.NewServer(httpserver.Options{WebDir: webDir})

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
