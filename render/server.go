package render

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/niceyeti/citytraffic/city"
	"github.com/niceyeti/citytraffic/sim"
	"github.com/niceyeti/citytraffic/version"
)

// Server serves the demo page and its websocket feed, fanning each
// connected browser's Snapshot stream out from a single Hub.
type Server struct {
	addr     string
	hub      *Hub
	city     *city.City
	gridSize int
}

// NewServer returns a Server over c's traffic, publishing snapshots read
// from local to any browser that connects. gridSize is the pixel size of
// one tile in the rendered canvas (the --grid_size configuration knob).
func NewServer(addr string, c *city.City, local *version.Local[sim.Traffic], gridSize int) *Server {
	return &Server{addr: addr, hub: NewHub(c, local), city: c, gridSize: gridSize}
}

// Serve runs the Hub's polling loop and the HTTP server until ctx is
// cancelled, which closes the listener and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	go s.hub.Run(ctx.Done(), 20*time.Millisecond)

	router := mux.NewRouter()
	router.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.serveWebsocket)

	srv := &http.Server{Addr: s.addr, Handler: router}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("render: serve: %w", err)
	}
	return nil
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	cli, err := newClient(s.hub, w, r)
	if err != nil {
		log.Println("render: websocket upgrade failed:", err)
		return
	}
	if err := cli.Sync(r.Context()); err != nil {
		log.Println("render: client disconnected:", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>citytraffic</title>
	<link rel="icon" href="data:,">
	<style>
		body { background: #111; margin: 0; }
		#canvas { display: block; margin: 0 auto; background: #222; }
	</style>
</head>
<body>
	<canvas id="canvas" width="{{.Width}}" height="{{.Height}}"></canvas>
	<script>
		const gridSize = {{.GridSize}};
		const canvas = document.getElementById("canvas");
		const ctx = canvas.getContext("2d");
		const ws = new WebSocket("ws://" + location.host + "/ws");

		ws.onmessage = function(event) {
			const snap = JSON.parse(event.data);
			ctx.clearRect(0, 0, canvas.width, canvas.height);
			for (const v of snap.Vehicles) {
				ctx.fillStyle = v.Color;
				ctx.fillRect(v.X * gridSize, v.Y * gridSize, gridSize - 1, gridSize - 1);
			}
		};
		ws.onerror = function(event) {
			console.log("websocket error:", event);
		};
	</script>
</body>
</html>
`))

type pageData struct {
	Width, Height, GridSize int
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	data := pageData{
		Width:    s.city.Width * s.gridSize,
		Height:   s.city.Height * s.gridSize,
		GridSize: s.gridSize,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
