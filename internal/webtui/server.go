// Package webtui hosts pickers over a websocket: every connection owns its own
// Picker, sends JSON ops and receives state and change frames.
package webtui

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"datewheel-cli/internal/datewheel"
)

type ServerConfig struct {
	Addr string
	// Picker seeds every new connection.
	Picker datewheel.Config
	// Logger receives connection diagnostics; nil discards them.
	Logger *log.Logger
}

type Server struct {
	cfg ServerConfig
	log *log.Logger
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("webtui: missing addr")
	}
	cfg.Picker = cfg.Picker.Merge(datewheel.DefaultConfig())
	if err := cfg.Picker.Validate(); err != nil {
		return nil, err
	}
	lg := cfg.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Server{cfg: cfg, log: lg}, nil
}

func (s *Server) Addr() string {
	return strings.TrimSpace(s.cfg.Addr)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexHTML)
}

const indexHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>datewheel</title>
<style>
body { font-family: ui-monospace, monospace; margin: 2rem; }
#date { font-size: 2rem; margin-bottom: 1rem; }
#log { color: #666; white-space: pre; }
button { min-width: 2.5rem; }
</style>
</head>
<body>
<div id="date">…</div>
<div>
  day <button data-w="day" data-d="-1">−</button><button data-w="day" data-d="1">+</button>
  month <button data-w="month" data-d="-1">−</button><button data-w="month" data-d="1">+</button>
  year <button data-w="year" data-d="-1">−</button><button data-w="year" data-d="1">+</button>
  <select id="locale"><option>en-US</option><option>ru-RU</option></select>
</div>
<div id="log"></div>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
const pad = (n, w) => String(n).padStart(w, "0");
const fmt = d => pad(d.day, 2) + "." + pad(d.month, 2) + "." + pad(d.year, 4);
ws.onmessage = ev => {
  const m = JSON.parse(ev.data);
  if (m.type === "state") {
    document.getElementById("date").textContent = fmt(m.date) + " (" + m.monthName + ")";
  } else if (m.type === "changed") {
    document.getElementById("log").textContent += fmt(m.old) + " -> " + fmt(m.new) + "\n";
  } else if (m.type === "error") {
    document.getElementById("log").textContent += "error: " + m.error + "\n";
  }
};
document.querySelectorAll("button[data-w]").forEach(b => b.onclick = () =>
  ws.send(JSON.stringify({op: "scroll", wheel: b.dataset.w, value: Number(b.dataset.d)})));
document.getElementById("locale").onchange = e =>
  ws.send(JSON.stringify({op: "setLocale", locale: e.target.value}));
</script>
</body>
</html>
`
