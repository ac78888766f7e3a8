package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Transport is the playback control the Api exposes.
type Transport interface {
	Clock() int64
	SetClock(t int64)
	Pause()
	Resume()
	Paused() bool
}

// ClockState is the body of clock requests and responses.
type ClockState struct {
	Clock  int64 `json:"clock"`
	Paused bool  `json:"paused"`
}

type Api struct {
	transport Transport
	listen    string
	pages     string
}

// NewApi creates an Api listening on listen that serves static pages from
// the pages directory.
func NewApi(transport Transport, listen string, pages string) *Api {
	a := new(Api)
	a.transport = transport
	a.listen = listen
	a.pages = pages
	return a
}

func (a *Api) writeState(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(ClockState{
		Clock:  a.transport.Clock(),
		Paused: a.transport.Paused(),
	})
	if err != nil {
		log.Printf("Writing clock state: %v", err)
	}
}

func (a *Api) getClock(w http.ResponseWriter, r *http.Request) {
	a.writeState(w)
}

func (a *Api) putClock(w http.ResponseWriter, r *http.Request) {
	var state struct {
		Clock *int64 `json:"clock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if state.Clock == nil {
		http.Error(w, "missing clock", http.StatusBadRequest)
		return
	}

	a.transport.SetClock(*state.Clock)
	log.Printf("Clock set to %d", *state.Clock)
	a.writeState(w)
}

func (a *Api) pause(w http.ResponseWriter, r *http.Request) {
	a.transport.Pause()
	a.writeState(w)
}

func (a *Api) resume(w http.ResponseWriter, r *http.Request) {
	a.transport.Resume()
	a.writeState(w)
}

// Handler returns the Api's routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /clock", a.getClock)
	mux.HandleFunc("PUT /clock", a.putClock)
	mux.HandleFunc("POST /pause", a.pause)
	mux.HandleFunc("POST /resume", a.resume)
	mux.Handle("GET /", http.FileServer(http.Dir(a.pages)))
	return mux
}

// Serve listens for requests until the server fails.
func (a *Api) Serve() error {
	log.Printf("Listening on %s...", a.listen)
	return http.ListenAndServe(a.listen, a.Handler())
}
