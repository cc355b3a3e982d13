package main

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/net/context"
)

func init() {
	// runStatusService wg
	wg.Add(1)
}

type statusResponse struct {
	Response   string  `json:"response"`
	Error      string  `json:"error,omitempty"`
	Mode       string  `json:"mode"`
	Display    string  `json:"display"`
	Brightness int     `json:"brightness"`
	Longitude  float64 `json:"longitude"`
	Ticks      int64   `json:"ticks"`
	Late       int64   `json:"late_ticks"`
	LastTick   string  `json:"last_tick,omitempty"`
	NextWake   string  `json:"next_wake,omitempty"`
	WorstWake  string  `json:"worst_wake_error"`
	MeanWake   string  `json:"mean_wake_error"`
	GPSOffset  string  `json:"gps_offset,omitempty"`
	GPSSeen    string  `json:"gps_seen,omitempty"`
}

// APIHandler - settings for the thing that handles HTTP requests
type APIHandler struct {
	rt     runtimeConfig
	secret string
	user   string
	realm  string
}

// NewHandler - create a new API handler
func NewHandler(rt runtimeConfig) APIHandler {
	return APIHandler{
		rt:     rt,
		secret: rt.settings.GetString(sHTTPAuth),
		user:   "spiclock",
		realm:  "spiclock",
	}
}

func (m *APIHandler) getRealm() string {
	return m.realm
}

// BasicAuth - provide a middleware to authenticate users
func (m *APIHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(m.secret)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.getRealm()+`"`)
			w.WriteHeader(401)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *APIHandler) getStatus() statusResponse {
	v := m.rt.stats.view()
	resp := statusResponse{
		Response:   "OK",
		Mode:       m.rt.settings.GetString(sClockMode),
		Display:    m.rt.settings.GetString(sDisplay),
		Brightness: int(m.rt.settings.GetByte(sBright) & 0x0F),
		Longitude:  m.rt.settings.GetFloat64(sLongitude),
		Ticks:      v.Ticks,
		Late:       v.Late,
		WorstWake:  v.WorstWake.String(),
		MeanWake:   v.MeanWake.String(),
	}

	if v.LastTick.IsZero() {
		resp.Response = "STARTING"
	} else {
		resp.LastTick = v.LastTick.Format(time.RFC3339Nano)
		resp.NextWake = v.NextWake.Format(time.RFC3339Nano)
		// the loop refreshes ten times a second; going a whole second
		// without a tick means it is wedged or gone
		if m.rt.clock.Now().Sub(v.LastTick) > time.Second {
			resp.Response = "STALLED"
			resp.Error = "no tick since " + resp.LastTick
		}
	}

	if !v.GPSSeen.IsZero() {
		resp.GPSOffset = v.GPSOffset.String()
		resp.GPSSeen = v.GPSSeen.Format(time.RFC3339)
	}
	return resp
}

func writeAnswer(w http.ResponseWriter, sr statusResponse) {
	output, _ := json.Marshal(sr)
	w.Write(output)
}

func (m *APIHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, m.getStatus())
}

func (m *APIHandler) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/status", 301)
}

func startStatusService(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Status"}
	go runStatusService(rt)
}

func runStatusService(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runStatusService")
	}()

	addr := rt.settings.GetString(sHTTPAddr)
	if addr == "" {
		rt.logger.Println("status service disabled")
		return
	}

	handler := NewHandler(rt)

	r := mux.NewRouter()
	if handler.secret != "" {
		// auth middleware
		r.Use(handler.BasicAuth)
	}
	r.HandleFunc("/api/status", handler.apiStatus).Methods("GET")
	r.HandleFunc("/", handler.rootHandler)

	srv := &http.Server{Addr: addr, Handler: r}

	// launch the server
	go func() {
		rt.logger.Println("starting status http server on " + addr)
		err := srv.ListenAndServe()
		rt.logger.Printf("%v", err)
	}()

	<-rt.comms.quit
	rt.logger.Println("quit from runStatusService")
	srv.Shutdown(context.Background())
}
