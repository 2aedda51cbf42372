package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritegrid/spritegrid"
)

// MaxTableSide caps both dimensions of a /table listing.
const MaxTableSide = 256

type Handler struct {
	cfg    spritegrid.Config
	strict bool
}

// NewHandler constructs a web handler answering for the sheet layout in cfg.
// With strict set, negative grid indices are refused instead of mapped to
// negative offsets.
func NewHandler(cfg spritegrid.Config, strict bool) *Handler {
	return &Handler{
		cfg:    cfg,
		strict: strict,
	}
}

func (h *Handler) etag(kind string, args ...int) string {
	generation := 1 // bump if the way we generate it changes
	c := h.cfg
	tag := fmt.Sprintf(`W/"%s:%d:%d.%d.%d.%d`, kind, generation, c.SpriteWidth, c.SpriteHeight, c.HorizontalSpacing, c.VerticalSpacing)
	for _, a := range args {
		tag += ":" + strconv.Itoa(a)
	}
	return tag + `"`
}

// notModified answers with 304 if the client already has etag.
func notModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") != etag {
		return false
	}
	w.WriteHeader(http.StatusNotModified)
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("error encoding response: %v", err)
	}
}

func (h *Handler) rectHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	row, err := strconv.Atoi(vars["row"])
	if err != nil {
		http.Error(w, "row not a number", http.StatusBadRequest)
		return
	}
	col, err := strconv.Atoi(vars["col"])
	if err != nil {
		http.Error(w, "col not a number", http.StatusBadRequest)
		return
	}

	var rect spritegrid.Rect
	if h.strict {
		rect, err = h.cfg.CheckedRect(row, col)
		if errors.Cause(err) == spritegrid.ErrInvalidIndex {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		} else if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	} else {
		rect = h.cfg.Rect(row, col)
	}
	glog.V(2).Infof("rect %d,%d: %v", row, col, rect)

	if notModified(w, r, h.etag("rect", row, col)) {
		return
	}
	writeJSON(w, rect)
}

func (h *Handler) tableHandler(w http.ResponseWriter, r *http.Request) {
	rows, cols := 1, 1
	var err error
	if s := r.URL.Query().Get("rows"); s != "" {
		if rows, err = strconv.Atoi(s); err != nil || rows < 0 {
			http.Error(w, "rows not a non-negative number", http.StatusBadRequest)
			return
		}
	}
	if s := r.URL.Query().Get("cols"); s != "" {
		if cols, err = strconv.Atoi(s); err != nil || cols < 0 {
			http.Error(w, "cols not a non-negative number", http.StatusBadRequest)
			return
		}
	}
	if rows > MaxTableSide {
		rows = MaxTableSide
	}
	if cols > MaxTableSide {
		cols = MaxTableSide
	}

	if notModified(w, r, h.etag("table", rows, cols)) {
		return
	}
	writeJSON(w, h.cfg.Table(rows, cols))
}

func (h *Handler) configHandler(w http.ResponseWriter, r *http.Request) {
	if notModified(w, r, h.etag("config")) {
		return
	}
	writeJSON(w, h.cfg)
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/rect/{row:-?[0-9]+}/{col:-?[0-9]+}", h.rectHandler).Methods(http.MethodGet)
	r.HandleFunc("/table", h.tableHandler).Methods(http.MethodGet)
	r.HandleFunc("/config", h.configHandler).Methods(http.MethodGet)
}
