// Package runtime exposes Go runtime state as a diagnostics unit.
package runtime

import (
	"bytes"
	"fmt"
	"net/http"
	goruntime "runtime"
	"runtime/debug"
	"strconv"
	"time"

	units "github.com/docker/go-units"

	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/pkg/handlers"
)

const UnitName = "Runtime"

func init() {
	diagnostics.Register("runtime", New)
}

// Memory is a snapshot of heap and GC statistics.
type Memory struct {
	Alloc       uint64 `json:"alloc"`
	AllocHuman  string `json:"alloc_human"`
	TotalAlloc  uint64 `json:"total_alloc"`
	Sys         uint64 `json:"sys"`
	SysHuman    string `json:"sys_human"`
	HeapObjects uint64 `json:"heap_objects"`
	NumGC       uint32 `json:"num_gc"`
	LastGC      string `json:"last_gc,omitempty"`
}

// Goroutines reports the goroutine count and process uptime.
type Goroutines struct {
	Count  int    `json:"count"`
	Uptime string `json:"uptime"`
}

// Build describes the running binary.
type Build struct {
	GoVersion string            `json:"go_version"`
	Path      string            `json:"path,omitempty"`
	Version   string            `json:"version,omitempty"`
	Settings  map[string]string `json:"settings,omitempty"`
}

type handler struct {
	started time.Time
}

// New builds the runtime diagnostics unit.
func New(systems *diagnostics.Systems) (diag.Unit, error) {
	h := &handler{started: time.Now()}

	return diag.NewUnit(UnitName,
		diag.WithTypes(diag.Type{
			Name: "RuntimeFubuDiagnostics",
			Actions: []diag.Action{
				{Name: "Memory", Title: "Memory", Index: true, Handler: h.Memory},
				{Name: "Goroutines", Title: "Goroutines", Handler: h.Goroutines},
				{Name: "Build", Title: "Build info", Handler: h.Build},
				{Name: "Stack", Title: "Goroutine stack", Inputs: []string{"goroutine"}, Handler: h.Stack},
				{Name: "GC", Title: "Run GC", Method: http.MethodPost, Handler: h.GC},
			},
		}),
		diag.WithConfiguration(func() (diag.Configuration, error) {
			return diag.Configuration{
				Title:       "Runtime",
				Description: "Go runtime state of the running process",
			}, nil
		}),
	), nil
}

func (h *handler) Memory(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, readMemory())
}

func (h *handler) Goroutines(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Goroutines{
		Count:  goruntime.NumGoroutine(),
		Uptime: units.HumanDuration(time.Since(h.started)),
	})
}

func (h *handler) Build(w http.ResponseWriter, r *http.Request) {
	info := Build{GoVersion: goruntime.Version()}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Path = bi.Main.Path
		info.Version = bi.Main.Version
		info.Settings = make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			info.Settings[s.Key] = s.Value
		}
	}

	handlers.RespondJSON(w, http.StatusOK, info)
}

// Stack writes the stack trace of a single goroutine as plain text.
func (h *handler) Stack(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("goroutine"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid goroutine id", http.StatusBadRequest)
		return
	}

	stack, ok := FindStack(allStacks(), id)
	if !ok {
		http.Error(w, fmt.Sprintf("goroutine %d not found", id), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(stack)
}

func (h *handler) GC(w http.ResponseWriter, r *http.Request) {
	before := readMemory()
	goruntime.GC()
	after := readMemory()

	handlers.RespondJSON(w, http.StatusOK, map[string]Memory{
		"before": before,
		"after":  after,
	})
}

func readMemory() Memory {
	var ms goruntime.MemStats
	goruntime.ReadMemStats(&ms)

	m := Memory{
		Alloc:       ms.Alloc,
		AllocHuman:  units.BytesSize(float64(ms.Alloc)),
		TotalAlloc:  ms.TotalAlloc,
		Sys:         ms.Sys,
		SysHuman:    units.BytesSize(float64(ms.Sys)),
		HeapObjects: ms.HeapObjects,
		NumGC:       ms.NumGC,
	}
	if ms.LastGC > 0 {
		m.LastGC = time.Unix(0, int64(ms.LastGC)).UTC().Format(time.RFC3339)
	}
	return m
}

func allStacks() []byte {
	buf := make([]byte, 64<<10)
	for {
		n := goruntime.Stack(buf, true)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}

// FindStack extracts the block for goroutine id from a full stack dump.
func FindStack(dump []byte, id int) ([]byte, bool) {
	header := []byte(fmt.Sprintf("goroutine %d ", id))

	for _, block := range bytes.Split(dump, []byte("\n\n")) {
		if bytes.HasPrefix(block, header) {
			return block, true
		}
	}
	return nil, false
}
