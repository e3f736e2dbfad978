package telemetry

import (
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Telemetry is diagnostic-only: clients report coarse performance samples
// (frame drops, load/render timings, resource transfer sizes) and the
// service aggregates them for log inspection. Nothing here feeds back
// into behavior.

// Sample is one client-reported measurement batch.
type Sample struct {
	LoadTimeMs           int        `json:"load_time_ms"`
	RenderTimeMs         int        `json:"render_time_ms"`
	InteractionLatencyMs int        `json:"interaction_latency_ms"`
	FrameDrops           int        `json:"frame_drops"`
	MemoryUsageMB        int        `json:"memory_usage_mb"`
	Resources            []Resource `json:"resources,omitempty"`
}

// Resource is one loaded asset and its transfer size.
type Resource struct {
	Name         string `json:"name"`
	TransferSize int64  `json:"transfer_size"`
}

// BundleBreakdown accumulates transfer sizes by asset class.
type BundleBreakdown struct {
	JSBytes    int64 `json:"js_bytes"`
	CSSBytes   int64 `json:"css_bytes"`
	ImageBytes int64 `json:"image_bytes"`
}

func (b BundleBreakdown) Total() int64 {
	return b.JSBytes + b.CSSBytes + b.ImageBytes
}

// MemoryReader abstracts how server-side memory usage is measured, so
// tests can substitute fixed values.
type MemoryReader interface {
	Read() MemoryInfo
}

// MemoryInfo is a coarse heap snapshot in whole megabytes.
type MemoryInfo struct {
	HeapAllocMB int `json:"heap_alloc_mb"`
	HeapSysMB   int `json:"heap_sys_mb"`
}

type runtimeMemoryReader struct{}

func (runtimeMemoryReader) Read() MemoryInfo {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryInfo{
		HeapAllocMB: int(ms.HeapAlloc / 1024 / 1024),
		HeapSysMB:   int(ms.HeapSys / 1024 / 1024),
	}
}

// Collector aggregates telemetry samples. It is an explicitly
// constructed, injectable object rather than a process-wide accumulator,
// so tests can isolate instances.
type Collector struct {
	mu        sync.Mutex
	sessionID string
	startedAt time.Time
	mem       MemoryReader

	samples int
	latest  Sample
	bundle  BundleBreakdown
}

// NewCollector returns an empty Collector. A nil MemoryReader selects the
// runtime-backed one.
func NewCollector(mem MemoryReader) *Collector {
	if mem == nil {
		mem = runtimeMemoryReader{}
	}
	return &Collector{
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		mem:       mem,
	}
}

// Record folds one sample into the collector. Timing fields keep the
// latest reported value; resource sizes accumulate into the bundle
// breakdown.
func (c *Collector) Record(s Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.samples++
	c.latest = Sample{
		LoadTimeMs:           s.LoadTimeMs,
		RenderTimeMs:         s.RenderTimeMs,
		InteractionLatencyMs: s.InteractionLatencyMs,
		FrameDrops:           s.FrameDrops,
		MemoryUsageMB:        s.MemoryUsageMB,
	}
	for _, res := range s.Resources {
		c.accumulate(res)
	}
}

func (c *Collector) accumulate(res Resource) {
	switch classifyResource(res.Name) {
	case "js":
		c.bundle.JSBytes += res.TransferSize
	case "css":
		c.bundle.CSSBytes += res.TransferSize
	case "image":
		c.bundle.ImageBytes += res.TransferSize
	}
}

func classifyResource(name string) string {
	ext := strings.ToLower(path.Ext(strings.SplitN(name, "?", 2)[0]))
	switch ext {
	case ".js", ".mjs":
		return "js"
	case ".css":
		return "css"
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg":
		return "image"
	}
	return "other"
}

// Snapshot is a point-in-time aggregate view for diagnostic logging.
type Snapshot struct {
	SessionID string `json:"session_id"`
	UptimeSec int    `json:"uptime_sec"`
	Samples   int    `json:"samples"`

	LoadTimeMs           int `json:"load_time_ms"`
	RenderTimeMs         int `json:"render_time_ms"`
	InteractionLatencyMs int `json:"interaction_latency_ms"`
	FrameDrops           int `json:"frame_drops"`
	ClientMemoryMB       int `json:"client_memory_mb"`

	Bundle          BundleBreakdown `json:"bundle"`
	BundleTotal     string          `json:"bundle_total"`
	BundleJS        string          `json:"bundle_js"`
	BundleCSS       string          `json:"bundle_css"`
	BundleImages    string          `json:"bundle_images"`
	ServerMemory    MemoryInfo      `json:"server_memory"`
	Grade           string          `json:"grade"`
	Recommendations []string        `json:"recommendations"`
}

// Snapshot computes the current aggregate view.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		SessionID:            c.sessionID,
		UptimeSec:            int(time.Since(c.startedAt) / time.Second),
		Samples:              c.samples,
		LoadTimeMs:           c.latest.LoadTimeMs,
		RenderTimeMs:         c.latest.RenderTimeMs,
		InteractionLatencyMs: c.latest.InteractionLatencyMs,
		FrameDrops:           c.latest.FrameDrops,
		ClientMemoryMB:       c.latest.MemoryUsageMB,
		Bundle:               c.bundle,
		BundleTotal:          humanize.Bytes(uint64(c.bundle.Total())),
		BundleJS:             humanize.Bytes(uint64(c.bundle.JSBytes)),
		BundleCSS:            humanize.Bytes(uint64(c.bundle.CSSBytes)),
		BundleImages:         humanize.Bytes(uint64(c.bundle.ImageBytes)),
		ServerMemory:         c.mem.Read(),
	}
	snap.Grade = grade(c.latest)
	snap.Recommendations = recommendations(c.latest, c.bundle)
	return snap
}

// grade scores the latest sample A through F.
func grade(s Sample) string {
	score := 100

	switch {
	case s.LoadTimeMs > 3000:
		score -= 30
	case s.LoadTimeMs > 1500:
		score -= 15
	case s.LoadTimeMs > 1000:
		score -= 5
	}

	switch {
	case s.MemoryUsageMB > 100:
		score -= 20
	case s.MemoryUsageMB > 50:
		score -= 10
	}

	switch {
	case s.FrameDrops > 10:
		score -= 20
	case s.FrameDrops > 5:
		score -= 10
	}

	switch {
	case s.InteractionLatencyMs > 100:
		score -= 15
	case s.InteractionLatencyMs > 50:
		score -= 5
	}

	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	}
	return "F"
}

func recommendations(s Sample, b BundleBreakdown) []string {
	var out []string
	if s.LoadTimeMs > 2000 {
		out = append(out, "Consider lazy loading more components")
	}
	if s.MemoryUsageMB > 80 {
		out = append(out, "Memory usage is high - check for memory leaks")
	}
	if s.FrameDrops > 5 {
		out = append(out, "Frame drops detected - optimize animations")
	}
	if s.InteractionLatencyMs > 50 {
		out = append(out, "Interaction latency is high - optimize event handlers")
	}
	if b.JSBytes > 500_000 {
		out = append(out, "JavaScript bundle is large - consider code splitting")
	}
	if b.ImageBytes > 2_000_000 {
		out = append(out, "Images are large - optimize compression and use WebP format")
	}
	if b.CSSBytes > 100_000 {
		out = append(out, "CSS bundle is large - remove unused styles")
	}
	return out
}
