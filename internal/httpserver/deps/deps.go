package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/catalog/internal/catalog"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/mw"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/version"
	"github.com/MrSnakeDoc/catalog/internal/view"
)

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Build        version.Info
	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access healthz/readyz/metrics
	TrustProxy   bool     // true if running behind a trusted reverse proxy
	RateLimit    mw.RateLimitConfig
	StoreName    string
	PingStore    Pinger // nil means always ready
	Views        view.Renderer
	Genres       *catalog.GenreWorkflow
	Instances    *catalog.BookInstanceWorkflow
}
