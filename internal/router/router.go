// Package router composes every content module behind one gin engine.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/elmufurqaan/site/backend/go-services/handlers"
	"github.com/elmufurqaan/site/backend/go-services/internal/about"
	"github.com/elmufurqaan/site/backend/go-services/internal/banner"
	"github.com/elmufurqaan/site/backend/go-services/internal/blog"
	"github.com/elmufurqaan/site/backend/go-services/internal/config"
	"github.com/elmufurqaan/site/backend/go-services/internal/contact"
	"github.com/elmufurqaan/site/backend/go-services/internal/database"
	"github.com/elmufurqaan/site/backend/go-services/internal/logo"
	"github.com/elmufurqaan/site/backend/go-services/internal/media"
	"github.com/elmufurqaan/site/backend/go-services/internal/qna"
	"github.com/elmufurqaan/site/backend/go-services/internal/search"
	"github.com/elmufurqaan/site/backend/go-services/internal/video"
	"github.com/elmufurqaan/site/backend/go-services/pkg/logger"
	"github.com/elmufurqaan/site/backend/go-services/pkg/middleware"
)

const rootBanner = "Site API server is running"

// Deps are the process-wide collaborators built by main.
type Deps struct {
	Store   database.Store
	Lexicon *search.Lexicon
	// Redis is optional; it backs the shared rate limiter and shows up in /ready.
	Redis *redis.Client
	// Media is optional; /api/media is mounted only when set.
	Media          media.ObjectStore
	MediaPublicURL string
	// Gatherer defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// New builds the engine with middleware, infrastructure routes and every module.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && deps.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			logger.Infof("router: using Redis rate limiter (rps=%v burst=%d window=%s)", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
			r.Use(middleware.RedisRateLimitMiddleware(deps.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			logger.Infof("router: using in-memory rate limiter (rps=%v burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	registerInfra(r, deps)
	handlers.RegisterSwagger(r)

	s := deps.Store
	lex := deps.Lexicon
	if lex == nil {
		lex = search.DefaultLexicon()
	}
	logo.RegisterLogoRoutes(r, logo.NewService(s.Collection(database.LogoCollection)))
	banner.RegisterBannerRoutes(r, banner.NewService(s.Collection(database.BannerCollection)))
	blog.RegisterBlogRoutes(r, blog.NewService(s.Collection(database.BlogCollection)))
	video.RegisterVideoRoutes(r, video.NewService(s.Collection(database.VideoCollection)))
	about.RegisterAboutRoutes(r, about.NewService(s.Collection(database.AboutCollection)))
	qna.RegisterQnARoutes(r, qna.NewService(s.Collection(database.QnACollection)))
	contact.RegisterContactRoutes(r, contact.NewService(s.Collection(database.ContactCollection)))
	search.RegisterSearchRoutes(r, search.NewService(
		s.Collection(database.BlogCollection),
		s.Collection(database.VideoCollection),
		s.Collection(database.QnACollection),
		lex,
	))
	if deps.Media != nil {
		media.RegisterMediaRoutes(r, media.NewService(deps.Media, deps.MediaPublicURL))
	} else {
		logger.Infof("router: media storage not configured; /api/media disabled")
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

type pinger interface {
	Ping(ctx context.Context) error
}

func registerInfra(r *gin.Engine, deps Deps) {
	started := time.Now()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, rootBanner)
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]bool{"store": true}
		ready := true
		if err := deps.Store.Ping(ctx); err != nil {
			logger.Warnf("ready: store ping failed: %v", err)
			checks["store"] = false
			ready = false
		}
		if deps.Redis != nil {
			checks["redis"] = deps.Redis.Ping(ctx).Err() == nil
		}
		if deps.Media != nil {
			checks["media"] = true
			if p, ok := deps.Media.(pinger); ok {
				checks["media"] = p.Ping(ctx) == nil
			}
		}

		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "deps": checks, "uptime": time.Since(started).Round(time.Second).String()})
	})

	g := deps.Gatherer
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
