package serverfx

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-activities/pkg/activity"
	"github.com/joeydtaylor/steeze-activities/pkg/api"
	"github.com/joeydtaylor/steeze-activities/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-activities/pkg/core"
	"github.com/joeydtaylor/steeze-activities/pkg/events"
	"github.com/joeydtaylor/steeze-activities/pkg/manifest"
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-activities/pkg/transport/httpx"
	"github.com/joeydtaylor/steeze-activities/pkg/web"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Options allow per-deployment env keys/defaults.
type Options struct {
	Service       string // for logs only
	ManifestEnv   string // e.g. "ACTIVITIES_MANIFEST"; unset env means the built-in manifest
	ListenAddrEnv string // e.g. "SERVER_LISTEN_ADDRESS"
	DefaultListen string // e.g. ":8000"
	TLSCertEnv    string // e.g. "SSL_SERVER_CERTIFICATE"
	TLSKeyEnv     string // e.g. "SSL_SERVER_KEY"
}

// DefaultOptions returns the env keys used by cmd/activities.
func DefaultOptions() Options {
	return Options{
		Service:       "activities",
		ManifestEnv:   "ACTIVITIES_MANIFEST",
		ListenAddrEnv: "SERVER_LISTEN_ADDRESS",
		DefaultListen: ":8000",
		TLSCertEnv:    "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:     "SSL_SERVER_KEY",
	}
}

// ---- Manifest / registry ----

func provideManifest(opts Options, log *zap.Logger) (manifest.Config, error) {
	path := os.Getenv(opts.ManifestEnv)
	cfg, err := core.LoadConfig(path)
	if err != nil {
		return manifest.Config{}, fmt.Errorf("manifest load %q: %w", path, err)
	}
	if path == "" {
		path = "(built-in)"
	}
	log.Info("manifest loaded",
		zap.String("path", path),
		zap.Int("routes", len(cfg.Routes)),
		zap.Int("activities", len(cfg.Activities)),
	)
	return cfg, nil
}

func provideRegistry(cfg manifest.Config) (*activity.Registry, error) {
	reg, err := activity.NewRegistry(cfg.Seed())
	if err != nil {
		return nil, fmt.Errorf("seed registry: %w", err)
	}
	return reg, nil
}

func providePublisher(lc fx.Lifecycle, cfg manifest.Config, log *zap.Logger) events.Publisher {
	pub := events.New(events.ConfigFromManifest(cfg.Events), log)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return pub.Close() },
	})
	return pub
}

// ---- Router ----

type routerDeps struct {
	fx.In

	Cfg     manifest.Config
	API     *api.Handler
	LogMW   *logger.Middleware
	Metrics http.Handler `name:"metrics"`
	R       httpx.Router
	Log     *zap.Logger
}

func provideRouter(d routerDeps) (http.Handler, error) {
	hs := core.Handlers{}
	d.API.Register(hs)

	return core.BuildRouter(d.Cfg, core.BuildDeps{
		LogMW:    d.LogMW,
		Metrics:  d.Metrics,
		Router:   d.R,
		Handlers: hs,
		Static:   web.Handler(),
		Log:      d.Log,
	})
}

// ---- Server lifecycle ----

type serverDeps struct {
	fx.In
	Opts   Options
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	addr := envOr(d.Opts.ListenAddrEnv, d.Opts.DefaultListen)
	cert := os.Getenv(d.Opts.TLSCertEnv)
	key := os.Getenv(d.Opts.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// Bind before returning so address errors fail startup.
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}

			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", d.Opts.Service),
					zap.String("addr", ln.Addr().String()),
					zap.String("cert", cert),
				)
				go func() {
					if err := srv.ServeTLS(ln, cert, key); err != nil && err != http.ErrServerClosed {
						d.Logger.Error("server failed", zap.Error(err))
					}
				}()
			} else {
				d.Logger.Info("server starting (PLAINTEXT)",
					zap.String("service", d.Opts.Service),
					zap.String("addr", ln.Addr().String()),
				)
				srv.TLSConfig = nil
				go func() {
					if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
						d.Logger.Error("server failed", zap.Error(err))
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Opts.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---- Public Fx module ----

func Module(opts Options) fx.Option {
	return fx.Options(
		// Supply options to DI.
		fx.Supply(opts),

		// Loggers, access log, /metrics
		bundlefx.Module,

		// Router implementation
		fx.Provide(httpx.NewChi),

		// Domain
		fx.Provide(provideManifest),
		fx.Provide(provideRegistry),
		fx.Provide(providePublisher),
		fx.Provide(api.NewHandler),

		// Router (named "app")
		fx.Provide(
			fx.Annotate(
				provideRouter,
				fx.ResultTags(`name:"app"`),
			),
		),

		// HTTP server lifecycle
		fx.Invoke(registerHooks),
	)
}

// ---- helpers ----

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
