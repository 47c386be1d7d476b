package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/cache"
	actionrepo "github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/action"
	cardrepo "github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/card"
	commentrepo "github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/comment"
	grouprepo "github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/group"
	retrorepo "github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/retro"
	voterepo "github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/retroboard-backend/internal/auth"
	"github.com/heartmarshall/retroboard-backend/internal/config"
	"github.com/heartmarshall/retroboard-backend/internal/metrics"
	"github.com/heartmarshall/retroboard-backend/internal/realtime"
	"github.com/heartmarshall/retroboard-backend/internal/service/action"
	"github.com/heartmarshall/retroboard-backend/internal/service/card"
	"github.com/heartmarshall/retroboard-backend/internal/service/group"
	"github.com/heartmarshall/retroboard-backend/internal/service/retro"
	"github.com/heartmarshall/retroboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/retroboard-backend/internal/transport/rest"
)

// Server is the fully wired application minus the listener. Handler
// serves every route; Background runs the realtime loops.
type Server struct {
	Handler  http.Handler
	Hub      *realtime.Hub
	Sessions *auth.SessionManager

	notifier *realtime.Notifier
	broker   realtime.Broker
	retros   *cache.RetroCache
	closers  []func()
	cfg      *config.Config
	log      *slog.Logger
}

// NewServer builds repositories, services, the realtime channel and the
// HTTP handler over pool.
func NewServer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Server, error) {
	registry := metrics.NewRegistry()
	httpMetrics, err := metrics.NewHTTPMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("http metrics: %w", err)
	}
	rtMetrics, err := metrics.NewRealtimeMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("realtime metrics: %w", err)
	}

	s := &Server{cfg: cfg, log: logger}

	// 1. Realtime channel.
	s.Hub = realtime.NewHub(logger, cfg.Realtime.ClientBuffer, rtMetrics)
	if err := s.openBroker(ctx, pool); err != nil {
		return nil, err
	}
	s.notifier = realtime.NewNotifier(logger, s.broker, cfg.Realtime.BrokerBuffer, cfg.Realtime.WriteTimeout, rtMetrics)

	// 2. Repositories.
	retros := cache.NewRetroCache(retrorepo.New(pool), cfg.Cache.RetroTTL, cfg.Cache.CleanupInterval)
	s.retros = retros
	cards := cardrepo.New(pool)
	votes := voterepo.New(pool)
	comments := commentrepo.New(pool)
	actions := actionrepo.New(pool)
	groups := grouprepo.New(pool)

	// 3. Services.
	retroService := retro.NewService(logger, retros, s.notifier)
	cardService := card.NewService(logger, cards, votes, comments, retros, s.notifier)
	groupService := group.NewService(logger, groups, cards, retros, s.notifier)
	actionService := action.NewService(logger, actions, cards, retros, s.notifier)

	s.Sessions = auth.NewSessionManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TokenTTL)

	// 4. Router.
	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, s.Hub, cfg.Realtime.Broker, BuildVersion()),
		Session: rest.NewSessionHandler(s.Sessions, logger),
		Retro:   rest.NewRetroHandler(retroService, logger),
		Card:    rest.NewCardHandler(cardService, logger),
		Action:  rest.NewActionHandler(actionService, logger),
		Group:   rest.NewGroupHandler(groupService, logger),
		Events: rest.NewEventsHandler(retroService,
			realtime.NewSSEHandler(logger, s.Hub, cfg.Realtime.PingInterval), logger),
		WS: realtime.NewWSHandler(logger, s.Hub, realtime.WSConfig{
			PingInterval:   cfg.Realtime.PingInterval,
			WriteTimeout:   cfg.Realtime.WriteTimeout,
			AllowedOrigins: middleware.SplitOrigins(cfg.CORS.AllowedOrigins),
		}),
		Metrics: metrics.Handler(registry),
	})

	// 5. Middleware, outermost first. Nothing between Metrics and the mux
	// may replace the request.
	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Session(s.Sessions),
		middleware.Logger(logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		chain = append(chain, limiter.Limit())
	}
	s.Handler = middleware.Chain(chain...)(mux)

	return s, nil
}

func (s *Server) openBroker(ctx context.Context, pool *pgxpool.Pool) error {
	rc := s.cfg.Realtime
	switch rc.Broker {
	case config.BrokerRedis:
		client, err := realtime.NewRedisClient(ctx, rc.RedisURL)
		if err != nil {
			return err
		}
		s.broker = realtime.NewRedisBroker(client, rc.RedisPrefix)
		s.closers = append(s.closers, func() { _ = client.Close() })
	case config.BrokerPostgres:
		s.broker = realtime.NewPostgresBroker(pool, rc.PostgresChannel)
	default:
		s.broker = realtime.NewLocalBroker(s.Hub)
	}
	s.log.InfoContext(ctx, "realtime broker ready", slog.String("broker", rc.Broker))
	return nil
}

// Background drains the notifier into the broker and feeds broker
// deliveries into the hub until ctx is done.
func (s *Server) Background(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.notifier.Run(gctx) })
	g.Go(func() error {
		return realtime.RunBroker(gctx, s.broker, s.Hub, s.retros, s.cfg.Realtime.RestartDelay, s.log)
	})
	return g.Wait()
}

// Close ends every realtime subscriber and releases broker clients.
func (s *Server) Close() {
	s.Hub.CloseAll()
	for _, c := range s.closers {
		c()
	}
}
