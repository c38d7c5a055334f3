package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/KMTonmoy/allmartavenue-api/configs"
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/cache"
	ahttp "github.com/KMTonmoy/allmartavenue-api/internal/adapter/http"
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/http/middleware"
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/kafka"
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/mail"
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/queue"
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/repo"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/KMTonmoy/allmartavenue-api/internal/security"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Router *gin.Engine
}

// InitWithConfig wires the whole service and returns the router plus a
// cleanup func for the owned connections.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile)
	l := logging.New("bootstrap")

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		return nil, nil, err
	}

	// repos + caches
	productRepo := repo.NewMySQLProductRepo(db)
	orderRepo := repo.NewMySQLOrderRepo(db)
	bannerRepo := repo.NewMySQLBannerRepo(db)
	cartStore := cache.NewRedisCartStore(rdb, cfg.Cart.TTL)
	guard := cache.NewRedisCheckoutGuard(rdb, cfg.Checkout.GuardTTL)
	statusCache := cache.NewRedisStatusCache(rdb, cfg.StatusCache.TTL)

	// use cases
	cartSvc := usecase.NewCartService(cartStore, productRepo)
	checkout := usecase.NewCheckout(cartStore, orderRepo, guard, producer)

	// order.created consumer: ops mail
	if cfg.Mail.Enabled {
		mailer := mail.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.OpsInbox)
		setupQueue(ch, mailer)
	} else {
		l.Info("mail disabled, order.created events stay queued")
	}

	// fulfillment status listener
	if len(cfg.Kafka.Brokers) > 0 {
		if err := setupKafkaListener(cfg, orderRepo, statusCache); err != nil {
			return nil, nil, err
		}
	}

	// handlers + router + middleware
	verifier := security.NewStaticVerifier(adminCredentials(cfg))
	handlers := ahttp.Handlers{
		Cart:     ahttp.NewCartHandler(cartSvc),
		Checkout: ahttp.NewCheckoutHandler(checkout),
		Catalog:  ahttp.NewCatalogHandler(productRepo),
		Banner:   ahttp.NewBannerHandler(bannerRepo),
		Order:    ahttp.NewOrderHandler(orderRepo, statusCache),
		Token:    ahttp.NewTokenHandler(cfg, verifier),
	}
	router := ahttp.NewRouter(handlers, middleware.NewAuthz(cfg))

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
		_ = ch.Close()
		_ = conn.Close()
	}

	return &App{Router: router}, cleanup, nil
}

// Run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests.
func Run(cfg configs.Config) error {
	app, cleanup, err := InitWithConfig(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      app.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func setupQueue(ch *amqp091.Channel, mailer queue.Mailer) {
	h := queue.NewOrderMailHandler(mailer)

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register("order.created.q", queue.JSONHandler[usecase.OrderCreatedMsg]{HandleFunc: h.HandleCreated})

	if err := router.Start(); err != nil {
		panic(err)
	}
}

func setupKafkaListener(cfg configs.Config, orders usecase.OrderRepo, statusCache usecase.StatusCache) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	h := kafka.NewOrderStatusChangedHandler(orders, statusCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.Topic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
			logging.New("kafka").Error("consumer stopped", "err", err)
		}
	}()
	return nil
}

func adminCredentials(cfg configs.Config) []security.StaticCredential {
	creds := make([]security.StaticCredential, 0, len(cfg.Security.Admins))
	for _, a := range cfg.Security.Admins {
		creds = append(creds, security.StaticCredential{
			Username: a.Username,
			Password: a.Password,
			Perms:    a.Perms,
			Disabled: a.Disabled,
		})
	}
	return creds
}
