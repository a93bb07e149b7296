package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ptxer/Ticket/internal/domain"
	"github.com/Ptxer/Ticket/internal/events"
	"github.com/Ptxer/Ticket/internal/notifier"
	"github.com/Ptxer/Ticket/internal/poller"
	"github.com/Ptxer/Ticket/internal/remote"
	"github.com/Ptxer/Ticket/internal/service"
	"github.com/Ptxer/Ticket/internal/snapshot"
	thttp "github.com/Ptxer/Ticket/internal/transport/http"
	"github.com/Ptxer/Ticket/pkg/config"
	"github.com/Ptxer/Ticket/pkg/mq"
	"github.com/Ptxer/Ticket/pkg/obs"
	"github.com/Ptxer/Ticket/pkg/session"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdown := obs.InitTracer("ticket-dashboard")
	defer shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session: polling stays disarmed until the token resolves.
	sess := session.New(cfg.JWTSecret)
	sess.Resolve(cfg.APIToken)
	log.Println("[dashboard] session:", sess.State())

	store := snapshot.NewStore()
	api := remote.NewClient(cfg.APIBaseURL, cfg.APIToken, &http.Client{Timeout: 10 * time.Second})
	p := poller.New(api, store, cfg.PollInterval)

	// Arrival observers: console toast plus the ticket exchange when a
	// broker is configured.
	console := notifier.NewConsole()
	p.OnArrival(func(t domain.Ticket) {
		_ = console.Notify("🎫 New Patient", t.DisplayName())
	})

	dash := service.New(store, api, p, cfg.PageSize)

	if cfg.RabbitURL != "" {
		pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.TicketExchange))
		defer pub.Close()
		p.OnArrival(func(t domain.Ticket) {
			ev := events.TicketArrived{
				EventID:     uuid.NewString(),
				TicketID:    t.ID,
				PatientName: t.DisplayName(),
				At:          t.Datetime,
			}
			if err := pub.PublishJSON(ctx, events.RKTicketArrived, ev); err != nil {
				log.Printf("[dashboard] publish arrival failed: %v", err)
			}
		})
		dash.OnDelete(func(id string) {
			ev := events.TicketDeleted{EventID: uuid.NewString(), TicketID: id}
			if err := pub.PublishJSON(ctx, events.RKTicketDeleted, ev); err != nil {
				log.Printf("[dashboard] publish delete failed: %v", err)
			}
		})
	}

	go func() {
		if err := p.Run(ctx, sess); err != nil && ctx.Err() == nil {
			log.Printf("[dashboard] poller stopped: %v", err)
		}
	}()

	h := thttp.NewHandler(dash)
	var mws []gin.HandlerFunc
	if cfg.JWTSecret != "" {
		mws = append(mws, thttp.SessionAuth(sess))
	}
	r := thttp.NewRouter(h, mws...)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[dashboard] http on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	shutCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = srv.Shutdown(shutCtx)
	log.Println("[dashboard] stopped")
}
