package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"

	"github.com/Ptxer/Ticket/internal/events"
	"github.com/Ptxer/Ticket/internal/notifier"
	"github.com/Ptxer/Ticket/internal/worker"
)

type Cfg struct {
	RabbitURL      string `envconfig:"RABBIT_URL" required:"true"`
	TicketExchange string `envconfig:"TICKET_EXCHANGE" default:"ticket.exchange"`
	NotifyQueue    string `envconfig:"NOTIFY_QUEUE" default:"ticket.notify.q"`
	Prefetch       int    `envconfig:"NOTIFY_PREFETCH" default:"8"`
}

func main() {
	var cfg Cfg
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	cons := worker.NewConsumer(worker.Config{
		RabbitURL:   cfg.RabbitURL,
		Exchange:    cfg.TicketExchange,
		Queue:       cfg.NotifyQueue,
		Bindings:    []string{events.RKTicketArrived, events.RKTicketDeleted},
		Prefetch:    cfg.Prefetch,
		UseDLX:      true,
		DLXName:     cfg.TicketExchange + ".dlx",
		DLXQueue:    cfg.NotifyQueue + ".dlq",
		ServiceName: "ticket-notify",
	}, notifier.NewConsole())

	if err := cons.Connect(); err != nil {
		log.Fatal(err)
	}
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	log.Println("[notify] consuming", cfg.NotifyQueue)
	if err := cons.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("[notify] stopped")
}
