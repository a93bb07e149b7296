package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Upstream ticket API
	APIBaseURL string `envconfig:"API_BASE_URL" required:"true"`
	APIToken   string `envconfig:"API_TOKEN"`
	// Session
	JWTSecret string `envconfig:"JWT_SECRET"`
	// Polling
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`
	PageSize     int           `envconfig:"PAGE_SIZE" default:"10"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// RabbitMQ for ticket events
	RabbitURL      string `envconfig:"RABBIT_URL"`
	TicketExchange string `envconfig:"TICKET_EXCHANGE" default:"ticket.exchange"`
	NotifyQueue    string `envconfig:"NOTIFY_QUEUE" default:"ticket.notify.q"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
