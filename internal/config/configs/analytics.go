package configs

import "time"

type Analytics struct {
	// Timeout bounds one report computation including its store reads.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// EventsPageSize caps GET /events responses.
	EventsPageSize int `env:"EVENTS_PAGE_SIZE" envDefault:"500"`
}
