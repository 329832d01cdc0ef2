package service

import (
	redisx "github.com/ayase-lab/mmadmin/internal/redis"
	postgres "github.com/ayase-lab/mmadmin/internal/repository/postgres"
	redis "github.com/ayase-lab/mmadmin/internal/repository/redis"
	"github.com/ayase-lab/mmadmin/internal/service/booking"
	"github.com/ayase-lab/mmadmin/internal/service/calendar"
	"github.com/ayase-lab/mmadmin/internal/service/directory"
	"github.com/ayase-lab/mmadmin/internal/service/events"
	"github.com/ayase-lab/mmadmin/internal/service/roster"
)

type Services struct {
	Calendar  *calendar.Service
	Events    *events.Service
	Roster    *roster.Service
	Booking   *booking.Service
	Directory *directory.Service
}

type Config struct {
	Calendar calendar.Config
	Events   events.Config
	Roster   roster.Config
	Booking  booking.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redisx.EventsPubSub,
	cfg Config,
) *Services {
	return &Services{
		Calendar:  calendar.New(store, cache, cfg.Calendar),
		Events:    events.New(store, cache, pubsub, cfg.Events),
		Roster:    roster.New(store, cache, cfg.Roster),
		Booking:   booking.New(store, cfg.Booking),
		Directory: directory.New(store),
	}
}
