package redisx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventsPubSub broadcasts schedule mutations so other admin sessions can
// refresh their month snapshot instead of serving stale cells.
type EventsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewEventsPubSub(rdb *redis.Client) *EventsPubSub {
	return &EventsPubSub{
		rdb:     rdb,
		channel: ChannelEventsChanged(),
	}
}

type eventChangedMsg struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`
	Date    string `json:"date"`
	TsUnix  int64  `json:"ts_unix"`
}

func (p *EventsPubSub) PublishEventChanged(ctx context.Context, eventID uuid.UUID, date string) error {
	msg := eventChangedMsg{
		Type:    "event_changed",
		EventID: eventID.String(),
		Date:    date,
		TsUnix:  time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *EventsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, eventID uuid.UUID, date string)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev eventChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
				continue
			}
			id, err := uuid.Parse(ev.EventID)
			if err != nil {
				continue
			}
			handler(ctx, id, ev.Date)
		}
	}
}
