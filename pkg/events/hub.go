package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps the events returned in one catchup pass. Beyond it, a
// catchup.overflow message tells the client to do a full REST reload.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when a new
// channel gains its first subscriber.
const listenTimeout = 10 * time.Second

// subscriberBuffer is the per-subscriber send buffer. A subscriber that
// cannot keep up has events dropped (live events only — catchup recovers).
const subscriberBuffer = 64

// CatchupEvent holds one row returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries persisted events for catchup. Implemented by
// services.EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, workflowID string, sinceID, limit int) ([]CatchupEvent, error)
}

// Subscription is an in-process consumer of a channel, used by the SSE
// handlers. Events arrive as raw JSON payloads; Done closes when the
// subscription is removed from the hub.
type Subscription struct {
	Events <-chan []byte
	Done   <-chan struct{}

	hub     *Hub
	channel string
	id      string
	once    sync.Once
}

// Close removes the subscription from the hub.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.channel, s.id)
	})
}

// subscriber is one consumer endpoint on a channel.
type subscriber struct {
	id   string
	ch   chan []byte
	done chan struct{}
}

// Hub fans NOTIFY payloads out to WebSocket connections and SSE
// subscriptions. Each process has one Hub; the NotifyListener feeds it.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[string]*subscriber

	catchup CatchupQuerier

	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// NewHub creates a Hub. catchup may be nil (no catchup support, tests only).
func NewHub(catchup CatchupQuerier, writeTimeout time.Duration) *Hub {
	return &Hub{
		channels:     make(map[string]map[string]*subscriber),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both sides exist.
func (h *Hub) SetListener(l *NotifyListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Broadcast delivers an event payload to every subscriber of the channel.
// Slow subscribers have the event dropped rather than stalling the hub.
func (h *Hub) Broadcast(channel string, payload []byte) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.channels[channel]))
	for _, s := range h.channels[channel] {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		select {
		case <-s.done:
		case s.ch <- payload:
		default:
			slog.Warn("Dropping event for slow subscriber", "channel", channel, "subscriber", s.id)
		}
	}
}

// Subscribe registers an in-process subscriber on a channel, establishes
// LISTEN if it is the channel's first subscriber, and replays persisted
// events with id > sinceID into the subscription before live delivery.
func (h *Hub) Subscribe(ctx context.Context, channel string, sinceID int) (*Subscription, error) {
	sub := &subscriber{
		id:   uuid.New().String(),
		ch:   make(chan []byte, subscriberBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	first := len(h.channels[channel]) == 0
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[string]*subscriber)
	}
	h.channels[channel][sub.id] = sub
	h.mu.Unlock()

	// LISTEN before catchup, closing the gap where an event published
	// between the two would be lost.
	if first {
		if err := h.ensureListen(channel); err != nil {
			h.unsubscribe(channel, sub.id)
			return nil, err
		}
	}

	s := &Subscription{Events: sub.ch, Done: sub.done, hub: h, channel: channel, id: sub.id}
	if err := h.replayCatchup(ctx, channel, sinceID, sub); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// SubscriberCount returns the number of subscribers on a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

// ensureListen starts LISTEN on a channel.
func (h *Hub) ensureListen(channel string) error {
	h.listenerMu.RLock()
	l := h.listener
	h.listenerMu.RUnlock()
	if l == nil {
		return nil
	}
	listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.Subscribe(listenCtx, channel); err != nil {
		return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
	}
	return nil
}

// unsubscribe removes a subscriber, issuing UNLISTEN when the last one leaves.
func (h *Hub) unsubscribe(channel, id string) {
	h.mu.Lock()
	if subs, ok := h.channels[channel]; ok {
		if sub, present := subs[id]; present {
			close(sub.done)
			delete(subs, id)
		}
		if len(subs) == 0 {
			delete(h.channels, channel)
			h.stopListenAsync(channel)
		}
	}
	h.mu.Unlock()
}

// stopListenAsync issues UNLISTEN in the background, re-checking for a rapid
// resubscribe first so an unsubscribe/resubscribe cycle keeps the LISTEN.
func (h *Hub) stopListenAsync(channel string) {
	h.listenerMu.RLock()
	l := h.listener
	h.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		h.mu.RLock()
		_, resubscribed := h.channels[channel]
		h.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// replayCatchup pushes persisted events since sinceID into a subscriber.
func (h *Hub) replayCatchup(ctx context.Context, channel string, sinceID int, sub *subscriber) error {
	if h.catchup == nil {
		return nil
	}

	workflowID, ok := workflowIDFromChannel(channel)
	if !ok {
		return nil // Global channel — transient events only, nothing to replay.
	}

	rows, err := h.catchup.GetCatchupEvents(ctx, workflowID, sinceID, catchupLimit+1)
	if err != nil {
		return fmt.Errorf("catchup query for %s: %w", channel, err)
	}

	hasMore := len(rows) > catchupLimit
	if hasMore {
		rows = rows[:catchupLimit]
	}

	for _, row := range rows {
		// The stored payload lacks db_event_id (only the NOTIFY copy has it);
		// inject from the row id so clients can keep their cursor.
		row.Payload["db_event_id"] = row.ID
		data, err := json.Marshal(row.Payload)
		if err != nil {
			continue
		}
		select {
		case sub.ch <- data:
		default:
			slog.Warn("Catchup overflowed subscriber buffer", "channel", channel)
			hasMore = true
		}
	}

	if hasMore {
		overflow, _ := json.Marshal(map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
		select {
		case sub.ch <- overflow:
		default:
		}
	}
	return nil
}

// workflowIDFromChannel extracts the run id from a "workflow:<id>" channel.
func workflowIDFromChannel(channel string) (string, bool) {
	const prefix = "workflow:"
	if len(channel) > len(prefix) && channel[:len(prefix)] == prefix {
		return channel[len(prefix):], true
	}
	return "", false
}

// HandleConnection serves the subscribe/unsubscribe/catchup/ping protocol on
// a WebSocket connection. Blocks until the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	connID := uuid.New().String()
	subs := make(map[string]*Subscription)
	var sendMu sync.Mutex

	defer func() {
		for _, s := range subs {
			s.Close()
		}
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	send := func(v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		sendMu.Lock()
		defer sendMu.Unlock()
		writeCtx, cancelWrite := context.WithTimeout(ctx, h.writeTimeout)
		defer cancelWrite()
		return conn.Write(writeCtx, websocket.MessageText, data)
	}
	sendRaw := func(data []byte) error {
		sendMu.Lock()
		defer sendMu.Unlock()
		writeCtx, cancelWrite := context.WithTimeout(ctx, h.writeTimeout)
		defer cancelWrite()
		return conn.Write(writeCtx, websocket.MessageText, data)
	}

	_ = send(map[string]string{"type": "connection.established", "connection_id": connID})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}

		switch msg.Action {
		case "subscribe":
			if msg.Channel == "" {
				_ = send(map[string]string{"type": "error", "message": "channel is required for subscribe"})
				continue
			}
			if _, dup := subs[msg.Channel]; dup {
				_ = send(map[string]string{"type": "subscription.confirmed", "channel": msg.Channel})
				continue
			}
			sub, err := h.Subscribe(ctx, msg.Channel, 0)
			if err != nil {
				_ = send(map[string]string{
					"type":    "subscription.error",
					"channel": msg.Channel,
					"message": "failed to subscribe to channel",
				})
				continue
			}
			subs[msg.Channel] = sub
			_ = send(map[string]string{"type": "subscription.confirmed", "channel": msg.Channel})
			go func() {
				for {
					select {
					case <-sub.Done:
						return
					case <-ctx.Done():
						return
					case payload := <-sub.Events:
						if err := sendRaw(payload); err != nil {
							return
						}
					}
				}
			}()

		case "unsubscribe":
			if sub, ok := subs[msg.Channel]; ok {
				sub.Close()
				delete(subs, msg.Channel)
			}

		case "catchup":
			if msg.Channel == "" || msg.LastEventID == nil {
				continue
			}
			workflowID, ok := workflowIDFromChannel(msg.Channel)
			if !ok || h.catchup == nil {
				continue
			}
			rows, err := h.catchup.GetCatchupEvents(ctx, workflowID, *msg.LastEventID, catchupLimit)
			if err != nil {
				slog.Error("Catchup query failed", "channel", msg.Channel, "error", err)
				continue
			}
			for _, row := range rows {
				row.Payload["db_event_id"] = row.ID
				data, err := json.Marshal(row.Payload)
				if err != nil {
					continue
				}
				if err := sendRaw(data); err != nil {
					return
				}
			}

		case "ping":
			_ = send(map[string]string{"type": "pong"})
		}
	}
}
