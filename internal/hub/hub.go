package hub

import (
	"context"
	"log"
	"sync"
	"time"

	"educonnect/backend/internal/models"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AllTopic subscribes a client to every notification.
const AllTopic = ""

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single subscriber connection.
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Sink receives every encoded event, e.g. to forward it to another system.
type Sink interface {
	Publish(ctx context.Context, message []byte) error
}

const (
	sinkQueueSize  = 256
	publishTimeout = 2 * time.Second
)

// sinkWorker publishes queued messages to one sink in order.
type sinkWorker struct {
	sink  Sink
	queue chan []byte
}

func (w *sinkWorker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for message := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := w.sink.Publish(ctx, message); err != nil {
			log.Printf("[HUB] Failed to publish event: %v", err)
		}
		cancel()
	}
}

// Hub fans committed notifications out to subscribers. Clients subscribe to
// an identity's topic, or to AllTopic. Sinks are fed from their own
// goroutines, so Broadcast never waits on them.
type Hub struct {
	topics  map[string]map[Client]bool
	workers []*sinkWorker
	mu      sync.RWMutex

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewHub creates a new Hub and starts one publishing goroutine per sink.
func NewHub(sinks ...Sink) *Hub {
	h := &Hub{
		topics: make(map[string]map[Client]bool),
	}
	for _, sink := range sinks {
		w := &sinkWorker{sink: sink, queue: make(chan []byte, sinkQueueSize)}
		h.workers = append(h.workers, w)
		h.wg.Add(1)
		go w.run(&h.wg)
	}
	return h
}

// Close stops the sink goroutines after they have published everything
// already queued. Broadcast must not be called after Close.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		for _, w := range h.workers {
			close(w.queue)
		}
	})
	h.wg.Wait()
}

// Subscribe adds a new client to a topic.
func (h *Hub) Subscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic.
func (h *Hub) Unsubscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.topics[topic]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.topics, topic)
			}
		}
	}
}

// Subscribers returns the number of clients subscribed to topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Notify implements registry.Notifier.
func (h *Hub) Notify(n models.Notification) {
	h.Broadcast(n.Identities(), Event{Type: string(n.Type), Payload: n})
}

// Broadcast sends an event to the clients of every given topic and of AllTopic.
// A client subscribed to several of those topics receives the event once.
func (h *Hub) Broadcast(topics []string, event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("[HUB] Failed to encode %s event: %v", event.Type, err)
		return
	}

	h.mu.RLock()
	sent := make(map[Client]bool)
	for _, topic := range append([]string{AllTopic}, topics...) {
		for client := range h.topics[topic] {
			if sent[client] {
				continue
			}
			sent[client] = true
			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client <- messageBytes:
			default:
			}
		}
	}
	h.mu.RUnlock()

	for _, w := range h.workers {
		select {
		case w.queue <- messageBytes:
		default:
			log.Printf("[HUB] Sink queue full, dropping %s event", event.Type)
		}
	}
}
