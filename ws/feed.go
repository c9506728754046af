package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Akhilus26/firebased-quickbite/services"
	"github.com/Akhilus26/firebased-quickbite/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FeedHub is the change-feed fan-out: staff dashboards subscribe to the
// order channel, the scratch-card screen subscribes to one order's channel.
// The hub only pushes; clients never send business messages.
type FeedHub struct {
	clients    map[string]map[*websocket.Conn]bool // channel -> set of clients
	broadcast  chan broadcastEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type subscription struct {
	Conn    *websocket.Conn
	Channel string
}

type broadcastEvent struct {
	Channel string
	Event   any
}

func NewFeedHub(orders *services.OrderService) *FeedHub {
	return &FeedHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

// Broadcast satisfies services.Feed.
func (h *FeedHub) Broadcast(channel string, event any) {
	h.broadcast <- broadcastEvent{Channel: channel, Event: event}
}

// Run owns the subscription maps. Start it once as a goroutine.
func (h *FeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Channel] == nil {
				h.clients[sub.Channel] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Channel][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Channel][sub.Conn]; ok {
				delete(h.clients[sub.Channel], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.Channel] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.Channel], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders. Staff dashboard live order feed.
func (h *FeedHub) HandleOrderFeed(c *gin.Context) {
	role := utils.CurrentRole(c)
	if role != "staff" && role != "owner" {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		return
	}
	h.serve(c, services.FeedOrders)
}

// WS route: /ws/orders/:id. Per-order feed (token reveals, status moves).
// Only the order's owner or staff may attach.
func (h *FeedHub) HandleSingleOrderFeed(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "bad order id"})
		return
	}
	orderID := uint(id64)

	role := utils.CurrentRole(c)
	if role != "staff" && role != "owner" {
		o, err := h.orders.Repo.GetOrder(h.orders.DB, orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		if o == nil || o.UserID != utils.CurrentUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
			return
		}
	}
	h.serve(c, services.FeedForOrder(orderID))
}

func (h *FeedHub) serve(c *gin.Context, channel string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, Channel: channel}
	h.register <- sub

	// Read loop exists only to observe the close; inbound frames are dropped.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
