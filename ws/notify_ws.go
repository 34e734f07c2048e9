package ws

import (
	"net/http"
	"sync"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// NotifyHub streams freshly created notifications to their recipient's
// open connections. Outbound only: clients never send, they just hold
// the socket open and read.
type NotifyHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of conns
	broadcast  chan *entity.Notification
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	log        zerolog.Logger
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

func NewNotifyHub(log zerolog.Logger) *NotifyHub {
	return &NotifyHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Notification, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		log:        log,
	}
}

// Publish satisfies services.Publisher; non-blocking so a slow hub can
// never stall an order operation.
func (h *NotifyHub) Publish(n *entity.Notification) {
	select {
	case h.broadcast <- n:
	default:
		h.log.Warn().Uint("recipient", n.RecipientID).Msg("notify hub backlog full, dropping push")
	}
}

func (h *NotifyHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[n.RecipientID] {
				if err := conn.WriteJSON(n); err != nil {
					h.log.Error().Err(err).Msg("ws write")
					conn.Close()
					delete(h.clients[n.RecipientID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("ws upgrade")
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps reading until the client hangs up, discarding anything
// it sends; its only job is to notice the close.
func (h *NotifyHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
