package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// OrderFeed กระจายเหตุการณ์ออเดอร์ใหม่ให้หน้าจอหลังบ้านที่ต่อ WS ค้างไว้
type OrderFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *zap.Logger
}

// OrderEvent = ข้อความที่จะส่งให้ทุก client
type OrderEvent struct {
	Type      string    `json:"type"` // "order_created" | "order_updated"
	OrderID   uint      `json:"orderId"`
	Reference string    `json:"reference,omitempty"`
	Total     float64   `json:"total"`
	At        time.Time `json:"at"`
}

func NewOrderFeed(log *zap.Logger) *OrderFeed {
	return &OrderFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (f *OrderFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.mu.Lock()
			f.clients[conn] = true
			f.mu.Unlock()

		case conn := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[conn]; ok {
				delete(f.clients, conn)
				conn.Close()
			}
			f.mu.Unlock()

		case ev := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients {
				if err := conn.WriteJSON(ev); err != nil {
					f.log.Warn("ws write error", zap.Error(err))
					conn.Close()
					delete(f.clients, conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// Publish ไม่ block ฝั่ง HTTP handler
func (f *OrderFeed) Publish(ev OrderEvent) {
	ev.At = time.Now()
	select {
	case f.broadcast <- ev:
	default:
		f.log.Warn("order feed backed up, dropping event", zap.Uint("orderId", ev.OrderID))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (ผ่าน WSAuthMiddleware role admin มาแล้ว)
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		f.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	f.register <- conn

	// อ่านทิ้งไปเรื่อย ๆ เพื่อจับตอน client หลุด
	go func() {
		defer func() { f.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
