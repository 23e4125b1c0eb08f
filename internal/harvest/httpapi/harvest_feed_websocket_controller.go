package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/harvest/httpapi/internal"
	"greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/async"
	"greenhouse-server/internal/infra/httpserver"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin for development
		// In production, you should validate the origin
		return true
	},
}

type HarvestFeedMessage struct {
	Type      string                   `json:"type"`
	Timestamp time.Time                `json:"timestamp"`
	Harvest   internal.HarvestResponse `json:"harvest"`
}

type HarvestFeedWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan HarvestFeedMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewHarvestFeedWebSocketController(broker async.InternalBroker) *HarvestFeedWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &HarvestFeedWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan HarvestFeedMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	// Start the hub
	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*HarvestFeedWebSocketController)(nil)

func (wsc *HarvestFeedWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/harvests", wsc.handleWebSocket())
}

func (wsc *HarvestFeedWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("new websocket connection established", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *HarvestFeedWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *HarvestFeedWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *HarvestFeedWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.HarvestEventsTopic)
	if err != nil {
		slog.Error("failed to subscribe to harvest events", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.HarvestEventsTopic, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				close := func() {
					defer func() {
						if r := recover(); r != nil {
							slog.Warn("recovered from panic while closing websocket", slog.Any("panic", r))
						}
					}()
					client.Close()
				}
				close()
			}
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", len(wsc.clients)))

		case message := <-wsc.broadcast:
			var stale []*websocket.Conn
			wsc.clientsMux.RLock()
			for client := range wsc.clients {
				select {
				case <-wsc.ctx.Done():
					wsc.clientsMux.RUnlock()
					return
				default:
					client.SetWriteDeadline(time.Now().Add(10 * time.Second))
					if err := client.WriteJSON(message); err != nil {
						slog.Error("failed to write message to websocket client", slog.String("error", err.Error()))
						stale = append(stale, client)
					}
				}
			}
			wsc.clientsMux.RUnlock()

			if len(stale) > 0 {
				wsc.clientsMux.Lock()
				for _, client := range stale {
					client.Close()
					delete(wsc.clients, client)
				}
				wsc.clientsMux.Unlock()
			}

		case brokerMsg := <-subscription.Receiver:
			harvest, ok := brokerMsg.Value.(harvestDomain.Harvest)
			if !ok {
				continue
			}

			feedMsg := HarvestFeedMessage{
				Type:      brokerMsg.Event,
				Timestamp: time.Now(),
				Harvest:   internal.ToHarvestResponse(harvest),
			}

			// Non-blocking send to broadcast channel
			select {
			case wsc.broadcast <- feedMsg:
			default:
				slog.Warn("broadcast channel full, dropping message")
			}
		}
	}
}

func (wsc *HarvestFeedWebSocketController) Shutdown() {
	slog.Info("shutting down harvest feed websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()

	close(wsc.broadcast)
	close(wsc.register)
	close(wsc.unregister)
}
