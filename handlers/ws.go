package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/Alejandro-Val/FinanceTracker/middleware"
	"github.com/Alejandro-Val/FinanceTracker/services"
	"github.com/Alejandro-Val/FinanceTracker/utils"
)

// WSHandler pushes ledger/category/account change events to connected
// clients. Each session holds one broker subscription scoped to its owner
// id; the subscription's cancel handle is released on disconnect.
type WSHandler struct {
	M      *melody.Melody
	Broker *services.Broker
}

func NewWSHandler(broker *services.Broker) *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive for cloud hosting proxies.
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	h := &WSHandler{M: m, Broker: broker}

	m.HandleConnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		ownerID, ok := userID.(string)
		if !ok || ownerID == "" {
			s.Close()
			return
		}

		events, cancel := broker.Subscribe(ownerID)
		s.Set("cancel", cancel)

		go func() {
			for event := range events {
				payload, err := json.Marshal(event)
				if err != nil {
					continue
				}
				if err := s.Write(payload); err != nil {
					return
				}
			}
		}()

		utils.LogWebSocket("connected", ownerID)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		if cancel, exists := s.Get("cancel"); exists {
			if release, ok := cancel.(func()); ok {
				release()
			}
		}

		userID, _ := s.Get("user_id")
		ownerID, _ := userID.(string)
		utils.LogWebSocket("disconnected", ownerID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		utils.SafeError("websocket error: %v", err)
	})

	return h
}

// HandleWS upgrades the request to a WebSocket session bound to the
// authenticated user.
func (h *WSHandler) HandleWS(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		utils.SafeError("failed to upgrade websocket: %v", err)
	}
}

// Close shuts the hub down, disconnecting every session.
func (h *WSHandler) Close() error {
	return h.M.Close()
}
