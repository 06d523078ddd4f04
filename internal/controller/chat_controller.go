package controller

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/Balamathias/glafrica/internal/dto"
	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/internal/pkg/serverutils"
	"github.com/Balamathias/glafrica/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Stream(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	logger  logger.ILogger
}

func NewChatController(service service.IChatService, log logger.ILogger) IChatController {
	return &chatController{service: service, logger: log}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/send", c.Send)
	h.Get("/stream", c.Stream)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat reply", res))
}

// Stream upgrades to a websocket, reads one ChatRequest frame, and pushes
// the reply back as chunk events followed by a done event. A client that
// disconnects mid-reply cancels generation.
func (c *chatController) Stream(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		var req dto.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			c.writeEvent(conn, dto.ChatStreamEvent{Type: "error", Message: "Invalid request frame"})
			return
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			c.writeEvent(conn, dto.ChatStreamEvent{Type: "error", Message: err.Error()})
			return
		}

		streamCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Any further read (or a close frame) means the client is gone.
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ch, contextCount, err := c.service.ChatStream(streamCtx, &req)
		if err != nil {
			c.writeEvent(conn, dto.ChatStreamEvent{Type: "error", Message: "Chat generation failed"})
			return
		}

		for chunk := range ch {
			if !c.writeEvent(conn, dto.ChatStreamEvent{Type: "chunk", Content: chunk}) {
				return
			}
		}
		c.writeEvent(conn, dto.ChatStreamEvent{Type: "done", ContextCount: contextCount})
	})(ctx)
}

func (c *chatController) writeEvent(conn *websocket.Conn, event dto.ChatStreamEvent) bool {
	payload, err := json.Marshal(event)
	if err != nil {
		return false
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.logger.Debug("chat", "websocket write failed", map[string]interface{}{"error": err.Error()})
		return false
	}
	return true
}
