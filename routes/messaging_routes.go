package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/handlers"
	"github.com/karigarhub/karigar-backend/middleware"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rooms := api.Group("/chat-rooms", middleware.Protected())
	rooms.Get("", handlers.GetMyChatRooms)
	rooms.Post("", handlers.CreateOrGetChatRoom)
	rooms.Get("/:roomId/messages", handlers.GetChatRoomMessages)
	rooms.Post("/:roomId/messages", handlers.SendMessage)
	rooms.Post("/:roomId/read", handlers.MarkMessagesRead)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
