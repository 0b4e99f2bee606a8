package handlers

import (
	"log"
	"strconv"
	"time"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/karigarhub/karigar-backend/configs"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
	"github.com/karigarhub/karigar-backend/websocket"
)

type chatRoomView struct {
	models.ChatRoom
	UnreadCount int64           `json:"unread_count"`
	LastMessage *models.Message `json:"last_message,omitempty"`
}

func GetMyChatRooms(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var rooms []models.ChatRoom
	err := database.DB.
		Preload("Customer").
		Preload("Worker").
		Where("customer_id = ? OR worker_id = ?", userID, userID).
		Order("last_message_at desc").
		Find(&rooms).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch chat rooms"})
	}

	views := make([]chatRoomView, 0, len(rooms))
	for _, room := range rooms {
		view := chatRoomView{ChatRoom: room}

		database.DB.Model(&models.Message{}).
			Where("chat_room_id = ? AND sender_id <> ? AND is_read = ?", room.ID, userID, false).
			Count(&view.UnreadCount)

		var last models.Message
		err := database.DB.
			Where("chat_room_id = ?", room.ID).
			Order("created_at desc").
			First(&last).Error
		if err == nil {
			view.LastMessage = &last
		}

		views = append(views, view)
	}

	return c.JSON(views)
}

type CreateChatRoomRequest struct {
	WorkerID     string  `json:"worker_id" validate:"required,uuid"`
	BookingID    *string `json:"booking_id,omitempty" validate:"omitempty,uuid"`
	ServiceTitle string  `json:"service_title"`
}

// CreateOrGetChatRoom returns the existing room between the caller and the
// worker's user, creating one when none exists.
func CreateOrGetChatRoom(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var req CreateChatRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	workerUserID, _ := uuid.Parse(req.WorkerID)

	var room models.ChatRoom
	err := database.DB.
		Where("customer_id = ? AND worker_id = ?", customerID, workerUserID).
		First(&room).Error
	if err == nil {
		return c.JSON(room)
	}

	var worker models.User
	if err := database.DB.First(&worker, "id = ?", workerUserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	room = models.ChatRoom{
		CustomerID:    customerID,
		WorkerID:      workerUserID,
		ServiceTitle:  req.ServiceTitle,
		LastMessageAt: time.Now(),
	}
	if req.BookingID != nil {
		bookingID, _ := uuid.Parse(*req.BookingID)
		room.BookingID = &bookingID
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create chat room"})
	}

	return c.Status(fiber.StatusCreated).JSON(room)
}

func GetChatRoomMessages(c *fiber.Ctx) error {
	userID := currentUserID(c)
	roomID := c.Params("roomId")

	var room models.ChatRoom
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat room not found"})
	}
	if room.CustomerID != userID && room.WorkerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not a participant of this chat room"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	offset := (page - 1) * pageSize

	var messages []models.Message
	err := database.DB.
		Where("chat_room_id = ?", roomID).
		Order("created_at asc").
		Limit(pageSize).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	return c.JSON(messages)
}

type SendMessageRequest struct {
	Content         string   `json:"content" validate:"required"`
	MessageType     string   `json:"message_type" validate:"omitempty,oneof=text image file location system"`
	FileURL         *string  `json:"file_url"`
	FileName        *string  `json:"file_name"`
	FileSize        *int64   `json:"file_size"`
	LocationLat     *float64 `json:"location_lat"`
	LocationLng     *float64 `json:"location_lng"`
	LocationAddress *string  `json:"location_address"`
}

func SendMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid chat room id"})
	}

	var room models.ChatRoom
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat room not found"})
	}
	if room.CustomerID != userID && room.WorkerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not a participant of this chat room"})
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = "text"
	}

	message := models.Message{
		ChatRoomID:      roomID,
		SenderID:        userID,
		Content:         req.Content,
		MessageType:     messageType,
		FileURL:         req.FileURL,
		FileName:        req.FileName,
		FileSize:        req.FileSize,
		LocationLat:     req.LocationLat,
		LocationLng:     req.LocationLng,
		LocationAddress: req.LocationAddress,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	database.DB.Model(&room).Update("last_message_at", time.Now())

	websocket.Broadcast <- &message

	return c.Status(fiber.StatusCreated).JSON(message)
}

func MarkMessagesRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	roomID := c.Params("roomId")

	var room models.ChatRoom
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat room not found"})
	}
	if room.CustomerID != userID && room.WorkerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not a participant of this chat room"})
	}

	now := time.Now()
	err := database.DB.Model(&models.Message{}).
		Where("chat_room_id = ? AND sender_id <> ? AND is_read = ?", roomID, userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark messages read"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}

// ServeWs upgrades the connection and, after an auth frame, keeps it
// registered with the hub for outbound delivery. Inbound frames only keep
// the connection alive; message sending goes through the REST endpoint.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Printf("WebSocket closed for user %s: %v", userID, err)
			break
		}
	}
}
