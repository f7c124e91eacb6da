package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/circlo/circlo-backend-go/config"
	models "github.com/circlo/circlo-backend-go/models"
	utils "github.com/circlo/circlo-backend-go/utils"
)

// ---------------- LIST ----------------
func ListMessages(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")

		col := cfg.Collection("messages")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
		cursor, err := col.Find(ctx, bson.M{"committeeID": committeeID}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch messages"})
			return
		}

		var messages []models.ChatMessage
		if err := cursor.All(ctx, &messages); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode messages"})
			return
		}

		if messages == nil {
			messages = []models.ChatMessage{}
		}

		c.JSON(http.StatusOK, gin.H{"data": messages})
	}
}

// ---------------- SEND ----------------
func SendMessage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")

		var input models.ChatMessage
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		input.ID = primitive.NewObjectID()
		input.CommitteeID = committeeID
		if input.Timestamp.IsZero() {
			input.Timestamp = time.Now()
		}
		if input.Status == "" {
			input.Status = "sent"
		}
		if input.Type == "" {
			input.Type = "text"
		}

		col := cfg.Collection("messages")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Message sent", "data": input})
	}
}

// ---------------- UPLOAD ATTACHMENT ----------------
func UploadAttachment(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
			return
		}
		defer file.Close()

		url, err := utils.UploadChatAttachment(cfg, file, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "attachment upload failed",
				"details": err.Error(),
				"file":    fileHeader.Filename,
			})
			return
		}

		attachment := models.FileAttachment{
			Name: fileHeader.Filename,
			Size: fileHeader.Size,
			Type: fileHeader.Header.Get("Content-Type"),
			URL:  url,
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Attachment uploaded", "data": attachment})
	}
}

// ---------------- DELETE ONE ----------------
func DeleteMessage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")
		messageID, err := primitive.ObjectIDFromHex(c.Param("messageId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
			return
		}

		col := cfg.Collection("messages")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var deleted models.ChatMessage
		err = col.FindOneAndDelete(ctx, bson.M{"committeeID": committeeID, "_id": messageID}).Decode(&deleted)
		if err != nil && err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete message"})
			return
		}

		// File messages leave their upload behind; drop it too.
		if deleted.Type == "file" && deleted.File != nil && deleted.File.URL != "" {
			if err := utils.DeleteChatAttachment(cfg, deleted.File.URL); err != nil {
				log.Printf("Failed to delete attachment for message %s: %v", messageID.Hex(), err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}

// ---------------- CLEAR CHAT ----------------
func ClearChat(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")

		col := cfg.Collection("messages")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := col.DeleteMany(ctx, bson.M{"committeeID": committeeID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear chat"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Chat cleared"})
	}
}
