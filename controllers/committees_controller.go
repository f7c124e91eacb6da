package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/circlo/circlo-backend-go/config"
	ledger "github.com/circlo/circlo-backend-go/ledger"
	models "github.com/circlo/circlo-backend-go/models"
	utils "github.com/circlo/circlo-backend-go/utils"
)

// ---------------- CREATE ----------------
func CreateCommittee(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CommitteeName string   `json:"committeeName" binding:"required"`
			CommitteeID   string   `json:"committeeID"`
			Chairperson   string   `json:"chairperson"`
			Members       []string `json:"members"`
			Purpose       string   `json:"purpose"`
			Amount        float64  `json:"amount"`
			StartDate     string   `json:"startDate"`
			EndDate       string   `json:"endDate"`
			Rotation      string   `json:"rotation"`
			Privacy       string   `json:"privacy"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Members == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "members must be an array"})
			return
		}

		// The caller normally generates the code; only fill it in when absent.
		if input.CommitteeID == "" {
			input.CommitteeID = utils.GenerateCommitteeID(utils.CommitteeIDLength)
		}

		col := cfg.Collection("committees")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// The code is the external lookup key, so a duplicate would shadow an
		// existing committee.
		var existing models.Committee
		err := col.FindOne(ctx, bson.M{"committeeID": input.CommitteeID}).Decode(&existing)
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "committee ID already in use"})
			return
		}
		if err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check committee ID"})
			return
		}

		committee := models.Committee{
			ID:            primitive.NewObjectID(),
			CommitteeName: input.CommitteeName,
			CommitteeID:   input.CommitteeID,
			Chairperson:   input.Chairperson,
			Members:       input.Members,
			Purpose:       input.Purpose,
			Amount:        input.Amount,
			StartDate:     input.StartDate,
			EndDate:       input.EndDate,
			Rotation:      input.Rotation,
			Privacy:       input.Privacy,
			CreatedAt:     time.Now(),
		}

		if _, err := col.InsertOne(ctx, committee); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create committee"})
			return
		}

		if err := seedLedger(ctx, cfg, committee); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed member ledger"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Committee created", "data": committee})
	}
}

// ---------------- LIST ----------------
func ListCommittees(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("committees")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committees"})
			return
		}

		var committees []models.Committee
		if err := cursor.All(ctx, &committees); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode committees"})
			return
		}

		if committees == nil {
			committees = []models.Committee{}
		}

		c.JSON(http.StatusOK, gin.H{"data": committees})
	}
}

// ---------------- GET ----------------
func GetCommittee(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var committee models.Committee
		err := cfg.Collection("committees").
			FindOne(ctx, bson.M{"committeeID": committeeID}).
			Decode(&committee)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committee"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": committee})
	}
}

// ---------------- JOIN ----------------
func JoinCommittee(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CommitteeID string `json:"committeeID"`
			UserName    string `json:"userName"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.CommitteeID == "" || input.UserName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ID or user name."})
			return
		}

		col := cfg.Collection("committees")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var committee models.Committee
		err := col.FindOne(ctx, bson.M{"committeeID": input.CommitteeID}).Decode(&committee)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committee"})
			return
		}

		// Exact-match membership check keeps repeat joins idempotent.
		alreadyMember := false
		for _, m := range committee.Members {
			if m == input.UserName {
				alreadyMember = true
				break
			}
		}

		if !alreadyMember {
			committee.Members = append(committee.Members, input.UserName)
			update := bson.M{"$addToSet": bson.M{"members": input.UserName}}
			if _, err := col.UpdateOne(ctx, bson.M{"committeeID": input.CommitteeID}, update); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not join committee"})
				return
			}

			memberID, err := nextMemberID(ctx, cfg, committee.CommitteeID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed member ledger"})
				return
			}

			entry := ledger.NewEntry(committee.CommitteeID, memberID, input.UserName, committee.Amount)
			entry.ID = primitive.NewObjectID()
			entry.UpdatedAt = time.Now()
			if _, err := cfg.Collection("ledgers").InsertOne(ctx, entry); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed member ledger"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"data": committee, "message": "Joined successfully"})
	}
}

// nextMemberID returns a member position that cannot collide with an
// existing ledger row, even after removals left gaps in the sequence.
func nextMemberID(ctx context.Context, cfg *config.Config, committeeID string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "memberID", Value: -1}})

	var last models.LedgerEntry
	err := cfg.Collection("ledgers").FindOne(ctx, bson.M{"committeeID": committeeID}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.MemberID + 1, nil
}

// seedLedger creates one ledger row per listed member.
func seedLedger(ctx context.Context, cfg *config.Config, committee models.Committee) error {
	if len(committee.Members) == 0 {
		return nil
	}

	now := time.Now()
	entries := make([]interface{}, 0, len(committee.Members))
	for i, name := range committee.Members {
		entry := ledger.NewEntry(committee.CommitteeID, i, name, committee.Amount)
		entry.ID = primitive.NewObjectID()
		entry.UpdatedAt = now
		entries = append(entries, entry)
	}

	_, err := cfg.Collection("ledgers").InsertMany(ctx, entries)
	return err
}
