package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/circlo/circlo-backend-go/config"
	ledger "github.com/circlo/circlo-backend-go/ledger"
	models "github.com/circlo/circlo-backend-go/models"
	utils "github.com/circlo/circlo-backend-go/utils"
)

// fetchCommittee looks a committee up by its external code.
func fetchCommittee(ctx context.Context, cfg *config.Config, committeeID string) (models.Committee, error) {
	var committee models.Committee
	err := cfg.Collection("committees").
		FindOne(ctx, bson.M{"committeeID": committeeID}).
		Decode(&committee)
	return committee, err
}

// fetchLedger returns the committee's ledger rows ordered by member position,
// seeding them from the member list when none exist yet.
func fetchLedger(ctx context.Context, cfg *config.Config, committee models.Committee) ([]models.LedgerEntry, error) {
	col := cfg.Collection("ledgers")
	opts := options.Find().SetSort(bson.D{{Key: "memberID", Value: 1}})

	cursor, err := col.Find(ctx, bson.M{"committeeID": committee.CommitteeID}, opts)
	if err != nil {
		return nil, err
	}

	var entries []models.LedgerEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	if len(entries) == 0 && len(committee.Members) > 0 {
		if err := seedLedger(ctx, cfg, committee); err != nil {
			return nil, err
		}
		cursor, err = col.Find(ctx, bson.M{"committeeID": committee.CommitteeID}, opts)
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &entries); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// ---------------- DASHBOARD ----------------
func GetDashboard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		committee, err := fetchCommittee(ctx, cfg, committeeID)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committee"})
			return
		}

		entries, err := fetchLedger(ctx, cfg, committee)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch ledger"})
			return
		}
		if entries == nil {
			entries = []models.LedgerEntry{}
		}

		totals := ledger.ComputeTotals(entries, committee.Amount, len(committee.Members))
		cycle := ledger.Cycle(totals.Collected, committee.Amount)
		next := ledger.NextRecipient(entries, committee.Rotation, committee.CommitteeID, cycle)

		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"committee":     committee,
				"members":       entries,
				"totals":        totals,
				"nextRecipient": next,
			},
		})
	}
}

// ---------------- MARK PAID ----------------
func MarkMemberPaid(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")
		memberID, err := strconv.Atoi(c.Param("memberID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		committee, err := fetchCommittee(ctx, cfg, committeeID)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committee"})
			return
		}

		col := cfg.Collection("ledgers")
		filter := bson.M{"committeeID": committeeID, "memberID": memberID}

		var entry models.LedgerEntry
		err = col.FindOne(ctx, filter).Decode(&entry)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch member"})
			return
		}

		// The view only updates after the store acknowledges the write.
		updated := ledger.MarkPaid(entry, committee.Amount)
		updated.UpdatedAt = time.Now()

		update := bson.M{"$set": bson.M{
			"paid":      updated.Paid,
			"due":       updated.Due,
			"status":    updated.Status,
			"updatedAt": updated.UpdatedAt,
		}}
		if _, err := col.UpdateOne(ctx, filter, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record payment"})
			return
		}

		entries, err := fetchLedger(ctx, cfg, committee)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch ledger"})
			return
		}
		totals := ledger.ComputeTotals(entries, committee.Amount, len(committee.Members))

		c.JSON(http.StatusOK, gin.H{
			"message": "Payment recorded",
			"data":    gin.H{"member": updated, "totals": totals},
		})
	}
}

// ---------------- REMOVE MEMBER ----------------
func RemoveMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")
		memberID, err := strconv.Atoi(c.Param("memberID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		col := cfg.Collection("ledgers")
		filter := bson.M{"committeeID": committeeID, "memberID": memberID}

		var entry models.LedgerEntry
		err = col.FindOne(ctx, filter).Decode(&entry)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch member"})
			return
		}

		if _, err := col.DeleteOne(ctx, filter); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove member"})
			return
		}

		// Keep the committee's member list in step with the ledger.
		pull := bson.M{"$pull": bson.M{"members": entry.Name}}
		if _, err := cfg.Collection("committees").UpdateOne(ctx, bson.M{"committeeID": committeeID}, pull); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update committee"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Member removed", "data": entry})
	}
}

// ---------------- REMIND ----------------
func RemindMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		committeeID := c.Param("committeeID")
		memberID, err := strconv.Atoi(c.Param("memberID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		var input struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		committee, err := fetchCommittee(ctx, cfg, committeeID)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committee"})
			return
		}

		var entry models.LedgerEntry
		err = cfg.Collection("ledgers").
			FindOne(ctx, bson.M{"committeeID": committeeID, "memberID": memberID}).
			Decode(&entry)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch member"})
			return
		}

		if err := utils.SendReminderEmail(cfg, input.Email, entry.Name, committee.CommitteeName, entry.Due); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send reminder"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Reminder sent", "data": entry})
	}
}
