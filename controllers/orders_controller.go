package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"

	config "github.com/circlo/circlo-backend-go/config"
)

// ---------------- CREATE ORDER ----------------
// The request body is forwarded to Razorpay as the order options and the
// provider's response comes back verbatim.
func CreateOrder(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var options map[string]interface{}
		if err := c.ShouldBindJSON(&options); err != nil {
			c.String(http.StatusInternalServerError, "Error")
			return
		}

		client := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		order, err := client.Order.Create(options, nil)
		if err != nil || order == nil {
			c.String(http.StatusInternalServerError, "Error")
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
