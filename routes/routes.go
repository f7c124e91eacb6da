package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/circlo/circlo-backend-go/config"
	controllers "github.com/circlo/circlo-backend-go/controllers"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// auth
	r.POST("/register", controllers.Register(cfg))
	r.POST("/login", controllers.Login(cfg))
	r.POST("/forgot-password", controllers.ForgotPassword(cfg))

	// payment orders
	r.POST("/order", controllers.CreateOrder(cfg))

	api := r.Group("/api")
	{
		api.POST("/committees", controllers.CreateCommittee(cfg))
		api.GET("/committees", controllers.ListCommittees(cfg))
		api.GET("/committees/:committeeID", controllers.GetCommittee(cfg))
		api.POST("/join-committee", controllers.JoinCommittee(cfg))

		// dashboard + member ledger
		api.GET("/committees/:committeeID/dashboard", controllers.GetDashboard(cfg))
		api.POST("/committees/:committeeID/members/:memberID/pay", controllers.MarkMemberPaid(cfg))
		api.POST("/committees/:committeeID/members/:memberID/remind", controllers.RemindMember(cfg))
		api.DELETE("/committees/:committeeID/members/:memberID", controllers.RemoveMember(cfg))

		// chat
		api.GET("/committees/:committeeID/messages", controllers.ListMessages(cfg))
		api.POST("/committees/:committeeID/messages", controllers.SendMessage(cfg))
		api.POST("/committees/:committeeID/messages/attachments", controllers.UploadAttachment(cfg))
		api.DELETE("/committees/:committeeID/messages/:messageId", controllers.DeleteMessage(cfg))
		api.DELETE("/committees/:committeeID/messages", controllers.ClearChat(cfg))
	}
}
