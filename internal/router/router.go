package router

import (
	"github.com/celulaviver/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SessionName 是会话 cookie 的名称
const SessionName = "celulas_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions(SessionName, store))

	r.GET("/ping", api.Ping)

	public := r.Group("/api")
	{
		public.GET("/cells", api.ListCellOptions)
		public.POST("/login", api.Login)
		public.POST("/logout", api.Logout)
		public.GET("/session", api.GetSession)
		public.POST("/session/confirm", api.ConfirmSession)
	}

	// 需要登录并确认小组的路由
	auth := r.Group("/api")
	auth.Use(api.AuthRequired())
	{
		auth.GET("/alerts", api.GetAlerts)
		auth.GET("/notifications", api.GetNotifications)
		auth.PUT("/notifications/:id/read", api.MarkNotificationRead)
		auth.DELETE("/notifications/:id", api.DeleteNotification)
		auth.GET("/notifications/:id/contact", api.GetNotificationContact)
		auth.GET("/shares", api.GetShares)
		auth.GET("/events", api.GetEvents)

		leader := auth.Group("/leader")
		leader.Use(api.LeaderRequired())
		{
			leader.GET("/reports", api.GetLeaderReports)
			leader.POST("/reports", api.CreateLeaderReport)
			leader.PUT("/reports/:id", api.UpdateLeaderReport)
			leader.DELETE("/reports/:id", api.DeleteLeaderReport)
			leader.POST("/visitors/welcome", api.WelcomeVisitor)
		}

		admin := auth.Group("/admin")
		admin.Use(api.AdminRequired())
		{
			admin.GET("/cells", api.GetCells)
			admin.GET("/cells/:id", api.GetCell)
			admin.POST("/cells", api.CreateCell)
			admin.PUT("/cells/:id", api.UpdateCell)
			admin.DELETE("/cells/:id", api.DeleteCell)
			admin.POST("/cells/:id/dismiss-late", api.DismissLateAlert)
			admin.POST("/uploads/photo", api.UploadPhoto)

			admin.GET("/late-alerts", api.GetLateAlerts)
			admin.POST("/late-alerts/:cellId/charge", api.ChargeLateCell)

			admin.GET("/reports", api.GetAdminReports)
			admin.GET("/reports/export", api.ExportAdminReports)
			admin.DELETE("/reports/:id", api.DeleteAdminReport)
			admin.GET("/metrics", api.GetMetrics)

			admin.GET("/goals", api.GetGoals)
			admin.POST("/goals", api.CreateGoal)
			admin.PUT("/goals/:id", api.UpdateGoal)
			admin.POST("/goals/:id/toggle", api.ToggleGoal)
			admin.DELETE("/goals/:id", api.DeleteGoal)

			admin.GET("/baptisms", api.GetBaptisms)
			admin.POST("/baptisms", api.CreateBaptism)
			admin.DELETE("/baptisms/:id", api.DeleteBaptism)

			admin.POST("/shares", api.CreateShare)
			admin.DELETE("/shares/:id", api.DeleteShare)

			admin.GET("/events", api.GetEvents)
			admin.POST("/events", api.CreateEvent)
			admin.DELETE("/events/:id", api.DeleteEvent)

			admin.POST("/notices", api.SendNotice)
			admin.POST("/notices/whatsapp", api.SendNoticeWhatsApp)
		}
	}

	return r
}
