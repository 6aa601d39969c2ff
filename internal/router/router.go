package router

import (
	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/config"
	"github.com/kelvinlyk2002/final-backend/internal/exchange"
	"github.com/kelvinlyk2002/final-backend/internal/handler"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, rates exchange.RateClient, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "fundoor-backend",
		})
	})

	projectHandler := handler.NewProjectHandler(db, cfg.Media.Dir)
	contributionHandler := handler.NewContributionHandler(db, rates)
	governanceHandler := handler.NewGovernanceHandler(db)
	commentHandler := handler.NewCommentHandler(db)
	mediaHandler := handler.NewMediaHandler(db, cfg.Media.Dir)

	// API路由组
	api := r.Group("/api")
	{
		// 项目
		api.POST("/initiate_project", projectHandler.InitiateProject)
		api.GET("/get_project_data/:project_address", projectHandler.GetProjectData)
		api.POST("/add_currency", projectHandler.AddCurrency)
		api.GET("/search_projects", projectHandler.SearchProjects)

		// 贡献
		api.POST("/contribute_project", contributionHandler.ContributeProject)

		// 社区治理
		api.POST("/propose_community_action", governanceHandler.ProposeCommunityAction)
		api.POST("/vote_community_action", governanceHandler.VoteCommunityAction)
		api.GET("/get_community_proposals/:project_address", governanceHandler.GetCommunityProposals)
		api.GET("/get_votes/:proposal_id", governanceHandler.GetVotes)

		// 评论
		api.POST("/add_project_comment", commentHandler.AddProjectComment)
		api.PUT("/update_comment/:id", commentHandler.UpdateComment)
		api.DELETE("/delete_comment/:id", commentHandler.DeleteComment)
	}

	// 图片访问
	r.GET("/media/user_upload/:filename", mediaHandler.GetMedia)

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
