/*
Copyright © 2025 Prakash1256
*/
package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Prakash1256/PDF-AI-CHAT/config"
	"github.com/Prakash1256/PDF-AI-CHAT/handler"
	"github.com/Prakash1256/PDF-AI-CHAT/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PDF chat server",
	Long:  `Starts the HTTP server handling PDF uploads and chat questions`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		pdfService := service.NewPDFService()
		contextStore := service.NewContextStore()
		composer := service.NewPromptComposer(cfg.MaxContextChars)

		aiService, err := service.NewAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}

		answerService := service.NewAnswerService(contextStore, composer, aiService)
		wsService := service.NewWebSocketService(answerService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(pdfService, contextStore, cfg.UploadDir)
		chatHandler := handler.NewChatHandler(answerService)
		documentHandler := handler.NewDocumentHandler(cfg.UploadDir)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		api := router.Group("/api")
		{
			api.POST("/upload", uploadHandler.HandleUpload)
			api.POST("/chat", chatHandler.HandleChat)
			api.GET("/pdf", documentHandler.ServeDocument)
			api.GET("/ws", gin.WrapF(wsService.HandleChat))
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
