package cmd

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"lsaudio/config"
	"lsaudio/handlers"
	"lsaudio/middleware"
	"lsaudio/services"
	"lsaudio/websocket"
)

var (
	portFlag  int
	watchFlag bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the library listing over HTTP",
		Long: `Starts a web server exposing the configured music library as a JSON
API, with background rescans and WebSocket change notifications.`,
		RunE: runServe,
	}
)

func init() {
	serveCmd.Flags().IntVarP(&portFlag, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().BoolVarP(&watchFlag, "watch", "w", true, "rescan automatically when the library changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	return StartWebServer(portFlag, watchFlag)
}

// StartWebServer starts the web server.
func StartWebServer(port int, watch bool) error {
	// Set production mode if not specified
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	library := config.GetLibraryLocation()

	// Initialize services
	hub := websocket.NewHub()
	go hub.Run()

	lister := services.NewLister(services.NewTagReader(), library)

	scans := services.NewScanQueue(lister, hub)
	scans.Start()

	if watch {
		watcher, err := services.NewWatcher(library, scans, hub)
		if err != nil {
			log.Warn("library watching disabled", "err", err)
		} else {
			defer watcher.Close()
			go watcher.Run()
		}
	}

	// Initialize handlers
	listHandler := handlers.NewListHandler(lister, library)
	scanHandler := handlers.NewScanHandler(scans, hub, library)
	healthHandler := handlers.NewHealthHandler()
	settingsHandler := handlers.NewSettingsHandler()

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Logging())

	setupRoutes(r, listHandler, scanHandler, healthHandler, settingsHandler)

	portStr := strconv.Itoa(port)
	if serverPort := os.Getenv("SERVER_PORT"); serverPort != "" {
		portStr = serverPort
	}

	log.Info("lsaudio server starting", "port", portStr, "library", library)
	return r.Run(":" + portStr)
}

// setupRoutes configures all the HTTP routes.
func setupRoutes(r *gin.Engine, listHandler *handlers.ListHandler, scanHandler *handlers.ScanHandler, healthHandler *handlers.HealthHandler, settingsHandler *handlers.SettingsHandler) {
	// Health check endpoint
	r.GET("/health", healthHandler.HealthCheck)

	// API routes group
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/status", healthHandler.APIStatus)

		// Listing endpoint
		apiGroup.GET("/list", listHandler.List)

		// Scan management endpoints
		scansGroup := apiGroup.Group("/scans")
		{
			scansGroup.POST("", scanHandler.QueueScan)
			scansGroup.GET("", scanHandler.GetAllScans)
			scansGroup.GET("/:jobId", scanHandler.GetScan)
			scansGroup.DELETE("/:jobId", scanHandler.CancelScan)
		}

		// WebSocket endpoints for real-time scan progress
		wsGroup := apiGroup.Group("/ws")
		{
			wsGroup.GET("/scans/:jobId", scanHandler.HandleWebSocketConnection)
			wsGroup.GET("/scans", scanHandler.HandleWebSocketAllConnection)
		}

		// Settings endpoints
		apiGroup.GET("/settings", settingsHandler.GetSettings)
		apiGroup.POST("/settings", settingsHandler.UpdateSettings)
	}
}
