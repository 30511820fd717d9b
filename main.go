package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"inkwell/backend/internal/config"
	config_http "inkwell/backend/internal/features/config/presentation/http"
	"inkwell/backend/internal/features/marketing/application"
	marketingdomain "inkwell/backend/internal/features/marketing/domain"
	"inkwell/backend/internal/features/marketing/infrastructure"
	marketing_http "inkwell/backend/internal/features/marketing/presentation/http"
	personaapp "inkwell/backend/internal/features/persona/application"
	persona_http "inkwell/backend/internal/features/persona/presentation/http"
	"inkwell/backend/internal/logging"
	"inkwell/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	demo := flag.Bool("demo", false, "build a strategy for a sample book and exit")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := logging.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "config/app_config.json"
	}
	appConfigService := config.NewAppConfigService(configPath)
	appConfig, err := appConfigService.LoadAppConfig()
	if err != nil {
		logger.Warn("failed to load app config, continuing with defaults", zap.Error(err))
	}

	// Build the knowledge base once; it is read-only after this point.
	knowledgeBase := infrastructure.NewKnowledgeBase()
	if appConfig != nil {
		infrastructure.MergeGenreChannels(knowledgeBase, appConfig.ExtraGenreChannels)
	}

	// Initialize services
	var personaService personaapp.PersonaService
	if appConfig != nil {
		personaService = personaapp.NewPersonaService(appConfig.AgentPersonas)
	} else {
		personaService = personaapp.NewPersonaService(nil)
	}
	marketingService := application.NewMarketingService(personaService, knowledgeBase, logger)

	if *demo {
		runDemo(marketingService, personaService)
		return
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	var allowedOrigins []string
	if appConfig != nil {
		allowedOrigins = appConfig.AllowedOrigins
	}
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Marketing API routes
	marketingGroup := r.Group("/api/marketing")
	{
		handler := marketing_http.NewMarketingHandler(marketingService, personaService)
		marketingGroup.POST("/strategy", handler.CreateStrategyHandler)
		marketingGroup.GET("/knowledge", marketing_http.GetKnowledgeBaseHandler(knowledgeBase))
	}

	// Persona API routes
	personaGroup := r.Group("/api/persona")
	{
		handler := persona_http.NewPersonaHandler(personaService)
		personaGroup.GET("", handler.ListRolesHandler)
		personaGroup.GET("/:role", handler.GetPersonaHandler)
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		configGroup.GET("/app", config_http.NewAppConfigHandler(appConfigService).GetAppConfigHandler)
		configGroup.POST("/app", config_http.NewAppConfigHandler(appConfigService).SaveAppConfigHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// runDemo builds a strategy for a fixed sample book and prints the headline
// fields, mirroring how an agency demo pitch would present them.
func runDemo(marketingService application.MarketingService, personaService personaapp.PersonaService) {
	persona := personaService.GetAgentPersonality("marketing")
	fmt.Printf("Hey there! I'm %s, and I'm excited to create a killer marketing strategy for your book!\n", persona.Name)
	fmt.Println(persona.Personality)

	book := marketingdomain.BookInfo{
		Title:       "The Dragon's Call",
		Description: "A young wizard discovers their destiny",
		Genre:       "Fantasy",
		Tone:        "Epic",
	}
	strategy := marketingService.CreateMarketingStrategy(&book)

	fmt.Printf("\nTarget Audience: %s\n", strategy.TargetAudience)
	fmt.Printf("Key Messages: %v\n", strategy.KeyMessaging)
	fmt.Printf("Promotional Channels: %v\n", strategy.PromotionalChannels)
}
