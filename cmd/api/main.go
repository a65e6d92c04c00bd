package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"findoc_analyst/pkg/api/chat"
	"findoc_analyst/pkg/api/config"
	"findoc_analyst/pkg/api/document"
	"findoc_analyst/pkg/api/quote"
	"findoc_analyst/pkg/core/agent"
	"findoc_analyst/pkg/core/market"
	"findoc_analyst/pkg/core/prompt"
	"findoc_analyst/pkg/core/store"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize Prompt Library
	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to built-in prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Optional persistence: repos stay nil when DATABASE_URL is unset
	var analysisRepo *store.AnalysisRepo
	var chatRepo *store.ChatRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database init failed, running stateless: %v\n", err)
		} else {
			analysisRepo = store.NewAnalysisRepo()
			chatRepo = store.NewChatRepo()
			defer store.Close()
			fmt.Println("[STORE] Persistence enabled")
		}
	}

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Document analysis endpoints
	documentHandler := document.NewHandler(analysisRepo)
	http.HandleFunc("/api/document/analyze", documentHandler.HandleAnalyze)
	http.HandleFunc("/api/history", documentHandler.HandleHistory)

	// Chat endpoints
	chatHandler := chat.NewHandler(agentMgr, chatRepo)
	http.HandleFunc("/api/chat/ask", chatHandler.HandleAsk)
	http.HandleFunc("/api/chat/extract", chatHandler.HandleExtract)

	// Quote endpoints
	quoteHandler := quote.NewHandler(market.NewClient())
	http.HandleFunc("/api/quote", quoteHandler.HandleQuote)
	http.HandleFunc("/api/quote/summary", quoteHandler.HandleSummary)
	http.HandleFunc("/api/quote/compare", quoteHandler.HandleCompare)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/document/analyze")
	fmt.Println("  - GET  /api/history")
	fmt.Println("  - POST /api/chat/ask")
	fmt.Println("  - POST /api/chat/extract")
	fmt.Println("  - GET  /api/quote")
	fmt.Println("  - GET  /api/quote/summary")
	fmt.Println("  - GET  /api/quote/compare")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
