package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/tazhate/ballotbot/config"
	"github.com/tazhate/ballotbot/internal/notifier"
	"github.com/tazhate/ballotbot/internal/service"
)

// One run per trigger; the host's cron decides when.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	svc := service.NewBallotService(cfg, notifier.NewTelegram(cfg))
	res := svc.Run(time.Now())

	if err := json.NewEncoder(os.Stdout).Encode(res); err != nil {
		log.Printf("Error writing result: %v", err)
	}
}
