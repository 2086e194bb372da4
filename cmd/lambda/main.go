package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tazhate/ballotbot/config"
	"github.com/tazhate/ballotbot/internal/domain"
	"github.com/tazhate/ballotbot/internal/notifier"
	"github.com/tazhate/ballotbot/internal/service"
)

type handler struct {
	svc *service.BallotService
}

// Handle ignores the trigger payload; an EventBridge rule only decides when to run.
func (h *handler) Handle(ctx context.Context) (domain.Result, error) {
	return h.svc.Run(time.Now()), nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	h := &handler{svc: service.NewBallotService(cfg, notifier.NewTelegram(cfg))}
	lambda.Start(h.Handle)
}
