package main

import (
	"context"
	"time"

	"github.com/niksmo/saree-landing/config"
	"github.com/niksmo/saree-landing/internal/app"
	"github.com/niksmo/saree-landing/pkg/sigctx"
)

const closeTimeout = 10 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext(context.Background())
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	landing := app.New(sigCtx, cfg)

	landing.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	landing.Close(ctx)
}
