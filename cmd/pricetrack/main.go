package main

import (
	"context"

	"pricetrack-backend/cmd/pricetrack/commands"
	"pricetrack-backend/lib/serviceutil"
	"pricetrack-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	tel, err := telemetry.SetupFromEnv(ctx, "pricetrack")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
