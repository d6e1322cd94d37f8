package main

import (
	"fmt"
	"os"
	"time"

	"astrocal-server/config"
	"astrocal-server/di"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	fmt.Println("warming today's almanac!")
	if err := container.AlmanacRefresherService.RefreshTodayAlmanac(); err != nil {
		fmt.Println("warm-up failed:", err)
	}

	fmt.Println("starting periodic job!")
	container.AlmanacRefresherService.StartPeriodicJob(config.ALMANAC_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.AstroCalendarHttpServer.Start()
}
