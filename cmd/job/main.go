package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"social-insights-backend/config"
	"social-insights-backend/pkg/adapter/repository/snapshotrepository"
	"social-insights-backend/pkg/infrastructure/scheduler"
	"social-insights-backend/pkg/usecase/usecase/analysis"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	snapshot := snapshotrepository.NewSnapshotRepository(
		config.C.Snapshot.ProfilesPath,
		config.C.Snapshot.PostsPath,
		config.C.Snapshot.SearchPath,
	)
	pipeline := analysis.NewPipeline(snapshot)

	s := scheduler.NewScheduler(pipeline)
	if err := s.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.Stop()
}
