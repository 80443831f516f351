package scheduler

import (
	"context"
	"fmt"
	"log"

	"social-insights-backend/config"
	"social-insights-backend/pkg/usecase/usecase/analysis"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs
type Scheduler struct {
	cron     *cron.Cron
	pipeline *analysis.Pipeline
	entryIDs map[string]cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(pipeline *analysis.Pipeline) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		pipeline: pipeline,
		entryIDs: make(map[string]cron.EntryID),
	}
}

// Start registers and starts all cron jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	schedule := config.C.Cron.AnalysisSchedule
	if schedule == "" {
		return fmt.Errorf("no analysis schedule configured")
	}

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runAnalysisJob(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	s.entryIDs["analysis"] = entryID
	log.Printf("Registered job: analysis with schedule: %s", schedule)

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop stops the cron scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	cronCtx := s.cron.Stop()
	<-cronCtx.Done()
	log.Println("Cron scheduler stopped")
}

// runAnalysisJob executes one scheduled analysis run
func (s *Scheduler) runAnalysisJob(ctx context.Context) {
	log.Println("Running analysis job...")

	_, summary, err := s.pipeline.Run(ctx)
	if err != nil {
		log.Printf("Analysis job failed: %v", err)
		return
	}

	log.Printf("Analysis job completed: run=%s profiles=%d posts=%d duration=%ds",
		summary.RunID, summary.ProfileCount, summary.PostCount, summary.DurationSeconds)
}
