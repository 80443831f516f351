package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"social-insights-backend/config"
	"social-insights-backend/pkg/adapter/controller"
	"social-insights-backend/pkg/adapter/repository/snapshotrepository"
	"social-insights-backend/pkg/registry"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	ctrl := newController()

	ctx := context.Background()
	result, summary, err := ctrl.Analysis.Run(ctx)
	if err != nil {
		log.Fatalf("analysis run failed: %v", err)
	}

	top, highlight, err := ctrl.Analysis.TopProfiles(
		result,
		"engagementRate",
		config.C.Analysis.TopN,
		config.C.Analysis.HighlightUser,
	)
	if err != nil {
		log.Fatalf("failed to rank profiles: %v", err)
	}

	topRows := make([]map[string]interface{}, 0, len(top))
	for i, row := range top {
		topRows = append(topRows, map[string]interface{}{
			"username":       row.Username,
			"engagementRate": row.EngagementRate,
			"highlighted":    i == highlight,
		})
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	if err := out.Encode(map[string]interface{}{
		"tables":      result.Tables(),
		"topProfiles": topRows,
	}); err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}

	fmt.Fprintf(
		os.Stderr,
		"Analysis run completed. Run ID: %s, status: %s, profiles: %d, posts: %d, duration: %ds\n",
		summary.RunID,
		summary.Status,
		summary.ProfileCount,
		summary.PostCount,
		summary.DurationSeconds,
	)
}

func newController() controller.Controller {
	snapshot := snapshotrepository.NewSnapshotRepository(
		config.C.Snapshot.ProfilesPath,
		config.C.Snapshot.PostsPath,
		config.C.Snapshot.SearchPath,
	)
	r := registry.New(snapshot)
	return r.NewController()
}
