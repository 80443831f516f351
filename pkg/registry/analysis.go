package registry

import (
	"social-insights-backend/pkg/adapter/controller"
	"social-insights-backend/pkg/usecase/usecase/analysis"
)

func (r *registry) NewAnalysisController() controller.Analysis {
	return controller.NewAnalysisController(analysis.NewPipeline(r.snapshot))
}
