package registry

import (
	"social-insights-backend/pkg/adapter/controller"
	"social-insights-backend/pkg/usecase/repository"
)

type registry struct {
	snapshot repository.Snapshot
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// New registers entire controller with dependencies
func New(snapshot repository.Snapshot) Registry {
	return &registry{snapshot: snapshot}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Analysis: r.NewAnalysisController(),
	}
}
