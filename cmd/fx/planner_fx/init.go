package planner_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/services"
	"tripwise/pkg/llm"
)

var Module = fx.Provide(providePromptService, providePlannerService)

func providePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func providePlannerService(client llm.Client, prompts services.PromptServiceInterface, cfg llm.Config) services.PlannerServiceInterface {
	return services.NewPlannerService(client, prompts, cfg)
}
