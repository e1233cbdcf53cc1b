package llm_fx

import (
	"go.uber.org/fx"

	"tripwise/pkg/llm"
)

var Module = fx.Provide(provideConfig, provideClient)

func provideConfig() llm.Config {
	return llm.LoadConfig()
}

func provideClient(cfg llm.Config) (llm.Client, error) {
	return llm.NewClient(cfg)
}
