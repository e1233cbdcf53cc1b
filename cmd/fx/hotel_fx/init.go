package hotel_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/services"
	"tripwise/pkg/llm"
	mem "tripwise/pkg/memcache"
)

var Module = fx.Provide(provideSearchCache, provideHotelService)

func provideSearchCache() mem.HotelSearchCache {
	return mem.NewSearchCache()
}

func provideHotelService(client llm.Client, cache mem.HotelSearchCache, cfg llm.Config) services.HotelServiceInterface {
	return services.NewHotelService(client, cache, cfg)
}
