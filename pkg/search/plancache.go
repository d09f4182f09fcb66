package search

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railscout/railscout/pkg/redis_client"
	"github.com/railscout/railscout/pkg/timetable"
)

// PlanCache keeps recent multi-leg search results in redis. Timetables only
// change on an import, so a short expiry is plenty. Every failure path falls
// through to a live search.
type PlanCache struct {
	Cache *cache.Cache[string]
}

func (planCache *PlanCache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(15*time.Minute))

	planCache.Cache = cache.New[string](redisStore)
}

func (planCache *PlanCache) Get(query Query, options PlanOptions) []timetable.Itinerary {
	if planCache.Cache == nil {
		return nil
	}

	cacheValue, err := planCache.Cache.Get(context.Background(), planCacheKey(query, options))
	if err != nil {
		return nil
	}

	var itineraries []timetable.Itinerary
	if json.Unmarshal([]byte(cacheValue), &itineraries) != nil {
		return nil
	}

	return itineraries
}

func (planCache *PlanCache) Set(query Query, options PlanOptions, itineraries []timetable.Itinerary) {
	if planCache.Cache == nil {
		return
	}

	itinerariesJSON, err := json.Marshal(itineraries)
	if err != nil {
		return
	}

	planCache.Cache.Set(context.Background(), planCacheKey(query, options), string(itinerariesJSON))
}

func planCacheKey(query Query, options PlanOptions) string {
	maxPrice := ""
	if query.MaxPrice != nil {
		maxPrice = fmt.Sprint(*query.MaxPrice)
	}

	fields := []string{
		query.FromCity, query.ToCity,
		query.DepartureAfter, query.DepartureBefore,
		query.ArrivalAfter, query.ArrivalBefore,
		query.TrainType,
		strings.Join(query.Days, ","),
		string(query.PriceClass), maxPrice,
		string(query.SortBy), string(query.SortDir),
		fmt.Sprint(options.MaxTransfers), fmt.Sprint(options.MaxResults),
	}

	digest := sha256.Sum256([]byte(strings.Join(fields, "|")))

	return fmt.Sprintf("RAILSCOUT:PLAN:%x", digest)
}
