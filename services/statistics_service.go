package services

import (
	"context"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
)

type StatisticsService struct {
	State *store.Store
	API   StatisticsAPI
}

func NewStatisticsService(st *store.Store, stats StatisticsAPI) *StatisticsService {
	return &StatisticsService{State: st, API: stats}
}

// Load fetches kitchen and system statistics for the manager dashboard.
func (s *StatisticsService) Load(ctx context.Context) (store.StatisticsState, error) {
	kitchen, err := s.API.KitchenStatistics(ctx)
	if err != nil {
		s.State.Dispatch(store.StatisticsFailed{Error: api.Message(err, "Failed to load kitchen statistics")})
		return store.StatisticsState{}, fmt.Errorf("kitchen statistics: %w", err)
	}
	system, err := s.API.SystemStatistics(ctx)
	if err != nil {
		s.State.Dispatch(store.StatisticsFailed{Error: api.Message(err, "Failed to load system statistics")})
		return store.StatisticsState{}, fmt.Errorf("system statistics: %w", err)
	}
	s.State.Dispatch(store.StatisticsLoaded{Kitchen: kitchen, System: system})
	return s.State.State().Statistics, nil
}
