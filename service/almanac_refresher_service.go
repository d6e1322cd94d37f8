package services

import (
	"log"
	"time"

	redisdao "astrocal-server/dao/redis"
	"astrocal-server/models"
)

// AlmanacRefresherService keeps today's almanac warm in the redis
// cache so the common request is a cache hit.
type AlmanacRefresherService struct {
	almanacService *AlmanacService
	almanacDao     *redisdao.RedisAlmanacDAO
	loc            *time.Location
}

// NewAlmanacRefresherService constructs a new refresher with dependencies.
func NewAlmanacRefresherService(
	almanacService *AlmanacService,
	almanacDao *redisdao.RedisAlmanacDAO,
	loc *time.Location,
) *AlmanacRefresherService {
	return &AlmanacRefresherService{
		almanacService: almanacService,
		almanacDao:     almanacDao,
		loc:            loc,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (ar *AlmanacRefresherService) StartPeriodicJob(interval time.Duration) {
	go ar.startPeriodicJob(interval)
}

func (ar *AlmanacRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[AlmanacRefresherService] Running periodic almanac refresh job.")
		if err := ar.RefreshTodayAlmanac(); err != nil {
			log.Printf("[AlmanacRefresherService] RefreshTodayAlmanac returned error: %v", err)
		} else {
			log.Println("[AlmanacRefresherService] RefreshTodayAlmanac completed successfully.")
		}
	}
}

// RefreshTodayAlmanac recomputes today's almanac and caches it.
func (ar *AlmanacRefresherService) RefreshTodayAlmanac() error {
	today := models.NewSelectedDate(time.Now().In(ar.loc))
	almanac := ar.almanacService.ComputeAlmanac(today)
	if err := ar.almanacDao.SetAlmanac(almanac); err != nil {
		return err
	}
	log.Printf("[AlmanacRefresherService] Cached almanac for %s", today.ISO())
	return nil
}
