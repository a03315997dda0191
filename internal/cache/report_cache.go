package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
)

const (
	megabyte = 1024 * 1024
	// freecache rejects entries larger than 1/1024 of its size
	minCacheSizeMB = 4
	// reports age with the calendar, so they are not kept forever
	reportCacheExpire = 60 * 60 // seconds
)

// ReportCache keeps computed client metric reports, keyed by trainer, client
// and calendar day. Every (trainer, client) pair carries a generation that
// Invalidate bumps; a report computed under an older generation is never
// stored, and entries of older generations become unreachable.
type ReportCache struct {
	cache *freecache.Cache

	mu          sync.Mutex
	generations map[string]uint64
}

func NewReportCache(sizeMB int) *ReportCache {
	if sizeMB < minCacheSizeMB {
		sizeMB = minCacheSizeMB
	}
	return &ReportCache{
		cache:       freecache.NewCache(sizeMB * megabyte),
		generations: make(map[string]uint64),
	}
}

// Generation returns the current generation of the client's reports. Read it
// before loading the data a report is built from and pass it to Set.
func (c *ReportCache) Generation(trainerID int64, clientID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[clientKey(trainerID, clientID)]
}

// Get returns the report cached for the day of now.
func (c *ReportCache) Get(trainerID int64, clientID string, now time.Time) (*domain.MetricsReport, bool) {
	c.mu.Lock()
	key := reportKey(trainerID, clientID, c.generations[clientKey(trainerID, clientID)], now)
	c.mu.Unlock()

	reportBytes, err := c.cache.Get(key)
	if err != nil {
		return nil, false
	}

	report := &domain.MetricsReport{}
	if err := json.Unmarshal(reportBytes, report); err != nil {
		log.Errorf("failed to unmarshal cached report for client %s: %s", clientID, err)
		c.cache.Del(key)
		return nil, false
	}
	return report, true
}

// Set stores the report for the day of now unless the client was invalidated
// after generation was read. It reports whether the report was stored.
func (c *ReportCache) Set(trainerID int64, generation uint64, now time.Time, report *domain.MetricsReport) bool {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal report for client %s: %s", report.ClientID, err)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[clientKey(trainerID, report.ClientID)] != generation {
		log.Debugf("report for client %s changed while computing, not cached", report.ClientID)
		return false
	}
	if err := c.cache.Set(reportKey(trainerID, report.ClientID, generation, now), reportBytes, reportCacheExpire); err != nil {
		log.Errorf("failed to cache report for client %s: %s", report.ClientID, err)
		return false
	}
	return true
}

func (c *ReportCache) Invalidate(trainerID int64, clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[clientKey(trainerID, clientID)]++
}

func (c *ReportCache) EntryCount() int64 {
	return c.cache.EntryCount()
}

func clientKey(trainerID int64, clientID string) string {
	return fmt.Sprintf("%d::%s", trainerID, clientID)
}

func reportKey(trainerID int64, clientID string, generation uint64, now time.Time) []byte {
	return []byte(fmt.Sprintf("report::%d::%s::%d::%s", trainerID, clientID, generation, now.Format(domain.DateLayout)))
}
