package config

import (
	"os"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Observer site: Kodaikanal Solar Observatory, India.
const OBSERVER_NAME = "Kodaikanal"
const OBSERVER_LATITUDE = 10.0 + 13.0/60.0 + 50.0/3600.0
const OBSERVER_LONGITUDE = 77.0 + 28.0/60.0 + 7.0/3600.0
const OBSERVER_ELEVATION_M = 2133.0
const OBSERVER_TIMEZONE = "Asia/Kolkata"

// Supported calendar range
const MIN_SUPPORTED_YEAR = 1900
const MAX_SUPPORTED_YEAR = 2100

// Server config
const HTTP_SERVER_ADDRESS = ":8080"
const SESSION_COOKIE_NAME = "astrocal_session"

// Session selected-date keys live this long without activity.
const SESSION_TTL = 24 * time.Hour

// Almanac refresher config
const ALMANAC_REFRESHER_SCHEDULE_MINUTES = 30
const ALMANAC_CACHE_TTL = time.Hour

// observerLocation is resolved once; Asia/Kolkata is a fixed +05:30
// zone so the fallback keeps the service usable without tzdata.
var observerLocation *time.Location

func init() {
	loc, err := time.LoadLocation(OBSERVER_TIMEZONE)
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	observerLocation = loc
}

// ObserverLocation returns the time.Location of the observer site.
func ObserverLocation() *time.Location {
	return observerLocation
}

// RedisAddress returns the redis address, honoring the REDIS_ADDRESS
// environment variable when set.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}
