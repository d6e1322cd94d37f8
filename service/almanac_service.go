package services

import (
	"log"
	"time"

	"astrocal-server/astro"
	redisdao "astrocal-server/dao/redis"
	"astrocal-server/models"
)

const NOT_VISIBLE = "N/A"

// AlmanacService runs one render pass worth of astronomy queries for a
// resolved date and formats the results in the observer's local zone.
type AlmanacService struct {
	astronomyApi astro.AstronomyAPI
	almanacDao   *redisdao.RedisAlmanacDAO
	loc          *time.Location
	now          func() time.Time
}

// NewAlmanacService constructs an AlmanacService. almanacDao may be
// nil, which disables the cache path.
func NewAlmanacService(
	astronomyApi astro.AstronomyAPI,
	almanacDao *redisdao.RedisAlmanacDAO,
	loc *time.Location) *AlmanacService {

	return &AlmanacService{
		astronomyApi: astronomyApi,
		almanacDao:   almanacDao,
		loc:          loc,
		now:          time.Now,
	}
}

// to12h formats an instant as local 12-hour wall-clock time.
func (as *AlmanacService) to12h(t time.Time) string {
	return t.In(as.loc).Format("03:04 PM")
}

func (as *AlmanacService) formatEvent(t time.Time, has bool) string {
	if !has {
		return NOT_VISIBLE
	}
	return as.to12h(t)
}

// ComputeAlmanac queries every section for the date. A failing section
// carries its own error and the others still render; a missing
// rise/set/transit renders as N/A.
func (as *AlmanacService) ComputeAlmanac(date models.SelectedDate) *models.Almanac {
	almanac := &models.Almanac{
		Header: "Astronomy Data for " + date.LongForm(),
		Date:   date,
	}

	as.fillSun(almanac, date)
	as.fillMoon(almanac, date)
	as.fillPlanets(almanac, date)

	return almanac
}

// ComputeAlmanacCached serves today's almanac from the redis cache
// when it is warm (the refresher keeps it so), computing and caching
// on a miss. Other dates are always computed fresh.
func (as *AlmanacService) ComputeAlmanacCached(date models.SelectedDate) *models.Almanac {
	if as.almanacDao == nil || date != models.NewSelectedDate(as.now().In(as.loc)) {
		return as.ComputeAlmanac(date)
	}

	cached, err := as.almanacDao.GetAlmanac(date)
	if err != nil {
		log.Printf("[AlmanacService] Cache lookup failed for %s: %v", date.ISO(), err)
	}
	if cached != nil {
		return cached
	}

	almanac := as.ComputeAlmanac(date)
	if err := as.almanacDao.SetAlmanac(almanac); err != nil {
		log.Printf("[AlmanacService] Failed to cache almanac for %s: %v", date.ISO(), err)
	}
	return almanac
}

func (as *AlmanacService) fillSun(almanac *models.Almanac, date models.SelectedDate) {
	sun, err := as.astronomyApi.GetSunTimes(date)
	if err != nil {
		log.Printf("[AlmanacService] Sun query failed for %s: %v", date.ISO(), err)
		almanac.Sun = models.SunSection{
			Sunrise:   NOT_VISIBLE,
			Sunset:    NOT_VISIBLE,
			SolarNoon: NOT_VISIBLE,
			Error:     "sun data unavailable",
		}
		return
	}
	almanac.Sun = models.SunSection{
		Sunrise:   as.to12h(sun.Sunrise),
		Sunset:    as.to12h(sun.Sunset),
		SolarNoon: as.to12h(sun.SolarNoon),
	}
}

func (as *AlmanacService) fillMoon(almanac *models.Almanac, date models.SelectedDate) {
	section := models.MoonSection{
		Rise:    NOT_VISIBLE,
		Set:     NOT_VISIBLE,
		Transit: NOT_VISIBLE,
	}

	ill, err := as.astronomyApi.GetMoonIllumination(date)
	if err != nil {
		log.Printf("[AlmanacService] Moon illumination query failed for %s: %v", date.ISO(), err)
		section.Error = "moon data unavailable"
		almanac.Moon = section
		return
	}
	section.IlluminationPct = ill.Percent
	section.PhaseName = astro.DescribeMoonPhase(ill.Percent, ill.Waxing)

	events, err := as.astronomyApi.GetBodyEvents(date, astro.BodyMoon)
	if err != nil {
		log.Printf("[AlmanacService] Moon events query failed for %s: %v", date.ISO(), err)
		section.Error = "moon data unavailable"
		almanac.Moon = section
		return
	}
	section.Rise = as.formatEvent(events.Rise, events.HasRise)
	section.Set = as.formatEvent(events.Set, events.HasSet)
	section.Transit = as.formatEvent(events.Transit, events.HasTransit)

	almanac.Moon = section
}

func (as *AlmanacService) fillPlanets(almanac *models.Almanac, date models.SelectedDate) {
	rows := make([]models.PlanetRow, 0, len(astro.Planets))
	for _, body := range astro.Planets {
		row := models.PlanetRow{
			Body:    string(body),
			Rise:    NOT_VISIBLE,
			Set:     NOT_VISIBLE,
			Transit: NOT_VISIBLE,
		}
		events, err := as.astronomyApi.GetBodyEvents(date, body)
		if err != nil {
			log.Printf("[AlmanacService] %s query failed for %s: %v", body, date.ISO(), err)
			row.Error = "planet data unavailable"
		} else {
			row.Rise = as.formatEvent(events.Rise, events.HasRise)
			row.Set = as.formatEvent(events.Set, events.HasSet)
			row.Transit = as.formatEvent(events.Transit, events.HasTransit)
		}
		rows = append(rows, row)
	}
	almanac.Planets = rows
}
