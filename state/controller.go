package state

import (
	"log"
	"strconv"
	"time"

	redisdao "astrocal-server/dao/redis"
	"astrocal-server/models"
)

// Resolve determines the authoritative selected date for one render.
//
// Inputs that can all be present on the same render are ranked:
//  1. a click on a day of the displayed month;
//  2. a deep-link parameter, honored only when the session has no
//     prior selection;
//  3. a displayed (year, month) that no longer matches the prior
//     selection, which resets to today (when the displayed pair is the
//     real current month) or day 1;
//  4. no prior state at all, same default as 3;
//  5. otherwise the prior selection stands.
//
// Invalid input from any source (day out of range, malformed deep
// link) is silently discarded and the next rule applies; the returned
// date is always a valid day of the displayed month.
func Resolve(prev *models.SelectedDate, dispYear, dispMonth int, deepLink string, clickDay int, now time.Time) models.SelectedDate {
	daysInMonth := models.DaysInMonth(dispYear, dispMonth)

	if clickDay >= 1 && clickDay <= daysInMonth {
		return models.SelectedDate{Year: dispYear, Month: dispMonth, Day: clickDay}
	}

	// A stored date that is corrupt or impossible counts as no state.
	if prev != nil && !prev.Valid() {
		prev = nil
	}

	if prev == nil {
		if day, ok := parseDeepLink(deepLink, dispYear, dispMonth, daysInMonth); ok {
			return models.SelectedDate{Year: dispYear, Month: dispMonth, Day: day}
		}
		return defaultFor(dispYear, dispMonth, now)
	}

	if prev.Year != dispYear || prev.Month != dispMonth {
		return defaultFor(dispYear, dispMonth, now)
	}

	return *prev
}

// parseDeepLink accepts either a bare day number ("5") or an ISO date
// ("2025-04-05"); an ISO date must fall inside the displayed month.
func parseDeepLink(param string, dispYear, dispMonth, daysInMonth int) (int, bool) {
	if param == "" {
		return 0, false
	}
	if day, err := strconv.Atoi(param); err == nil {
		if day >= 1 && day <= daysInMonth {
			return day, true
		}
		return 0, false
	}
	t, err := time.Parse("2006-01-02", param)
	if err != nil {
		return 0, false
	}
	if t.Year() != dispYear || int(t.Month()) != dispMonth {
		return 0, false
	}
	return t.Day(), true
}

func defaultFor(dispYear, dispMonth int, now time.Time) models.SelectedDate {
	if dispYear == now.Year() && dispMonth == int(now.Month()) {
		return models.SelectedDate{Year: dispYear, Month: dispMonth, Day: now.Day()}
	}
	return models.SelectedDate{Year: dispYear, Month: dispMonth, Day: 1}
}

// Controller resolves selected dates and keeps them durable in the
// session store between renders.
type Controller struct {
	sessionDao *redisdao.RedisSessionDAO
	now        func() time.Time
}

// Option configures the Controller.
type Option func(*Controller)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController constructs a Controller backed by the session DAO.
func NewController(sessionDao *redisdao.RedisSessionDAO, opts ...Option) *Controller {
	c := &Controller{
		sessionDao: sessionDao,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveForSession loads the session's prior selection, resolves the
// new one, and writes it back so the next render with no new events
// returns the same date. Store failures degrade to stateless
// resolution rather than failing the render.
func (c *Controller) ResolveForSession(sessionID string, dispYear, dispMonth int, deepLink string, clickDay int) models.SelectedDate {
	prev, err := c.sessionDao.GetSelectedDate(sessionID)
	if err != nil {
		log.Printf("[Controller] Failed to load session %s, resolving without prior state: %v", sessionID, err)
		prev = nil
	}

	resolved := Resolve(prev, dispYear, dispMonth, deepLink, clickDay, c.now())

	if err := c.sessionDao.SetSelectedDate(sessionID, resolved); err != nil {
		log.Printf("[Controller] Failed to persist %s for session %s: %v", resolved.ToString(), sessionID, err)
	}

	return resolved
}
