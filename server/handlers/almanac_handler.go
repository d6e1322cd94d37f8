package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"astrocal-server/astro"
	"astrocal-server/calendar"
	"astrocal-server/config"
	"astrocal-server/models"
	services "astrocal-server/service"
	"astrocal-server/state"
	"astrocal-server/util"
)

const (
	YEAR_QUERY_ARG  = "year"
	MONTH_QUERY_ARG = "month"
	DAY_QUERY_ARG   = "day"  // a click on a day of the displayed month
	DATE_QUERY_ARG  = "date" // deep link: day number or yyyy-mm-dd
)

// AlmanacResponse is the payload for GET /v1/almanac.
type AlmanacResponse struct {
	Calendar models.CalendarGrid `json:"calendar"`
	Selected models.SelectedDate `json:"selected"`
	Almanac  *models.Almanac     `json:"almanac"`
}

// AlmanacHandler serves the calendar grid and astronomy data for the
// session's resolved date.
type AlmanacHandler struct {
	controller     *state.Controller
	almanacService *services.AlmanacService
	astronomyApi   astro.AstronomyAPI
	now            func() time.Time
}

// NewAlmanacHandler constructs an AlmanacHandler.
func NewAlmanacHandler(
	controller *state.Controller,
	almanacService *services.AlmanacService,
	astronomyApi astro.AstronomyAPI) *AlmanacHandler {

	return &AlmanacHandler{
		controller:     controller,
		almanacService: almanacService,
		astronomyApi:   astronomyApi,
		now:            func() time.Time { return time.Now().In(config.ObserverLocation()) },
	}
}

// GetAlmanac handles GET /v1/almanac.
func (h *AlmanacHandler) GetAlmanac(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	year, month, ok := h.parseDisplayedMonth(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Build the grid for the displayed month
	grid, err := calendar.GenerateGrid(year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 3) Resolve the selected date; bad day/date values are discarded
	// by the controller, never an error.
	sessionID := h.sessionID(w, r)
	clickDay := parseArgInt(r.URL.Query(), DAY_QUERY_ARG)
	deepLink := r.URL.Query().Get(DATE_QUERY_ARG)
	selected := h.controller.ResolveForSession(sessionID, year, month, deepLink, clickDay)

	// 4) Query astronomy for the resolved date
	almanac := h.almanacService.ComputeAlmanacCached(selected)

	// 5) Write JSON
	writeJSON(w, AlmanacResponse{
		Calendar: grid,
		Selected: selected,
		Almanac:  almanac,
	})
}

// GetCalendarGrid handles GET /v1/calendar/grid.
func (h *AlmanacHandler) GetCalendarGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseDisplayedMonth(r.URL.Query(), w)
	if !ok {
		return
	}
	grid, err := calendar.GenerateGrid(year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, grid)
}

// GetMoonIlluminationChart handles GET /v1/charts/moon-illumination,
// rendering an HTML line chart of the lit fraction across the month.
func (h *AlmanacHandler) GetMoonIlluminationChart(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseDisplayedMonth(r.URL.Query(), w)
	if !ok {
		return
	}
	if _, err := calendar.GenerateGrid(year, month); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	days := models.DaysInMonth(year, month)
	values := make([]float64, 0, days)
	for day := 1; day <= days; day++ {
		ill, err := h.astronomyApi.GetMoonIllumination(models.SelectedDate{Year: year, Month: month, Day: day})
		if err != nil {
			log.Println("Error computing moon illumination:", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		values = append(values, ill.Percent)
	}

	title := calendar.MonthName(month) + " " + strconv.Itoa(year)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderMoonIlluminationChart(w, title, values); err != nil {
		log.Println("Error rendering moon chart:", err)
	}
}

// Ping handles GET /ping
func (h *AlmanacHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// parseDisplayedMonth reads year/month, defaulting to the current
// month at the observer site when absent. Malformed numbers are a 400;
// range checks happen in the grid generator.
func (h *AlmanacHandler) parseDisplayedMonth(vals url.Values, w http.ResponseWriter) (year, month int, ok bool) {
	now := h.now()
	year, month = now.Year(), int(now.Month())

	if s := vals.Get(YEAR_QUERY_ARG); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Invalid argument "+YEAR_QUERY_ARG, http.StatusBadRequest)
			return 0, 0, false
		}
		year = v
	}
	if s := vals.Get(MONTH_QUERY_ARG); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Invalid argument "+MONTH_QUERY_ARG, http.StatusBadRequest)
			return 0, 0, false
		}
		month = v
	}
	return year, month, true
}

// sessionID returns the request's session ID, minting a cookie when
// the browser does not have one yet.
func (h *AlmanacHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(config.SESSION_COOKIE_NAME); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("Error generating session id:", err)
		return "fallback-session"
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     config.SESSION_COOKIE_NAME,
		Value:    id,
		Path:     "/",
		MaxAge:   int(config.SESSION_TTL.Seconds()),
		HttpOnly: true,
	})
	return id
}

func parseArgInt(vals url.Values, name string) int {
	s := vals.Get(name)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
