/*
handlers.go - HTTP API handlers for the holiday engine

PURPOSE:
  Exposes holiday calendars via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the holiday sets and the custom
  holiday store.

ENDPOINTS:
  Jurisdictions:
    GET    /api/jurisdictions             Registered countries and subdivisions

  Holidays:
    GET    /api/holidays                  Holidays of a calendar in one year
    GET    /api/holidays/check            Is a date a holiday?
    GET    /api/holidays/workdays         Working days in a date range

  Custom holidays:
    GET    /api/custom-holidays           List stored entries
    POST   /api/custom-holidays           Create entry
    DELETE /api/custom-holidays/{id}      Delete entry

CALENDAR PARAMETERS:
  country      repeatable, "CC" or "CC-SUB"; comma-separated lists accepted.
               Several countries give a composite calendar, first listed
               leads merged labels. Absent = configured default calendar.
  subdivision  only with a single country
  observed     true/false, default true
  year         default current year

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: custom holiday persistence
  - Factory: calendar definitions to holiday sets
  - Cached holiday sets per calendar, guarded by a mutex. Requests work on
    a clone so custom holidays never leak into the cache.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Unparseable dates, unknown country or subdivision, bad parameters
  - 404: Custom holiday not found
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/holiday-engine/factory"
	"github.com/warp/holiday-engine/generic"
	"github.com/warp/holiday-engine/metrics"
)

// errInvalidParameter marks malformed query parameters.
var errInvalidParameter = errors.New("invalid parameter")

const (
	// maxJurisdictions bounds the distinct jurisdictions of one calendar.
	maxJurisdictions = 16

	// maxCachedCalendars bounds the calendar cache. Calendars requested
	// once the cache is full are built per request.
	maxCachedCalendars = 256
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    generic.CustomHolidayStore
	Factory  *factory.CalendarFactory
	Defaults factory.CalendarConfig

	logger *zap.Logger

	mu        sync.Mutex
	calendars map[string]*generic.HolidaySet
	maxCached int

	// now is replaced in tests.
	now func() time.Time
}

// NewHandler creates a handler. defaults is the calendar used when a
// request names no country.
func NewHandler(store generic.CustomHolidayStore, defaults factory.CalendarConfig, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:     store,
		Factory:   factory.NewCalendarFactory(logger),
		Defaults:  defaults,
		logger:    logger.Named("api"),
		calendars: make(map[string]*generic.HolidaySet),
		maxCached: maxCachedCalendars,
		now:       time.Now,
	}
}

// calendar returns a private copy of the cached set for cfg with years
// expanded and custom holidays for those years applied.
func (h *Handler) calendar(ctx context.Context, cfg factory.CalendarConfig, years ...int) (*generic.HolidaySet, error) {
	key := cacheKey(cfg)

	h.mu.Lock()
	set, ok := h.calendars[key]
	if !ok {
		built, err := h.Factory.Build(cfg)
		if err != nil {
			h.mu.Unlock()
			return nil, err
		}
		set = built
		metrics.CalendarBuilds.WithLabelValues(set.String()).Inc()
		if len(h.calendars) < h.maxCached {
			h.calendars[key] = set
			metrics.CachedCalendars.Set(float64(len(h.calendars)))
			h.logger.Debug("cached calendar", zap.String("key", key))
		}
	}
	for _, year := range years {
		set.Expand(year)
	}
	view := set.Clone()
	h.mu.Unlock()

	view.SetAutoExpand(false)
	if h.Store != nil {
		for _, year := range years {
			if err := generic.LoadCustomHolidays(ctx, h.Store, view, year); err != nil {
				return nil, err
			}
		}
	}
	return view, nil
}

func cacheKey(cfg factory.CalendarConfig) string {
	parts := make([]string, 0, len(cfg.Jurisdictions))
	for _, j := range cfg.Jurisdictions {
		parts = append(parts, j.Selector().String())
	}
	observed := cfg.Observed == nil || *cfg.Observed
	return strings.Join(parts, "+") + "|observed=" + strconv.FormatBool(observed)
}

// calendarConfig reads the calendar parameters of a request.
func (h *Handler) calendarConfig(r *http.Request) (factory.CalendarConfig, error) {
	q := r.URL.Query()

	var codes []string
	for _, v := range q["country"] {
		for _, code := range strings.Split(v, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
	}

	cfg := factory.CalendarConfig{Observed: h.Defaults.Observed}
	if len(codes) == 0 {
		cfg.Jurisdictions = append([]factory.JurisdictionConfig(nil), h.Defaults.Jurisdictions...)
	} else {
		cfg.Jurisdictions = factory.JurisdictionsFromCodes(codes)
	}

	if sub := strings.TrimSpace(q.Get("subdivision")); sub != "" {
		if len(cfg.Jurisdictions) != 1 {
			return cfg, fmt.Errorf("%w: subdivision requires exactly one country", errInvalidParameter)
		}
		cfg.Jurisdictions[0].Subdivision = sub
	}

	if raw := q.Get("observed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("%w: observed must be true or false", errInvalidParameter)
		}
		cfg.Observed = &v
	}

	resolved, err := canonicalJurisdictions(cfg.Jurisdictions)
	if err != nil {
		return cfg, err
	}
	cfg.Jurisdictions = resolved
	return cfg, nil
}

// canonicalJurisdictions resolves codes and aliases against the registry,
// applies default subdivisions and drops repeats, so that equivalent
// requests share one cache entry. Order is kept: it decides label order.
func canonicalJurisdictions(in []factory.JurisdictionConfig) ([]factory.JurisdictionConfig, error) {
	seen := make(map[generic.Selector]bool, len(in))
	out := make([]factory.JurisdictionConfig, 0, len(in))
	for _, jc := range in {
		sel := jc.Selector()
		j, err := generic.LookupJurisdiction(sel.Country)
		if err != nil {
			return nil, err
		}
		resolved, err := j.Selector(sel.Subdivision)
		if err != nil {
			return nil, err
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, factory.JurisdictionConfig{Country: resolved.Country, Subdivision: resolved.Subdivision})
	}
	if len(out) > maxJurisdictions {
		return nil, fmt.Errorf("%w: at most %d jurisdictions per calendar", errInvalidParameter, maxJurisdictions)
	}
	return out, nil
}

func (h *Handler) year(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return h.now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("%w: year must be between 1 and 9999", errInvalidParameter)
	}
	return year, nil
}

// parseDateParam accepts anything the normalizer does. Strings longer than
// eight digits are Unix timestamps and may carry a fraction.
func parseDateParam(raw string) (generic.Date, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > 8 {
		if secs, err := decimal.NewFromString(raw); err == nil {
			return generic.Normalize(secs)
		}
	}
	return generic.Normalize(raw)
}

// =============================================================================
// JURISDICTION HANDLERS
// =============================================================================

// ListJurisdictions returns every registered jurisdiction.
// GET /api/jurisdictions
func (h *Handler) ListJurisdictions(w http.ResponseWriter, r *http.Request) {
	all := generic.ListJurisdictions()
	dtos := make([]JurisdictionDTO, len(all))
	for i, j := range all {
		dtos[i] = toJurisdictionDTO(j)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the holidays of a calendar in one year.
// GET /api/holidays?country=CA&subdivision=ON&year=2022&observed=true
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.calendarConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid calendar", err)
		return
	}
	year, err := h.year(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	set, err := h.calendar(r.Context(), cfg, year)
	if err != nil {
		h.writeFailure(w, r, "Failed to build calendar", err)
		return
	}

	holidays := set.HolidaysInYear(year)
	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = toHolidayDTO(hol)
	}

	writeJSON(w, http.StatusOK, HolidayListResponse{
		Calendar:  set.String(),
		Countries: set.Countries(),
		Year:      year,
		Observed:  set.Observed(),
		Holidays:  dtos,
	})
}

// CheckHoliday reports whether a date is a holiday.
// GET /api/holidays/check?date=2022-12-26&country=CA
func (h *Handler) CheckHoliday(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Date is required", nil)
		return
	}
	date, err := parseDateParam(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	cfg, err := h.calendarConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid calendar", err)
		return
	}

	// Jan 1 observed days may come from the following year's rules.
	set, err := h.calendar(r.Context(), cfg, date.Year, date.Year+1)
	if err != nil {
		h.writeFailure(w, r, "Failed to build calendar", err)
		return
	}

	resp := CheckResponse{Date: date.String(), Calendar: set.String()}
	if label, ok := set.Lookup(date); ok {
		resp.Holiday = true
		resp.Name = label
		resp.Names = generic.Holiday{Date: date, Name: label}.Names()
		metrics.HolidayChecks.WithLabelValues("holiday").Inc()
	} else {
		metrics.HolidayChecks.WithLabelValues("workday").Inc()
	}
	writeJSON(w, http.StatusOK, resp)
}

// maxWorkdayRange bounds the span of a workdays query in days.
const maxWorkdayRange = 3660

// Workdays lists the working days in an inclusive date range.
// GET /api/holidays/workdays?from=2022-12-19&to=2023-01-06&country=CZ
func (h *Handler) Workdays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		writeError(w, http.StatusBadRequest, "From and to are required", nil)
		return
	}
	from, err := parseDateParam(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date", err)
		return
	}
	to, err := parseDateParam(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date", err)
		return
	}
	if from.After(to) || to.After(from.AddDays(maxWorkdayRange)) {
		writeError(w, http.StatusBadRequest, "Invalid range",
			fmt.Errorf("%w: from must not be after to and the range is limited to %d days", errInvalidParameter, maxWorkdayRange))
		return
	}
	cfg, err := h.calendarConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid calendar", err)
		return
	}

	years := make([]int, 0, to.Year-from.Year+2)
	for year := from.Year; year <= to.Year+1; year++ {
		years = append(years, year)
	}
	set, err := h.calendar(r.Context(), cfg, years...)
	if err != nil {
		h.writeFailure(w, r, "Failed to build calendar", err)
		return
	}

	days := set.Workdays(generic.Period{Start: from, End: to})
	resp := WorkdaysResponse{
		Calendar: set.String(),
		From:     from.String(),
		To:       to.String(),
		Count:    len(days),
		Workdays: make([]string, len(days)),
	}
	for i, d := range days {
		resp.Workdays[i] = d.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// CUSTOM HOLIDAY HANDLERS
// =============================================================================

// ListCustomHolidays returns stored custom holidays for a country plus the
// global ones. With year, recurring entries are rebased onto it.
// GET /api/custom-holidays?country=CZ&year=2025
func (h *Handler) ListCustomHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country")))

	var (
		holidays []generic.CustomHoliday
		err      error
	)
	if r.URL.Query().Get("year") != "" {
		year, yerr := h.year(r)
		if yerr != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", yerr)
			return
		}
		holidays, err = h.Store.ListCustomHolidays(ctx, country, year)
	} else {
		holidays, err = h.Store.AllCustomHolidays(ctx, country)
	}
	if err != nil {
		h.writeFailure(w, r, "Failed to list custom holidays", err)
		return
	}

	dtos := make([]CustomHolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = toCustomHolidayDTO(hol)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateCustomHoliday stores a custom holiday.
// POST /api/custom-holidays
func (h *Handler) CreateCustomHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Date == "" || strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}

	date, err := generic.Normalize(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country != "" {
		j, err := generic.LookupJurisdiction(country)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown country", err)
			return
		}
		country = j.Code
	}

	holiday := generic.CustomHoliday{
		ID:        req.ID,
		Country:   country,
		Date:      date,
		Name:      strings.TrimSpace(req.Name),
		Recurring: req.Recurring,
	}
	if holiday.ID == "" {
		holiday.ID = fmt.Sprintf("holiday-%d", h.now().UnixNano())
	}

	if err := h.Store.SaveCustomHoliday(r.Context(), holiday); err != nil {
		h.writeFailure(w, r, "Failed to save custom holiday", err)
		return
	}
	metrics.CustomHolidayWrites.WithLabelValues("save").Inc()

	h.logger.Info("created custom holiday",
		zap.String("id", holiday.ID),
		zap.String("country", holiday.Country),
		zap.Stringer("date", holiday.Date),
		zap.String("request_id", middleware.GetReqID(r.Context())))
	writeJSON(w, http.StatusCreated, toCustomHolidayDTO(holiday))
}

// DeleteCustomHoliday removes a custom holiday.
// DELETE /api/custom-holidays/{id}
func (h *Handler) DeleteCustomHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteCustomHoliday(r.Context(), id); err != nil {
		h.writeFailure(w, r, "Failed to delete custom holiday", err)
		return
	}
	metrics.CustomHolidayWrites.WithLabelValues("delete").Inc()

	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted", "id": id})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeFailure maps an engine or store error to its HTTP status.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(message,
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	}
	writeError(w, status, message, err)
}

func statusFor(err error) int {
	switch {
	case generic.IsClientError(err),
		errors.Is(err, factory.ErrNoJurisdictions),
		errors.Is(err, errInvalidParameter):
		return http.StatusBadRequest
	case generic.IsNotFound(err):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
