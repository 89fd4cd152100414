// Package store provides CustomHolidayStore implementations.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	holidays map[string]generic.CustomHoliday
	unique   map[key]string
}

// key mirrors the (country, date, name) uniqueness of the SQL schema.
type key struct {
	Country string
	Date    generic.Date
	Name    string
}

func NewMemory() *Memory {
	return &Memory{
		holidays: make(map[string]generic.CustomHoliday),
		unique:   make(map[key]string),
	}
}

// SaveCustomHoliday upserts an entry. An entry with the same
// (country, date, name) as an existing one replaces it.
func (m *Memory) SaveCustomHoliday(_ context.Context, h generic.CustomHoliday) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h.Country = strings.ToUpper(h.Country)
	k := key{Country: h.Country, Date: h.Date, Name: h.Name}
	if existingID, ok := m.unique[k]; ok && existingID != h.ID {
		delete(m.holidays, existingID)
	}
	if old, ok := m.holidays[h.ID]; ok {
		delete(m.unique, key{Country: old.Country, Date: old.Date, Name: old.Name})
	}
	m.holidays[h.ID] = h
	m.unique[k] = h.ID
	return nil
}

func (m *Memory) DeleteCustomHoliday(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.holidays[id]
	if !ok {
		return generic.ErrNotFound
	}
	delete(m.holidays, id)
	delete(m.unique, key{Country: h.Country, Date: h.Date, Name: h.Name})
	return nil
}

func (m *Memory) ListCustomHolidays(_ context.Context, country string, year int) ([]generic.CustomHoliday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []generic.CustomHoliday
	for _, h := range m.scoped(country) {
		if d, ok := h.In(year); ok {
			h.Date = d
			result = append(result, h)
		}
	}
	sortCustom(result)
	return result, nil
}

func (m *Memory) AllCustomHolidays(_ context.Context, country string) ([]generic.CustomHoliday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := m.scoped(country)
	sortCustom(result)
	return result, nil
}

func (m *Memory) scoped(country string) []generic.CustomHoliday {
	var result []generic.CustomHoliday
	for _, h := range m.holidays {
		if h.Country == "" || strings.EqualFold(h.Country, country) {
			result = append(result, h)
		}
	}
	return result
}

func sortCustom(hs []generic.CustomHoliday) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].Date != hs[j].Date {
			return hs[i].Date.Before(hs[j].Date)
		}
		return hs[i].ID < hs[j].ID
	})
}
