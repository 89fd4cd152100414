/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the holiday engine's types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Jurisdictions:
    JurisdictionDTO

  Holidays:
    HolidayDTO, HolidayListResponse, CheckResponse, WorkdaysResponse

  Custom holidays:
    CustomHolidayDTO, CreateCustomHolidayRequest

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// JurisdictionDTO describes a registered jurisdiction.
type JurisdictionDTO struct {
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	Aliases            []string `json:"aliases,omitempty"`
	Subdivisions       []string `json:"subdivisions,omitempty"`
	DefaultSubdivision string   `json:"default_subdivision,omitempty"`
}

// HolidayDTO is one holiday date. Names splits a merged label.
type HolidayDTO struct {
	Date    string   `json:"date"`
	Name    string   `json:"name"`
	Names   []string `json:"names"`
	Weekday string   `json:"weekday"`
}

// HolidayListResponse lists the holidays of a calendar in one year.
type HolidayListResponse struct {
	Calendar  string       `json:"calendar"`
	Countries []string     `json:"countries"`
	Year      int          `json:"year"`
	Observed  bool         `json:"observed"`
	Holidays  []HolidayDTO `json:"holidays"`
}

// CheckResponse answers whether a date is a holiday.
type CheckResponse struct {
	Date     string   `json:"date"`
	Calendar string   `json:"calendar"`
	Holiday  bool     `json:"holiday"`
	Name     string   `json:"name,omitempty"`
	Names    []string `json:"names,omitempty"`
}

// WorkdaysResponse lists the working days of a range.
type WorkdaysResponse struct {
	Calendar string   `json:"calendar"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Count    int      `json:"count"`
	Workdays []string `json:"workdays"`
}

// CustomHolidayDTO represents a stored custom holiday.
type CustomHolidayDTO struct {
	ID        string `json:"id"`
	Country   string `json:"country"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

// CreateCustomHolidayRequest is the request to create a custom holiday.
type CreateCustomHolidayRequest struct {
	ID        string `json:"id,omitempty"`
	Country   string `json:"country"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

// ErrorResponse is the response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toHolidayDTO(h generic.Holiday) HolidayDTO {
	return HolidayDTO{
		Date:    h.Date.String(),
		Name:    h.Name,
		Names:   h.Names(),
		Weekday: h.Date.Weekday().String(),
	}
}

func toCustomHolidayDTO(h generic.CustomHoliday) CustomHolidayDTO {
	return CustomHolidayDTO{
		ID:        h.ID,
		Country:   h.Country,
		Date:      h.Date.String(),
		Name:      h.Name,
		Recurring: h.Recurring,
	}
}

func toJurisdictionDTO(j generic.Jurisdiction) JurisdictionDTO {
	return JurisdictionDTO{
		Code:               j.Code,
		Name:               j.Name,
		Aliases:            j.Aliases,
		Subdivisions:       j.Subdivisions,
		DefaultSubdivision: j.DefaultSubdivision,
	}
}
