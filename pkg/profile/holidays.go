package profile

import (
	"fmt"
	"sort"
	"time"
)

// Holiday is a named date.
type Holiday struct {
	Date string
	Name string
}

var nationalHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Confraternização Universal"},
	{time.April, 21, "Tiradentes"},
	{time.May, 1, "Dia do Trabalho"},
	{time.September, 7, "Independência do Brasil"},
	{time.October, 12, "Nossa Senhora Aparecida"},
	{time.November, 2, "Finados"},
	{time.November, 15, "Proclamação da República"},
	{time.November, 20, "Dia Nacional de Zumbi e da Consciência Negra"},
	{time.December, 25, "Natal"},
}

// NationalHolidays lists the fixed-date Brazilian national holidays of year.
func NationalHolidays(year int) []Holiday {
	out := make([]Holiday, 0, len(nationalHolidays))
	for _, h := range nationalHolidays {
		date := time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC)
		out = append(out, Holiday{Date: date.Format(DateLayout), Name: h.name})
	}
	return out
}

// DateLayout is the format of holiday dates.
const DateLayout = "2006-01-02"

// AddHoliday adds one date, ignoring duplicates. It returns whether the
// list changed.
func (h *BusinessHours) AddHoliday(date string) (bool, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return false, fmt.Errorf("profile: holiday %q: %w", date, err)
	}
	for _, existing := range h.Holidays {
		if existing == date {
			return false, nil
		}
	}
	h.Holidays = append(h.Holidays, date)
	sort.Strings(h.Holidays)
	return true, nil
}

// AddNationalHolidays merges the national holidays of year and returns
// how many were new.
func (h *BusinessHours) AddNationalHolidays(year int) int {
	added := 0
	for _, holiday := range NationalHolidays(year) {
		if ok, _ := h.AddHoliday(holiday.Date); ok {
			added++
		}
	}
	return added
}

// RemoveHoliday drops date from the list.
func (h *BusinessHours) RemoveHoliday(date string) {
	out := h.Holidays[:0]
	for _, existing := range h.Holidays {
		if existing != date {
			out = append(out, existing)
		}
	}
	h.Holidays = out
}

// SelectDays enables exactly the given days and disables the rest.
// Opening times are kept.
func (h *BusinessHours) SelectDays(days ...Weekday) {
	chosen := make(map[Weekday]struct{}, len(days))
	for _, d := range days {
		chosen[d] = struct{}{}
	}
	for _, d := range Weekdays {
		_, on := chosen[d]
		h.Week.Day(d).Enabled = on
	}
}

// AddPeak appends a busy interval to day.
func (h *BusinessHours) AddPeak(day Weekday, slot PeakSlot) {
	if h.PeakHours == nil {
		h.PeakHours = map[Weekday][]PeakSlot{}
	}
	h.PeakHours[day] = append(h.PeakHours[day], slot)
}

// RemovePeak drops the interval at index i of day; an emptied day is
// deleted from the map.
func (h *BusinessHours) RemovePeak(day Weekday, i int) {
	slots := h.PeakHours[day]
	if i < 0 || i >= len(slots) {
		return
	}
	slots = append(slots[:i:i], slots[i+1:]...)
	if len(slots) == 0 {
		delete(h.PeakHours, day)
		return
	}
	h.PeakHours[day] = slots
}
