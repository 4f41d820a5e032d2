package profile

// Weekday keys the opening hours table.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every day starting on Monday.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Day groups used by the quick selection on the hours page.
var (
	WorkingDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	Weekend     = []Weekday{Saturday, Sunday}
)

// TimeRange is a HH:MM interval within one day.
type TimeRange struct {
	Start string `json:"start" yaml:"start" validate:"hhmm"`
	End   string `json:"end" yaml:"end" validate:"hhmm"`
}

// DayHours describes one weekday.
type DayHours struct {
	Enabled bool        `json:"enabled" yaml:"enabled"`
	Open    string      `json:"open" yaml:"open" validate:"hhmm"`
	Close   string      `json:"close" yaml:"close" validate:"hhmm"`
	Breaks  []TimeRange `json:"breaks" yaml:"breaks" validate:"dive"`
}

// WeekHours is the opening table for all seven days.
type WeekHours struct {
	Monday    DayHours `json:"monday" yaml:"monday"`
	Tuesday   DayHours `json:"tuesday" yaml:"tuesday"`
	Wednesday DayHours `json:"wednesday" yaml:"wednesday"`
	Thursday  DayHours `json:"thursday" yaml:"thursday"`
	Friday    DayHours `json:"friday" yaml:"friday"`
	Saturday  DayHours `json:"saturday" yaml:"saturday"`
	Sunday    DayHours `json:"sunday" yaml:"sunday"`
}

// Day returns a pointer to the entry for d, nil for unknown days.
func (w *WeekHours) Day(d Weekday) *DayHours {
	switch d {
	case Monday:
		return &w.Monday
	case Tuesday:
		return &w.Tuesday
	case Wednesday:
		return &w.Wednesday
	case Thursday:
		return &w.Thursday
	case Friday:
		return &w.Friday
	case Saturday:
		return &w.Saturday
	case Sunday:
		return &w.Sunday
	}
	return nil
}

// EnabledDays lists the open days in week order.
func (w WeekHours) EnabledDays() []Weekday {
	var out []Weekday
	for _, d := range Weekdays {
		if w.Day(d).Enabled {
			out = append(out, d)
		}
	}
	return out
}

// PeakSlot is a busy interval with the expected number of customers.
type PeakSlot struct {
	Start              string `json:"start" yaml:"start" validate:"hhmm"`
	End                string `json:"end" yaml:"end" validate:"hhmm"`
	EstimatedCustomers int    `json:"estimatedCustomers" yaml:"estimatedCustomers" validate:"gte=0"`
}

// BusinessHours holds the opening table and attendance figures.
type BusinessHours struct {
	Week                 WeekHours              `json:"businessHours" yaml:"businessHours"`
	AverageVisitDuration int                    `json:"averageVisitDuration" yaml:"averageVisitDuration" validate:"min=5,max=240"`
	Holidays             []string               `json:"holidays" yaml:"holidays" validate:"unique,dive,datetime=2006-01-02"`
	TicketAverage        *float64               `json:"ticketAverage" yaml:"ticketAverage" validate:"omitempty,gte=0"`
	CustomersPerDay      *int                   `json:"customersPerDay" yaml:"customersPerDay" validate:"omitempty,gte=0"`
	TopServices          []string               `json:"topServices" yaml:"topServices" validate:"min=1,dive,required"`
	HasSeasonal          bool                   `json:"hasSeasonal" yaml:"hasSeasonal"`
	SeasonalDetails      string                 `json:"seasonalDetails,omitempty" yaml:"seasonalDetails,omitempty"`
	PeakHours            map[Weekday][]PeakSlot `json:"peakHours" yaml:"peakHours" validate:"dive,keys,weekday,endkeys,dive"`
}
