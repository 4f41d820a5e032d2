package profile

// Capacity bounds how many appointments the business can take.
// The last three fields are derived and never edited by the operator.
type Capacity struct {
	MaxDailyAppointments        int `json:"maxDailyAppointments" yaml:"maxDailyAppointments" validate:"min=1,max=1000"`
	MaxSimultaneousAppointments int `json:"maxSimultaneousAppointments" yaml:"maxSimultaneousAppointments" validate:"min=1,max=100"`
	MinAppointmentInterval      int `json:"minAppointmentInterval" yaml:"minAppointmentInterval" validate:"min=5,max=120"`
	ServiceBoxes                int `json:"serviceBoxes" yaml:"serviceBoxes" validate:"min=1,max=50"`

	TotalHoursPerDay           int     `json:"totalHoursPerDay" yaml:"totalHoursPerDay"`
	TotalHoursPerWeek          int     `json:"totalHoursPerWeek" yaml:"totalHoursPerWeek"`
	AverageAppointmentsPerHour float64 `json:"averageAppointmentsPerHour" yaml:"averageAppointmentsPerHour"`
}

// Working hours assumed by the derived capacity figures.
const (
	CapacityHoursPerDay = 8
	CapacityDaysPerWeek = 5
)

// Derive recomputes the hidden capacity fields.
func (c Capacity) Derive() Capacity {
	c.TotalHoursPerDay = CapacityHoursPerDay
	c.TotalHoursPerWeek = CapacityHoursPerDay * CapacityDaysPerWeek
	c.AverageAppointmentsPerHour = float64(c.MaxDailyAppointments) / CapacityHoursPerDay
	return c
}
