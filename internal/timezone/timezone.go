package timezone

import "time"

const (
	DefaultTimezone = "America/Sao_Paulo"

	DayLayout = "2006-01-02"
)

// Location cai para America/Sao_Paulo quando tz é vazio ou desconhecido.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseInstant aceita RFC3339 ou só a data (meia-noite no fuso do estúdio).
// Com endOfDay, uma data pura vira o último instante daquele dia.
func ParseInstant(raw string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	day, err := time.ParseInLocation(DayLayout, raw, loc)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return EndOfDay(day), nil
	}
	return day, nil
}

// EndOfDay respeita o fuso de t, inclusive em dias com troca de horário.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// ClockIn formata HH:MM no fuso informado.
func ClockIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

func DateIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}
