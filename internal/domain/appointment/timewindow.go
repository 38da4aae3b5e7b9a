package appointment

import "time"

// ComputeEndTime soma a duração do serviço ao início. Duração não positiva
// é erro do chamador: os serviços são validados na criação.
func ComputeEndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}
