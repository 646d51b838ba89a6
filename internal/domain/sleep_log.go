package domain

// SleepLogEntry is one validated daily sleep submission.
// @Description A single day's sleep log with habit factors.
type SleepLogEntry struct {
	// Calendar date the entry was submitted (server-assigned, UTC)
	Date string `json:"date" example:"2024-01-15"`
	// Hours slept, in (0, 24]
	Duration float64 `json:"duration" validate:"gt=0,lte=24" example:"7.5"`
	// Bedtime as 24-hour HH:MM
	Bedtime string `json:"bedtime" validate:"hhmm" example:"23:15"`
	// Wake time as 24-hour HH:MM, optional
	WakeTime *string `json:"wake_time" validate:"omitempty,hhmm" example:"06:45"`
	// Caffeine intake (e.g. cups or mg), non-negative
	CaffeineIntake float64 `json:"caffeine_intake" validate:"gte=0" example:"2"`
	// Self-reported stress level from 1 (calm) to 10 (very stressed)
	StressLevel int `json:"stress_level" validate:"min=1,max=10" example:"4"`
	// Screen time before bed in hours, non-negative
	ScreenTime float64 `json:"screen_time" validate:"gte=0" example:"1.5"`
}

// SubmitSleepLogResponse is the response body for a successful submission.
type SubmitSleepLogResponse struct {
	Message  string        `json:"message" example:"Log entry added."`
	LogEntry SleepLogEntry `json:"log_entry"`
}

// SleepLogListResponse wraps a user's full log history.
type SleepLogListResponse struct {
	Logs []SleepLogEntry `json:"logs"`
}
