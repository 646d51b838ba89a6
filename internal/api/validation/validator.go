// Package validation converts raw submission bodies into validated
// domain.SleepLogEntry values. Nothing past this boundary sees untyped
// JSON.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/dreamwell/sleep-coach/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// 24-hour HH:MM time of day. Non-padded hours are accepted,
	// minutes must be 00-59.
	validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})
}

var (
	ErrInvalidJSON   = errors.New("Invalid JSON payload.")
	ErrNotAnObject   = errors.New("Request body must be a JSON object.")
	ErrMissingFields = errors.New("Missing required fields: duration, bedtime, stress_level")
)

// fieldMessages maps entry fields to their rejection message. Wrong-type
// and out-of-range failures share one message per field.
var fieldMessages = map[string]string{
	"Duration":       "Field 'duration' must be a number in hours between 0 and 24.",
	"Bedtime":        "Field 'bedtime' must be a string in 'HH:MM' format.",
	"WakeTime":       "Field 'wake_time' must be a string in 'HH:MM' format if provided.",
	"CaffeineIntake": "Field 'caffeine_intake' must be a non-negative number if provided.",
	"StressLevel":    "Field 'stress_level' must be an integer between 1 and 10.",
	"ScreenTime":     "Field 'screen_time' must be a non-negative number if provided.",
}

// BuildSleepLog validates a raw submission body and returns a normalized
// entry stamped with the current UTC calendar date. The returned error
// message is safe to surface to the client.
func BuildSleepLog(body []byte) (*domain.SleepLogEntry, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, ErrInvalidJSON
	}

	data, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}

	for _, key := range []string{"duration", "bedtime", "stress_level"} {
		if _, present := data[key]; !present {
			return nil, ErrMissingFields
		}
	}

	entry := &domain.SleepLogEntry{}

	duration, ok := toFloat(data["duration"])
	if !ok {
		return nil, fieldError("Duration")
	}
	entry.Duration = duration

	stress, ok := toInt(data["stress_level"])
	if !ok {
		return nil, fieldError("StressLevel")
	}
	entry.StressLevel = stress

	bedtime, ok := data["bedtime"].(string)
	if !ok {
		return nil, fieldError("Bedtime")
	}
	entry.Bedtime = bedtime

	if wt, present := data["wake_time"]; present && wt != nil {
		s, ok := wt.(string)
		if !ok || s == "" {
			return nil, fieldError("WakeTime")
		}
		entry.WakeTime = &s
	}

	caffeine, ok := optionalFloat(data["caffeine_intake"])
	if !ok {
		return nil, fieldError("CaffeineIntake")
	}
	entry.CaffeineIntake = caffeine

	screen, ok := optionalFloat(data["screen_time"])
	if !ok {
		return nil, fieldError("ScreenTime")
	}
	entry.ScreenTime = screen

	if err := validate.Struct(entry); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fieldError(verrs[0].StructField())
		}
		return nil, ErrNotAnObject
	}

	entry.Date = time.Now().UTC().Format("2006-01-02")
	return entry, nil
}

func fieldError(field string) error {
	return errors.New(fieldMessages[field])
}

// toFloat coerces a decoded JSON value to a float64. Numbers and numeric
// strings coerce; booleans, nulls, and containers do not.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt coerces a decoded JSON value to an int. A fractional JSON number
// truncates; a fractional string does not coerce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		return int(f), err == nil
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

// optionalFloat treats absent and null as zero.
func optionalFloat(v any) (float64, bool) {
	if v == nil {
		return 0, true
	}
	return toFloat(v)
}
