package practicum

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// CheckResponse validates a decoded API body and extracts the homework page.
// The homeworks list may be empty; the current_date watermark is required.
func CheckResponse(raw map[string]any) (*homework.StatusesPage, error) {
	rawList, ok := raw["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: homeworks", ErrIncorrectSchema)
	}
	list, ok := rawList.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: homeworks is not a list (got %T)", ErrMalformedResponse, rawList)
	}

	page := &homework.StatusesPage{Homeworks: make([]homework.Record, 0, len(list))}
	for i, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: homeworks[%d] is not an object", ErrMalformedResponse, i)
		}
		name, ok := obj["homework_name"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: homeworks[%d].homework_name", ErrMalformedResponse, i)
		}
		status, ok := obj["status"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: homeworks[%d].status", ErrMalformedResponse, i)
		}
		page.Homeworks = append(page.Homeworks, homework.Record{Name: name, Status: status})
	}

	rawDate, ok := raw["current_date"]
	if !ok {
		return nil, fmt.Errorf("%w: current_date", ErrIncorrectSchema)
	}
	// encoding/json decodes JSON numbers into float64.
	date, ok := rawDate.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: current_date is not a number (got %T)", ErrMalformedResponse, rawDate)
	}
	page.CurrentDate = int64(date)

	return page, nil
}
