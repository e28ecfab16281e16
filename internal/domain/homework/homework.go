package homework

import "fmt"

// ErrUnknownStatus is returned when a homework status has no entry in the
// verdict table.
var ErrUnknownStatus = fmt.Errorf("unknown homework status")

// Record is one homework entry as returned by the status API.
//
// Upstream contract: the API returns homeworks ordered most-recent-first.
// Callers rely on that ordering and only consult the first element; the
// ordering itself is never verified here.
type Record struct {
	Name   string
	Status string
}

// StatusesPage is one validated page of the status API response: the homework
// list (possibly empty) plus the server-supplied watermark to poll from next.
type StatusesPage struct {
	Homeworks   []Record
	CurrentDate int64
}

// verdicts maps an upstream status code to its human-readable verdict.
var verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus builds the notification text for a single homework record.
// A status outside the verdict table yields ErrUnknownStatus and no text.
func ParseStatus(r Record) (string, error) {
	verdict, ok := verdicts[r.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, r.Status)
	}
	return fmt.Sprintf(`Изменился статус проверки работы "%s". %s`, r.Name, verdict), nil
}
