package controller

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// generateTimeBasedId returns a sortable unique id for correlating log lines.
func (c controller) generateTimeBasedId() string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return id.String()
}

// intQuery parses an integer query value, falling back to def when it is absent or
// invalid and clamping it to [1, upper].
func intQuery(value string, def, upper int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return def
	}

	if n > upper {
		return upper
	}

	return n
}
