// Package converter maps entities to response DTOs.
package converter

import "time"

const dateLayout = "2006-01-02"

func toResponses[E any, R any](items []E, convert func(*E) *R) []R {
	responses := make([]R, len(items))
	for i := range items {
		responses[i] = *convert(&items[i])
	}
	return responses
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
