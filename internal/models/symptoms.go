package models

import "strings"

// SplitSymptoms turns a comma-separated symptom string into trimmed names.
// Empty input yields an empty, non-nil slice.
func SplitSymptoms(raw string) []string {
	symptoms := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		symptoms = append(symptoms, name)
	}
	return symptoms
}
