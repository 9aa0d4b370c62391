// Package template renders notification message templates. Templates are
// plain strings with {placeholder} markers; unknown placeholders are left
// in place so a typo is visible in the delivered message instead of
// silently dropped.
package template

import "strings"

// Render substitutes every {key} marker in the template with its value from
// data. An empty template returns the fallback unmodified.
func Render(template, fallback string, data map[string]string) string {
	if template == "" {
		return fallback
	}

	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}

	return out
}

// NotificationData builds the placeholder set available to transition
// notification templates.
func NotificationData(state, title, actor string) map[string]string {
	return map[string]string{
		"state": state,
		"title": title,
		"actor": actor,
	}
}
