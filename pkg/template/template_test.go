package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	out := Render("'{title}' moved to {state} by {actor}", "fallback",
		NotificationData("In Review", "My post", "alice"))

	assert.Equal(t, "'My post' moved to In Review by alice", out)
}

func TestRender_EmptyTemplateUsesFallback(t *testing.T) {
	out := Render("", "state updated to Published", NotificationData("Published", "", ""))

	assert.Equal(t, "state updated to Published", out)
}

func TestRender_UnknownPlaceholderSurvives(t *testing.T) {
	out := Render("moved to {state} at {when}", "fallback", NotificationData("Draft", "", ""))

	assert.Equal(t, "moved to Draft at {when}", out)
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	out := Render("{state} and {state} again", "fallback", map[string]string{"state": "Draft"})

	assert.Equal(t, "Draft and Draft again", out)
}
