package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTopic(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		key     string
		want    bool
	}{
		{
			name:    "exact match",
			pattern: "user.events.user.registered",
			key:     "user.events.user.registered",
			want:    true,
		},
		{
			name:    "trailing star matches single word",
			pattern: "user.events.*",
			key:     "user.events.USER_REGISTERED",
			want:    true,
		},
		{
			name:    "trailing star matches dotted event type",
			pattern: "lead.events.*",
			key:     "lead.events.lead.stage.changed",
			want:    true,
		},
		{
			name:    "trailing star requires at least one word",
			pattern: "customer.events.*",
			key:     "customer.events",
			want:    false,
		},
		{
			name:    "wrong domain does not match",
			pattern: "customer.events.*",
			key:     "lead.events.lead.created",
			want:    false,
		},
		{
			name:    "mid-pattern star matches exactly one word",
			pattern: "*.events.*",
			key:     "task.events.task.created",
			want:    true,
		},
		{
			name:    "mid-pattern star does not span words",
			pattern: "*.created",
			key:     "customer.events.customer.created",
			want:    false,
		},
		{
			name:    "hash matches zero words",
			pattern: "customer.events.#",
			key:     "customer.events",
			want:    true,
		},
		{
			name:    "hash matches many words",
			pattern: "#",
			key:     "opportunity.events.opportunity.won",
			want:    true,
		},
		{
			name:    "hash in the middle",
			pattern: "customer.#.created",
			key:     "customer.events.customer.created",
			want:    true,
		},
		{
			name:    "literal mismatch",
			pattern: "user.events.user.registered",
			key:     "user.events.USER_REGISTERED",
			want:    false,
		},
		{
			name:    "empty key against literal",
			pattern: "customer.events.queue",
			key:     "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchTopic(tt.pattern, tt.key))
		})
	}
}
