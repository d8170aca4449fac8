package cli

import (
	"testing"

	"github.com/airwave-cli/airwave/internal/core"
)

func TestResolveLabel(t *testing.T) {
	tests := []struct {
		name   string
		preset core.ResolvedPreset
		want   string
	}{
		{
			name:   "resolved",
			preset: core.ResolvedPreset{Outcome: core.OutcomeResolved},
			want:   "resolved",
		},
		{
			name:   "ignored scheme",
			preset: core.ResolvedPreset{Outcome: core.OutcomeIgnored},
			want:   "skipped",
		},
		{
			name: "unresolved names the failed hop",
			preset: core.ResolvedPreset{
				Outcome:     core.OutcomeUnresolved,
				FailedStage: "discover credentials",
			},
			want: "unresolved (discover credentials)",
		},
		{
			name:   "unresolved without stage detail",
			preset: core.ResolvedPreset{Outcome: core.OutcomeUnresolved},
			want:   "unresolved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLabel(tt.preset); got != tt.want {
				t.Errorf("resolveLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
