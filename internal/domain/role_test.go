package domain_test

import (
	"testing"

	"github.com/dom/rift-companion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Role
	}{
		{"mid", domain.RoleMid},
		{" ADC ", domain.RoleADC},
		{"dragon", domain.RoleADC},
		{"Baron", domain.RoleTop},
		{"duo", domain.RoleADC},
		{"sup", domain.RoleSupport},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseRole(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := domain.ParseRole("bot")
	assert.Error(t, err)
	_, err = domain.ParseRole("")
	assert.Error(t, err)
}

func TestRole_DisplayName(t *testing.T) {
	assert.Equal(t, "Baron Lane", domain.RoleTop.DisplayName())
	assert.Equal(t, "Dragon Lane", domain.RoleADC.DisplayName())
	assert.Equal(t, "bot", domain.Role("bot").DisplayName())
	assert.False(t, domain.Role("bot").IsValid())
}
