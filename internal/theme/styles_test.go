package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/hookpin/internal/domain"
)

func TestStatusStyle(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(false) })

	for _, status := range []domain.HookStatus{domain.StatusFailed, domain.StatusPassed, domain.StatusSkipped} {
		assert.Equal(t, status.Label(), StatusStyle(status).Render(status.Label()))
	}

	SetColor(true)
	assert.NotEqual(t, "Passed", StatusStyle(domain.StatusPassed).Render("Passed"))
	assert.Contains(t, StatusStyle(domain.StatusPassed).Render("Passed"), "Passed")
}
