package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_Public(t *testing.T) {
	assert.True(t, ScreenLogin.Public())
	assert.True(t, ScreenRegister.Public())
	assert.False(t, ScreenEmployeeDashboard.Public())
	assert.False(t, ScreenAdminDashboard.Public())
}

func TestScreen_Known(t *testing.T) {
	assert.True(t, ScreenDetailReport.Known())
	assert.False(t, Screen("Settings").Known())
}
