package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("DEBUG", "json").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("", "json").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("loud", "text").GetLevel())
}

func TestFormat(t *testing.T) {
	_, ok := New("info", "text").Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
	_, ok = New("info", "").Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestWithGame(t *testing.T) {
	e := WithGame(nil, "g1", "home", "away")
	assert.Equal(t, "g1", e.Data["game_id"])
	assert.Equal(t, "home", e.Data["home"])
	assert.Equal(t, "away", e.Data["away"])
}
