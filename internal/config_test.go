package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	config, err := LoadConfig()
	req.NoError(err)

	req.Equal("INFO", config.LogLevel)
	req.Equal(0, config.LevelMin)
	req.Equal(3, config.LevelMax)
	req.Equal("Alice", config.AskerName)
	req.Equal("Bob", config.ResponderName)
	req.Equal(5, config.Rounds)
	req.Nil(config.Seed)
	req.True(config.Colours)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LEVEL_MIN", "1")
	t.Setenv("LEVEL_MAX", "10")
	t.Setenv("ASKER_NAME", "R2")
	t.Setenv("ASKER_LEVEL", "7")
	t.Setenv("ROUNDS", "2")
	t.Setenv("SEED", "42")
	t.Setenv("COLOURS", "false")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal(1, config.LevelMin)
	req.Equal(10, config.LevelMax)
	req.Equal("R2", config.AskerName)
	req.Equal(7, config.AskerLevel)
	req.Equal(2, config.Rounds)
	req.NotNil(config.Seed)
	req.Equal(42, *config.Seed)
	req.False(config.Colours)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "Max not above Min", env: map[string]string{"LEVEL_MIN": "3", "LEVEL_MAX": "3"}},
		{name: "Negative Min", env: map[string]string{"LEVEL_MIN": "-1"}},
		{name: "No rounds", env: map[string]string{"ROUNDS": "0"}},
		{name: "Not a number", env: map[string]string{"ROUNDS": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
