package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	defer SetLogger(*L())

	var buf bytes.Buffer

	Init(&buf, false, false)
	L().Debug().Msg("hidden")
	L().Info().Msg("json info")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"json info"`)

	buf.Reset()

	Init(&buf, true, true)
	L().Debug().Msg("human debug")
	assert.Contains(t, buf.String(), "human debug")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false, false)
	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l = New(&buf, true, false)
	l.Debug().Msg("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestWithStage_FromContext(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), zerolog.New(&buf).With().Str("run", "r1").Logger())

	log := WithStage(ctx, "expand")
	log.Info().Msg("expanded")

	assert.Contains(t, buf.String(), `"stage":"expand"`)
	assert.Contains(t, buf.String(), `"run":"r1"`)
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer

	prev := *L()
	defer SetLogger(prev)

	SetLogger(zerolog.New(&buf).With().Str("custom", "field").Logger())

	log := FromContext(context.Background())
	log.Info().Msg("test")

	assert.Contains(t, buf.String(), `"custom":"field"`)
}
