package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContextAddsRequestID(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")
	l := WithContext(ctx)
	assert.Equal(t, "req-123", l.Data["request_id"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	l := WithContext(context.Background())
	_, ok := l.Data["request_id"]
	assert.False(t, ok)
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	parent := New()
	child := parent.WithFields(map[string]interface{}{"stage_id": "s1"})
	assert.Equal(t, "s1", child.Data["stage_id"])
	_, ok := parent.Data["stage_id"]
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("info"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}
