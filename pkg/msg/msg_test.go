package msg_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwave-api/pkg/msg"
)

const testMessages = `app:
  start: "Starting service"
  req-end: "{0} {1} finished with status {2} in {3}"
model:
  load-failed: "Classifier could not be loaded from {0}: {1}"
greeting: "hello {0}, again {0}"
`

func loadTestMessages(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(testMessages), 0o644))
	msg.Init(path)
}

func TestGetMessage_NoArgs(t *testing.T) {
	loadTestMessages(t)

	assert.Equal(t, "Starting service", msg.GetMessage("app.start"))
}

func TestGetMessage_PlaceholderSubstitution(t *testing.T) {
	loadTestMessages(t)

	got := msg.GetMessage("app.req-end", "POST", "/predict", 200, 150*time.Millisecond)
	assert.Equal(t, "POST /predict finished with status 200 in 150ms", got)
}

func TestGetMessage_ErrorArg(t *testing.T) {
	loadTestMessages(t)

	got := msg.GetMessage("model.load-failed", "model/classifier.json", errors.New("no such file"))
	assert.Equal(t, "Classifier could not be loaded from model/classifier.json: no such file", got)
}

func TestGetMessage_RepeatedPlaceholder(t *testing.T) {
	loadTestMessages(t)

	assert.Equal(t, "hello world, again world", msg.GetMessage("greeting", "world"))
}

func TestGetMessage_UnknownKey(t *testing.T) {
	loadTestMessages(t)

	assert.Equal(t, "Message not found: nope", msg.GetMessage("nope"))
}
