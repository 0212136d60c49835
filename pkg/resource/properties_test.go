package resource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwave-api/pkg/resource"
)

const testProperties = `app:
  server:
    port: ${RES_TEST_PORT:8080}
    context-path: ${RES_TEST_CONTEXT_PATH:}
  redis:
    password: ${RES_TEST_PASSWORD:}
  name: heatwave-api
  predict:
    default-days: 7
    binary-threshold: 0.5
  outlook:
    enabled: true
  greeting: ${RES_TEST_GREETING:hello}
`

func loadTestProperties(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(testProperties), 0o644))
	resource.Init(path)
}

func TestPlaceholderResolution(t *testing.T) {
	t.Setenv("RES_TEST_PORT", "9090")
	os.Unsetenv("RES_TEST_CONTEXT_PATH")
	os.Unsetenv("RES_TEST_PASSWORD")
	os.Unsetenv("RES_TEST_GREETING")

	loadTestProperties(t)

	// env set wins over the default
	assert.Equal(t, "9090", resource.GetString("app.server.port"))

	// env unset falls back to the default
	assert.Equal(t, "hello", resource.GetString("app.greeting"))

	// an empty default resolves to the empty string, not the raw placeholder
	assert.Equal(t, "", resource.GetString("app.server.context-path"))
	assert.Equal(t, "", resource.GetString("app.redis.password"))
}

func TestEmptyDefaultHonorsEnvironment(t *testing.T) {
	t.Setenv("RES_TEST_CONTEXT_PATH", "/api")

	loadTestProperties(t)

	assert.Equal(t, "/api", resource.GetString("app.server.context-path"))
}

func TestPlainValuesPassThrough(t *testing.T) {
	loadTestProperties(t)

	assert.Equal(t, "heatwave-api", resource.GetString("app.name"))
	assert.Equal(t, 7, resource.GetInt("app.predict.default-days"))
	assert.Equal(t, 0.5, resource.GetFloat64("app.predict.binary-threshold"))
	assert.True(t, resource.GetBool("app.outlook.enabled"))
}
