package ogcapiregistry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.Equal(t, "dev", v, "development builds report 'dev'")
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	assert.True(t, strings.HasPrefix(ua, "ogcapi-registry/"))
	assert.True(t, strings.HasSuffix(ua, Version()))
}
