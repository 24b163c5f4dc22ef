package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintel/esconfig/pkg/esconfig"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	req := new(esconfig.UpgradeElasticsearchDomainRequest).
		SetDomainName("logs").
		SetTargetVersion("7.7").
		SetPerformCheckOnly(true)
	require.NoError(t, WriteJSON(&buf, req))
	assert.JSONEq(t, `{"DomainName": "logs", "TargetVersion": "7.7", "PerformCheckOnly": true}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"DomainName\": \"logs\"")
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
}
