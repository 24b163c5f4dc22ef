package testutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gock "gopkg.in/h2non/gock.v1"
)

func TestAWSSession_GockTransport(t *testing.T) {
	defer gock.OffAll()

	sess := AWSSession(t)
	client := sess.Config.HTTPClient
	require.NotNil(t, client)
	assert.IsType(t, &gock.Transport{}, client.Transport)

	// Without gock.Intercept the session's client must still hit the mock.
	gock.New(AWSEndpoint).
		Get("/2015-01-01/domain").
		Reply(200).
		JSON(map[string]interface{}{"DomainNames": []interface{}{}})

	resp, err := client.Get(AWSEndpoint + "/2015-01-01/domain")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gock.IsDone())
}
