package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIn(t *testing.T) {
	assert.True(t, In("data", "master", "data"))
	assert.False(t, In("ingest", "master", "data"))
	assert.False(t, In("data"))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, Uniq("us-east-1b", "us-east-1a", "us-east-1b"))
	assert.Empty(t, Uniq())
}
