package database

import (
	"context"
	"testing"

	"travel_budget/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig_UsesStaticCredentials(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "secret",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
