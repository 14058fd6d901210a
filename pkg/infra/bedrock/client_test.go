package bedrock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_SameCredentialsConcurrent_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	c := NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	creds := Credentials{Region: "eu-west-3", AccessKey: "AKIA_TEST", SecretKey: "SECRET_TEST"}

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)
	runtimes := make([]Runtime, goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			rt, err := c.Runtime(ctx, creds)
			if err != nil {
				t.Errorf("Runtime failed: %v", err)
				return
			}
			runtimes[i] = rt
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, runtimes[0], runtimes[i])
	}
}

func TestRuntime_DifferentCredentials_ReturnDifferentInstances(t *testing.T) {
	t.Parallel()

	c := NewClient()
	ctx := context.Background()
	a, err := c.Runtime(ctx, Credentials{Region: "us-east-1", AccessKey: "A", SecretKey: "S"})
	require.NoError(t, err)
	b, err := c.Runtime(ctx, Credentials{Region: "us-east-1", AccessKey: "B", SecretKey: "S"})
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestLoadConfig_DefaultRegion(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), Credentials{AccessKey: "A", SecretKey: "S"})
	require.NoError(t, err)
	assert.Equal(t, DefaultRegion, cfg.Region)

	got, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", got.AccessKeyID)
}
