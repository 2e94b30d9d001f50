package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no cleanup goroutine in tests
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func TestTokenBucket_AllowsUpToBurst(t *testing.T) {
	bucket := newTokenBucket(3, 0.001) // negligible refill

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(1, 1000) // 1000 tokens/sec

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(5 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestTokenBucket_GetStatusDoesNotConsume(t *testing.T) {
	bucket := newTokenBucket(2, 0.001)

	remaining, _ := bucket.getStatus()
	assert.Equal(t, 2, remaining)

	remaining, _ = bucket.getStatus()
	assert.Equal(t, 2, remaining)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/analyze", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_AnalyzeBurstExhausted(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Burst for POST /analyze is 5
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/analyze", "POST")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/analyze", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.1.1.1", "/analyze", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("2.2.2.2", "/analyze", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/analyze", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, info := limiter.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/analyze", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 30, match.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/history/abc123/skills/React/toggle", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, "/history/", match.Path)

	match = MatchEndpoint("/checklist/3/toggle", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, "/checklist/", match.Path)
}

func TestMatchEndpoint_NoMatchForReads(t *testing.T) {
	configs := DefaultEndpointConfigs()

	assert.Nil(t, MatchEndpoint("/history", "GET", configs))
	assert.Nil(t, MatchEndpoint("/latest", "GET", configs))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 600, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Whitelist(t *testing.T) {
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Whitelist["1.1.1.1"])
	assert.True(t, cfg.Whitelist["2.2.2.2"])
	assert.False(t, cfg.Whitelist["3.3.3.3"])
}
