package claude

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightaudit/internal/config"
	"freightaudit/internal/extract"
	"freightaudit/internal/port"
)

func testConfig() *config.ExtractorProviderConfig {
	return &config.ExtractorProviderConfig{
		Provider:     "claude",
		APIKey:       "test-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  5,
	}
}

func pdfInput() port.ExtractInput {
	return port.ExtractInput{
		FileBytes:   []byte("%PDF-1.4 fake"),
		ContentType: "application/pdf",
	}
}

func TestExtractRateCard_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"type": "text", "text": "{\"provider_name\": \"Delhivery\", \"zone_a_rate\": 30, \"zone_b_rate\": 35, \"zone_c_rate\": 45, \"cod_fee_percentage\": 2, \"rto_flat_fee\": 80}"}],
			"stop_reason": "end_turn"
		}`))
	}))
	defer srv.Close()

	e := NewExtractorWithEndpoint(testConfig(), srv.URL)
	out, err := e.ExtractRateCard(context.Background(), pdfInput())
	require.NoError(t, err)
	assert.Equal(t, "Delhivery", out.ProviderName)
	assert.Equal(t, 30.0, out.Rules.ZoneARate)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)
}

func TestExtractRateCard_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	e := NewExtractorWithEndpoint(testConfig(), srv.URL)
	_, err := e.ExtractRateCard(context.Background(), pdfInput())
	require.Error(t, err)

	var rle *extract.RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, "claude", rle.Provider)
	assert.Equal(t, 30, int(rle.RetryAfter.Seconds()))
}

func TestExtractRateCard_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewExtractorWithEndpoint(testConfig(), srv.URL)
	_, err := e.ExtractRateCard(context.Background(), pdfInput())
	assert.ErrorContains(t, err, "status 500")
}

func TestExtractRateCard_UnsupportedContentType(t *testing.T) {
	e := NewExtractorWithEndpoint(testConfig(), "http://unused.invalid")
	_, err := e.ExtractRateCard(context.Background(), port.ExtractInput{
		FileBytes:   []byte("hello"),
		ContentType: "text/plain",
	})
	assert.ErrorContains(t, err, "unsupported content type")
}
