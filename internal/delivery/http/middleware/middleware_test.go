package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// redisError is a reply error as the server would send it.
type redisError string

func (e redisError) Error() string { return string(e) }
func (redisError) RedisError()     {}

func expectHit(mock redismock.ClientMock, key string, window time.Duration) *redismock.ExpectedCmd {
	return mock.ExpectEvalSha(FixedWindowScript.Hash(), []string{key}, window.Milliseconds())
}

func TestRateLimit_AllowsWithinLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	expectHit(mock, "rate_limit:192.0.2.1", time.Minute).SetVal(int64(1))

	limiter := NewRateLimitMiddleware(client, quietLogger(), 2, time.Minute, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
	rec := httptest.NewRecorder()

	limiter.Handle(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_RejectsPastLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	expectHit(mock, "rate_limit:203.0.113.7", time.Minute).SetVal(int64(3))

	limiter := NewRateLimitMiddleware(client, quietLogger(), 2, time.Minute, []string{"10.0.0.0/8"})
	req := httptest.NewRequest(http.MethodDelete, "/api/doctors/1", nil)
	req.RemoteAddr = "10.0.0.2:4711"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()

	limiter.Handle(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"code":429,"message":"Rate limit exceeded"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	expectHit(mock, "rate_limit:192.0.2.1", time.Minute).SetVal(int64(2))

	limiter := NewRateLimitMiddleware(client, quietLogger(), 1, time.Minute, []string{"10.0.0.1"})
	req := httptest.NewRequest(http.MethodPost, "/api/patients", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.23")
	rec := httptest.NewRecorder()

	limiter.Handle(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_ClientIP(t *testing.T) {
	limiter := NewRateLimitMiddleware(nil, quietLogger(), 1, time.Minute, []string{"10.0.0.0/8", "::1", "not-an-ip"})

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "no proxy", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "spoofed header from client", remoteAddr: "192.0.2.1:1234", forwarded: "198.51.100.1", want: "192.0.2.1"},
		{name: "trusted proxy", remoteAddr: "10.1.2.3:80", forwarded: "198.51.100.1", want: "198.51.100.1"},
		{name: "spoofed entry before real client", remoteAddr: "10.1.2.3:80", forwarded: "1.1.1.1, 198.51.100.1, 10.0.0.5", want: "198.51.100.1"},
		{name: "only proxies", remoteAddr: "10.1.2.3:80", forwarded: "10.0.0.7", want: "10.0.0.7"},
		{name: "ipv6 loopback proxy", remoteAddr: "[::1]:80", forwarded: "2001:db8::1", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, limiter.clientIP(req))
		})
	}
}

func TestRateLimit_LoadsScriptWhenNotCached(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	key := "rate_limit:192.0.2.1"
	expectHit(mock, key, 30*time.Second).SetErr(redisError("NOSCRIPT No matching script. Please use EVAL."))
	mock.ExpectEval(fixedWindowSource, []string{key}, int64(30000)).SetVal(int64(1))

	limiter := NewRateLimitMiddleware(client, quietLogger(), 5, 30*time.Second, nil)
	rec := httptest.NewRecorder()

	limiter.Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, fixedWindowSource, `redis.call("PEXPIRE", KEYS[1], ARGV[1])`)
}

func TestRateLimit_FailsOpenWhenRedisErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	expectHit(mock, "rate_limit:192.0.2.1", time.Minute).SetErr(errors.New("connection refused"))

	limiter := NewRateLimitMiddleware(client, quietLogger(), 1, time.Minute, nil)
	rec := httptest.NewRecorder()

	limiter.Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/patients/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_SkipsReads(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()

	limiter := NewRateLimitMiddleware(client, quietLogger(), 1, time.Minute, nil)
	rec := httptest.NewRecorder()

	limiter.Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCORS_WildcardAndPreflight(t *testing.T) {
	cors := NewCORSMiddleware([]string{"*"})
	rec := httptest.NewRecorder()

	cors.Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	cors := NewCORSMiddleware([]string{"http://clinic.test"})

	allowed := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	allowed.Header.Set("Origin", "http://clinic.test")
	rec := httptest.NewRecorder()
	cors.Handle(okHandler).ServeHTTP(rec, allowed)
	assert.Equal(t, "http://clinic.test", rec.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	denied.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	cors.Handle(okHandler).ServeHTTP(rec, denied)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogging_RecordsStatus(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	failing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	NewLoggingMiddleware(log).Handle(failing).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/patients", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
	assert.Equal(t, "/api/patients", entry.Data["path"])
}
