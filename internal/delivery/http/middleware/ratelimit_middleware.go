package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"clinic-queue/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const fixedWindowSource = `
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`

// FixedWindowScript increments the counter of KEYS[1] and starts its window
// of ARGV[1] milliseconds on the first hit. Both steps run atomically, so a
// counter can never be left without an expiry.
var FixedWindowScript = redis.NewScript(fixedWindowSource)

// RateLimitMiddleware applies a fixed-window limit per client to requests
// that change data. Counters live in Redis so every instance shares them.
type RateLimitMiddleware struct {
	redis          redis.Cmdable
	log            *logrus.Logger
	requests       int
	window         time.Duration
	trustedProxies []netip.Prefix
}

// NewRateLimitMiddleware builds the limiter. X-Forwarded-For is honoured only
// for requests whose peer address is one of trustedProxies (IPs or CIDRs).
func NewRateLimitMiddleware(client redis.Cmdable, log *logrus.Logger, requests int, window time.Duration, trustedProxies []string) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		redis:    client,
		log:      log,
		requests: requests,
		window:   window,
	}
	for _, proxy := range trustedProxies {
		prefix, err := parsePrefix(proxy)
		if err != nil {
			log.Warnf("Ignoring trusted proxy %q: %+v", proxy, err)
			continue
		}
		m.trustedProxies = append(m.trustedProxies, prefix)
	}
	return m
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !isMutating(req.Method) {
			next.ServeHTTP(w, req)
			return
		}

		key := rateLimitKey(m.clientIP(req))
		count, err := FixedWindowScript.Run(req.Context(), m.redis, []string{key}, m.window.Milliseconds()).Int64()
		if err != nil {
			// Redis unavailable: let the request through.
			m.log.Warnf("Rate limiter unavailable: %+v", err)
			next.ServeHTTP(w, req)
			return
		}

		remaining := m.requests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.requests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > m.requests {
			w.Header().Set("Retry-After", strconv.Itoa(int(m.window.Seconds())))
			response.TooManyRequests(w, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, req)
	})
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func rateLimitKey(ip string) string {
	return fmt.Sprintf("rate_limit:%s", ip)
}

// clientIP is the peer address unless the peer is a trusted proxy. Behind a
// trusted proxy it is the right-most X-Forwarded-For entry that is not itself
// a trusted proxy.
func (m *RateLimitMiddleware) clientIP(req *http.Request) string {
	peer := req.RemoteAddr
	if host, _, err := net.SplitHostPort(req.RemoteAddr); err == nil {
		peer = host
	}

	forwarded := req.Header.Get("X-Forwarded-For")
	if forwarded == "" || !m.isTrusted(peer) {
		return peer
	}

	hops := strings.Split(forwarded, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !m.isTrusted(hop) {
			return hop
		}
		peer = hop
	}
	return peer
}

func (m *RateLimitMiddleware) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range m.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func parsePrefix(raw string) (netip.Prefix, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "/") {
		return netip.ParsePrefix(raw)
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
