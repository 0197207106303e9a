// Package ratelimit provides per-client token bucket limiting for write requests.
package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration.
type Config struct {
	RequestsPerMinute int           // Sustained rate per client (default: 60)
	Burst             int           // Bucket size (default: RequestsPerMinute/6, at least 1)
	IdleTTL           time.Duration // Forget clients idle this long (default: 10m)
	TrustProxy        bool          // Read client IP from proxy headers

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		RequestsPerMinute: 60,
		Burst:             10,
		IdleTTL:           10 * time.Minute,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
}

type entry struct {
	limiter *rate.Limiter
	lastAt  time.Time
}

// Limiter keeps one token bucket per client key.
type Limiter struct {
	config *Config
	clock  Clock
	limit  rate.Limit
	burst  int
	mu     sync.Mutex
	// Keyed by client IP
	clients map[string]*entry

	// Cleanup goroutine management
	cleanupCtx    context.Context
	cleanupCancel context.CancelFunc
	cleanupOnce   sync.Once
	cleanupWg     sync.WaitGroup
}

// New creates a new rate limiter with the given config.
func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = perMinute / 6
	}
	if burst < 1 {
		burst = 1
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Limiter{
		config:        cfg,
		clock:         clock,
		limit:         rate.Limit(float64(perMinute) / 60.0),
		burst:         burst,
		clients:       make(map[string]*entry),
		cleanupCtx:    ctx,
		cleanupCancel: cancel,
	}
}

// Close stops the cleanup goroutine and releases resources.
func (l *Limiter) Close() {
	l.cleanupCancel()
	l.cleanupWg.Wait()
}

// Allow consumes a token for key if one is available.
func (l *Limiter) Allow(key string) LimitResult {
	l.startCleanup()
	now := l.clock.Now()

	l.mu.Lock()
	e := l.clients[key]
	if e == nil {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = e
	}
	e.lastAt = now
	l.mu.Unlock()

	reservation := e.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return LimitResult{Allowed: false, RetryAfter: time.Minute}
	}
	delay := reservation.DelayFrom(now)
	if delay > 0 {
		// Give the token back; the caller is rejected, not queued.
		reservation.CancelAt(now)
		return LimitResult{Allowed: false, RetryAfter: delay}
	}
	return LimitResult{Allowed: true}
}

// Middleware rejects non-GET requests over the limit with 429. Reads pass through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		ip := GetClientIP(r, l.config.TrustProxy)
		result := l.Allow(ip)
		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Round(time.Second) / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			LogRateLimitExceeded(r, ip)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) startCleanup() {
	l.cleanupOnce.Do(func() {
		l.cleanupWg.Add(1)
		go func() {
			defer l.cleanupWg.Done()
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-l.cleanupCtx.Done():
					return
				case <-ticker.C:
					l.cleanup()
				}
			}
		}()
	})
}

func (l *Limiter) cleanup() {
	now := l.clock.Now()
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.clients {
		if now.Sub(e.lastAt) > ttl {
			delete(l.clients, k)
		}
	}
}

func (l *Limiter) trackedClients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// GetClientIP extracts the client IP from a request.
// When trustProxy is true, uses the rightmost IP from X-Forwarded-For (added by your proxy).
// When trustProxy is false, ignores X-Forwarded-For entirely (prevents spoofing).
func GetClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Use RIGHTMOST IP - this is the one your proxy added, not user-supplied
			parts := strings.Split(xff, ",")
			for i := len(parts) - 1; i >= 0; i-- {
				ip := strings.TrimSpace(parts[i])
				// Skip private/internal IPs to find the real client
				if ip != "" && !isPrivateIP(ip) {
					return ip
				}
			}
			// All IPs are private, use the last one
			return strings.TrimSpace(parts[len(parts)-1])
		}

		// Check X-Real-IP (set by nginx)
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	// Fall back to RemoteAddr (direct connection or untrusted proxy)
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port (e.g., Unix socket or malformed)
		// Try to parse as IP directly, otherwise return as-is
		if parsed := net.ParseIP(r.RemoteAddr); parsed != nil {
			return r.RemoteAddr
		}
		// Last resort: strip anything after last colon that looks like a port
		if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
			candidate := r.RemoteAddr[:idx]
			if net.ParseIP(candidate) != nil {
				return candidate
			}
		}
		return r.RemoteAddr
	}
	return ip
}

// privateNetworks holds parsed CIDR ranges for private/reserved IPs.
// Parsed once at package init for efficiency.
var privateNetworks []*net.IPNet

func init() {
	privateRanges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"::1/128",
		"fc00::/7",
		"fe80::/10", // Link-local
	}
	for _, cidr := range privateRanges {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic("invalid private CIDR: " + cidr)
		}
		privateNetworks = append(privateNetworks, network)
	}
}

// isPrivateIP checks if an IP is in a private/reserved range.
// Handles both IPv4 and IPv4-mapped IPv6 addresses (e.g., ::ffff:192.168.1.1).
func isPrivateIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}

	// Convert IPv4-mapped IPv6 to IPv4 for consistent matching
	// e.g., ::ffff:192.168.1.1 -> 192.168.1.1
	if ipv4 := ip.To4(); ipv4 != nil {
		ip = ipv4
	}

	for _, network := range privateNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// LogRateLimitExceeded logs a rejected write request.
func LogRateLimitExceeded(r *http.Request, ip string) {
	log.Ctx(r.Context()).Warn().
		Str("event", "rate_limit_exceeded").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("ip", ip).
		Msg("Write rate limit exceeded")
}
