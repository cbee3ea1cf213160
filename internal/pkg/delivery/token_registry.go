package delivery

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

var (
	ErrTokenUnknown     = errors.New("unknown download token")
	ErrTokenExpired     = errors.New("download token expired")
	ErrTokenAlreadyUsed = errors.New("download token already used")
)

// issuedToken is the server-side record for one signed download token.
type issuedToken struct {
	userID    string
	fontID    string
	licenseID string
	expiresAt time.Time
	consumed  bool
}

// TokenRegistry tracks issued, unexpired, unconsumed download tokens and
// consumes each exactly once on first successful redemption. Expired
// entries are rejected on use and reclaimed by a background reaper.
type TokenRegistry struct {
	mu     sync.Mutex
	tokens map[string]*issuedToken

	now    func() time.Time
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewTokenRegistry creates an empty registry.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{
		tokens: make(map[string]*issuedToken),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// Register records a freshly issued token under its nonce.
func (r *TokenRegistry) Register(nonce, userID, fontID, licenseID string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[nonce] = &issuedToken{
		userID:    userID,
		fontID:    fontID,
		licenseID: licenseID,
		expiresAt: expiresAt,
	}
}

// Consume redeems a token exactly once. The entry stays in the map after
// consumption so reuse yields ErrTokenAlreadyUsed rather than
// ErrTokenUnknown until the reaper removes it.
func (r *TokenRegistry) Consume(nonce string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, ok := r.tokens[nonce]
	if !ok {
		return ErrTokenUnknown
	}
	if tok.consumed {
		return ErrTokenAlreadyUsed
	}
	if r.now().After(tok.expiresAt) {
		delete(r.tokens, nonce)
		return ErrTokenExpired
	}
	tok.consumed = true
	return nil
}

// Size returns the number of registered tokens, consumed included.
func (r *TokenRegistry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

// StartReaper reclaims expired and consumed-and-expired entries on an
// interval until Stop is called.
func (r *TokenRegistry) StartReaper(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stopCh:
				return
			case <-ticker.C:
				removed := r.reap()
				if removed > 0 {
					log.Debugf("[Delivery] reaped %d expired download tokens", removed)
				}
			}
		}
	}()
}

// Stop terminates the reaper goroutine.
func (r *TokenRegistry) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}

func (r *TokenRegistry) reap() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for nonce, tok := range r.tokens {
		if now.After(tok.expiresAt) {
			delete(r.tokens, nonce)
			removed++
		}
	}
	return removed
}
