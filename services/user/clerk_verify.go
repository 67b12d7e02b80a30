package user

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	defaultJWKSURL = "https://api.clerk.com/v1/jwks"
	jwksCacheTTL   = time.Hour
)

// ClerkVerifier checks a Clerk-issued session token and returns the Clerk
// user ID it was minted for. Session creation exchanges this proof of
// identity for an app token; nothing client-supplied is trusted on its own.
type ClerkVerifier interface {
	Verify(ctx context.Context, sessionToken string) (string, error)
}

// ClerkJWKSVerifier verifies Clerk session JWTs (RS256) against the
// instance's JSON Web Key Set, fetched with the backend secret key and
// cached in memory.
type ClerkJWKSVerifier struct {
	SecretKey  string
	JWKSURL    string
	HTTPClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewClerkJWKSVerifier builds a verifier for the instance the secret key
// belongs to.
func NewClerkJWKSVerifier(secretKey string) *ClerkJWKSVerifier {
	return &ClerkJWKSVerifier{
		SecretKey:  secretKey,
		JWKSURL:    defaultJWKSURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify parses the session token, checks its RS256 signature against the
// published signing keys and returns the subject (the Clerk user ID).
func (v *ClerkJWKSVerifier) Verify(ctx context.Context, sessionToken string) (string, error) {
	token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("session token has no key ID")
		}
		return v.keyFor(ctx, kid)
	})
	if err != nil {
		return "", fmt.Errorf("clerk: session token rejected: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("clerk: invalid session token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("clerk: session token has no subject")
	}
	return sub, nil
}

// keyFor returns the cached signing key for kid, refreshing the JWKS when the
// key is unknown or the cache is stale. Unknown kids after a refresh mean a
// token from a different instance.
func (v *ClerkJWKSVerifier) keyFor(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key := v.keys[kid]
	fresh := time.Since(v.fetchedAt) < jwksCacheTTL
	v.mu.RUnlock()
	if key != nil && fresh {
		return key, nil
	}

	if err := v.refresh(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	if key := v.keys[kid]; key != nil {
		return key, nil
	}
	return nil, fmt.Errorf("no signing key %q in JWKS", kid)
}

type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (v *ClerkJWKSVerifier) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.JWKSURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build JWKS request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+v.SecretKey)

	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS fetch returned status %d", resp.StatusCode)
	}

	var body struct {
		Keys []jsonWebKey `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(body.Keys))
	for _, k := range body.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := rsaKeyFromJWK(k.N, k.E)
		if err != nil {
			return fmt.Errorf("bad JWKS key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()
	return nil
}

// rsaKeyFromJWK builds an RSA public key from the base64url modulus and
// exponent of a JWK entry.
func rsaKeyFromJWK(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("bad modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("bad exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
