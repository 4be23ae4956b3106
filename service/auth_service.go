package service

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"oft-transacts/logger"
	"oft-transacts/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is the single error surfaced for any verification
// failure. Callers must not learn which check rejected the token.
var ErrTokenInvalid = errors.New("invalid token")

const (
	discoveryCacheKey = "openid-configuration"
	jwksCacheKey      = "jwks"
	metadataCacheTTL  = time.Hour
)

type discoveryDocument struct {
	Issuer  string `json:"issuer"`
	JWKSURI string `json:"jwks_uri"`
}

type jwksDocument struct {
	Keys []jsonWebKey `json:"keys"`
}

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// AuthService verifies bearer tokens against the configured identity
// provider. Discovery metadata and the signing-key set are fetched
// lazily and memoized for an hour in the supplied KeyCache.
type AuthService struct {
	issuer   string
	audience string
	client   *http.Client
	cache    KeyCache
}

func NewAuthService(issuer, audience string, cache KeyCache) *AuthService {
	return &AuthService{
		issuer:   issuer,
		audience: audience,
		client:   &http.Client{Timeout: 5 * time.Second},
		cache:    cache,
	}
}

// VerifyToken validates the raw bearer token and returns its claims.
// Signature, issuer, expiry and (when configured) audience are all
// enforced; every failure collapses to ErrTokenInvalid.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (*model.IDPClaims, error) {
	doc, err := s.getDiscovery(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to load identity provider discovery document")
		return nil, ErrTokenInvalid
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(doc.Issuer),
		jwt.WithExpirationRequired(),
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &model.IDPClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		return s.signingKey(ctx, kid)
	}, opts...)
	if err != nil || !token.Valid {
		logger.Log.WithError(err).Info("Token verification failed")
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		logger.Log.Info("Token verification failed: missing sub claim")
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// signingKey selects the provider's public key matching the token's kid.
func (s *AuthService) signingKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	jwks, err := s.getJWKS(ctx)
	if err != nil {
		return nil, err
	}
	for _, key := range jwks.Keys {
		if key.Kid == kid {
			return rsaPublicKey(key)
		}
	}
	return nil, fmt.Errorf("signing key %q not found", kid)
}

func (s *AuthService) getDiscovery(ctx context.Context) (*discoveryDocument, error) {
	doc := &discoveryDocument{}
	url := s.issuer + "/.well-known/openid-configuration"
	if err := s.fetchCachedJSON(ctx, discoveryCacheKey, url, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *AuthService) getJWKS(ctx context.Context) (*jwksDocument, error) {
	doc, err := s.getDiscovery(ctx)
	if err != nil {
		return nil, err
	}
	jwks := &jwksDocument{}
	if err := s.fetchCachedJSON(ctx, jwksCacheKey, doc.JWKSURI, jwks); err != nil {
		return nil, err
	}
	return jwks, nil
}

// fetchCachedJSON reads the cached body for key, fetching and storing it
// first when absent or expired. Concurrent refreshes of the same key are
// allowed to race; the overwrite is idempotent.
func (s *AuthService) fetchCachedJSON(ctx context.Context, key, url string, v interface{}) error {
	if body, ok := s.cache.Get(key); ok {
		return json.Unmarshal(body, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body := json.NewDecoder(resp.Body)
	var rawBody json.RawMessage
	if err := body.Decode(&rawBody); err != nil {
		return err
	}
	if err := json.Unmarshal(rawBody, v); err != nil {
		return err
	}

	s.cache.Set(key, rawBody, metadataCacheTTL)
	return nil
}

// rsaPublicKey builds an rsa.PublicKey from the JWK modulus and exponent.
func rsaPublicKey(key jsonWebKey) (*rsa.PublicKey, error) {
	if key.Kty != "RSA" {
		return nil, fmt.Errorf("unsupported key type %q", key.Kty)
	}
	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
