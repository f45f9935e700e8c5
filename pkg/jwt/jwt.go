package jwt

import (
	"errors"
	"fmt"

	"Spotlight/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoVerificationKey = errors.New("jwt: no verification key configured")

// Claims Clerk session token claims; Subject carries the Clerk user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks session tokens with an RS256 public key or, for local setups, an HS256 secret.
type Verifier struct {
	publicKey any
	secret    []byte
	issuer    string
}

func NewVerifier(conf *config.Jwt) (*Verifier, error) {
	v := &Verifier{issuer: conf.Issuer}

	if conf.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(conf.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("parse jwt public key: %w", err)
		}
		v.publicKey = key
	}
	// 配置了公钥时只接受 RS256，HS256 仅用于本地开发
	if conf.Secret != "" && v.publicKey == nil {
		v.secret = []byte(conf.Secret)
	}
	if v.publicKey == nil && v.secret == nil {
		return nil, ErrNoVerificationKey
	}

	return v, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodRSA:
		if v.publicKey != nil {
			return v.publicKey, nil
		}
	case *jwt.SigningMethodHMAC:
		if v.secret != nil {
			return v.secret, nil
		}
	}
	return nil, jwt.ErrSignatureInvalid
}

func (v *Verifier) ParseToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "HS256"}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, v.keyFunc, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject == "" {
		return nil, errors.New("jwt: missing sub claim")
	}

	return claims, nil
}
