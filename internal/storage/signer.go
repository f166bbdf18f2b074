package storage

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSignedURLTTL is how long a signed file link stays valid. Clients
// that let it lapse must request a fresh link.
const DefaultSignedURLTTL = 60 * time.Second

type URLSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewURLSigner(secret string, ttl time.Duration) *URLSigner {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &URLSigner{secret: []byte(secret), ttl: ttl}
}

type fileClaims struct {
	Path      string `json:"path"`
	CompanyID string `json:"company_id"`
	FileName  string `json:"file_name"`
	jwt.RegisteredClaims
}

// Sign issues a short-lived token granting read access to one blob.
func (s *URLSigner) Sign(path, companyID, fileName string) (string, error) {
	now := time.Now().UTC()
	claims := fileClaims{
		Path:      path,
		CompanyID: companyID,
		FileName:  fileName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token and returns the blob path, owning company and the
// download file name. Expired tokens fail here.
func (s *URLSigner) Verify(tokenString string) (path, companyID, fileName string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &fileClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", "", err
	}

	claims, ok := token.Claims.(*fileClaims)
	if !ok || !token.Valid || claims.Path == "" {
		return "", "", "", fmt.Errorf("invalid file token")
	}
	return claims.Path, claims.CompanyID, claims.FileName, nil
}
