package http

import (
	"net/http"
	"time"

	"github.com/KMTonmoy/allmartavenue-api/configs"
	"github.com/KMTonmoy/allmartavenue-api/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type TokenHandler struct {
	cfg      configs.Config
	verifier security.CredentialVerifier
}

func NewTokenHandler(cfg configs.Config, verifier security.CredentialVerifier) *TokenHandler {
	return &TokenHandler{cfg: cfg, verifier: verifier}
}

type loginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IssueToken is POST /v1/token (form or JSON). A valid login yields an admin
// bearer token whose expiry is the configured session window (24h).
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBind(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	acct, ok := h.verifier.Verify(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	now := time.Now()
	ttl := h.cfg.Security.TokenTTL
	claims := jwt.MapClaims{
		"iss":   h.cfg.Security.Issuer,
		"aud":   h.cfg.Security.Audience,
		"sub":   acct.Username,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
		"perms": acct.Perms,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Security.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int64(ttl.Seconds()),
	})
}
