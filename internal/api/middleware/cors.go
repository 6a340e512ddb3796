package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CORSConfig represents CORS configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSConfig allows every method and request header, but only from origin
func DefaultCORSConfig(origin string) CORSConfig {
	var origins []string
	if origin != "" {
		origins = []string{origin}
	}
	return CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        600,
	}
}

// CORS returns a CORS middleware with the given configuration. Headers are
// only emitted for allowed origins; preflight requests are always answered
// with 204.
func CORS(config CORSConfig) gin.HandlerFunc {
	allowAll := lo.Contains(config.AllowOrigins, "*")
	echoHeaders := lo.Contains(config.AllowHeaders, "*")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		c.Writer.Header().Add("Vary", "Origin")

		allowed := origin != "" && (allowAll || lo.Contains(config.AllowOrigins, origin))
		if allowed {
			if allowAll {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
			}

			if len(config.ExposeHeaders) > 0 {
				c.Header("Access-Control-Expose-Headers", strings.Join(config.ExposeHeaders, ", "))
			}
			if config.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		if allowed {
			if len(config.AllowMethods) > 0 {
				c.Header("Access-Control-Allow-Methods", strings.Join(config.AllowMethods, ", "))
			}
			if echoHeaders {
				if requested := c.Request.Header.Get("Access-Control-Request-Headers"); requested != "" {
					c.Header("Access-Control-Allow-Headers", requested)
				}
			} else if len(config.AllowHeaders) > 0 {
				c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowHeaders, ", "))
			}
			if config.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
			}
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}
