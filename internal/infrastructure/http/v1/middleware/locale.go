package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appctx "imaut/internal/core/context"
)

// Locale stores the Accept-Language preferences in the request context.
// Violation messages are resolved against them.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		if locales := ParseAcceptLanguage(c.GetHeader("Accept-Language")); len(locales) > 0 {
			ctx := appctx.WithLocales(c.Request.Context(), locales)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// ParseAcceptLanguage returns language tags ordered by quality, highest first.
// Wildcards and tags with q=0 are dropped.
func ParseAcceptLanguage(header string) []string {
	type weighted struct {
		tag string
		q   float64
	}

	var tags []weighted
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q <= 0 {
			continue
		}
		tags = append(tags, weighted{tag: tag, q: q})
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].q > tags[j].q })

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.tag)
	}
	return out
}
