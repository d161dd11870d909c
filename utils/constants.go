package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthTokenTTL bounds both the JWT lifetime and its cache entry.
const AuthTokenTTL = 24 * time.Hour
