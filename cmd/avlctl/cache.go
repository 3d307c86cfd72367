// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Lookup answers are only valid until the next mutation, which flushes
	// the cache, so the expiration is a backstop for long idle sessions.
	lookupCacheExpiration = 5 * time.Minute
	lookupCacheCleanup    = 10 * time.Minute
)

func newLookupCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, lookupCacheCleanup)
}

func cacheLookup(c *cache.Cache, key string, found bool) {
	c.Set(key, found, cache.DefaultExpiration)
}

// getLookup returns the cached answer for key and whether one was cached.
func getLookup(c *cache.Cache, key string) (found bool, ok bool) {
	val, ok := c.Get(key)
	if !ok {
		return false, false
	}
	return val.(bool), true
}
