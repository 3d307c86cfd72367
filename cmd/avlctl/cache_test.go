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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheLookupAndGetLookup(t *testing.T) {
	c := newLookupCache(lookupCacheExpiration)
	key := "42"

	// Initially, nothing is cached.
	if _, ok := getLookup(c, key); ok {
		t.Errorf("getLookup(%q) reported a cached answer on an empty cache", key)
	}

	cacheLookup(c, key, true)
	if found, ok := getLookup(c, key); !ok || !found {
		t.Errorf("getLookup(%q) = %v, %v; want true, true", key, found, ok)
	}

	cacheLookup(c, key, false)
	if found, ok := getLookup(c, key); !ok || found {
		t.Errorf("getLookup(%q) = %v, %v; want false, true", key, found, ok)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"

	cacheLookup(c, key, true)
	if _, ok := getLookup(c, key); !ok {
		t.Errorf("getLookup(%q) missed immediately after caching", key)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := getLookup(c, key); ok {
		t.Errorf("After expiration, getLookup(%q) still hit", key)
	}
}
