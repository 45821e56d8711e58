// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests of response bodies.
//
// HMAC instances are pooled to avoid an allocation per request; a Hasher is
// safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a [Hasher] keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the hex-encoded HMAC-SHA256 digest of data.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether hexDigest is the digest of data. The comparison is
// constant-time.
func (h *Hasher) Verify(data []byte, hexDigest string) bool {
	expected, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), expected)
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. Unlike [Hasher] it allocates a new HMAC on every call.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
