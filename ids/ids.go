// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entity kind prefixes. Every identifier carries its kind so that a bare
// ID in a log line or frame state is self-describing.
const (
	KindContent      = "content"
	KindRemix        = "remix"
	KindEnhancement  = "enhancement"
	KindTransaction  = "tx"
	KindEngagement   = "engagement"
	KindPoll         = "poll"
	KindNotification = "notification"
)

const suffixLen = 9

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns an identifier of the form kind_<unix-millis>_<suffix>.
// The millisecond prefix makes identifiers of one kind sort roughly by
// creation time; the random suffix is the collision guard for calls
// landing in the same millisecond.
func New(kind string) string {
	return kind + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + suffix()
}

// Kind reports the kind prefix of an identifier, or "" if the value
// does not look like one of ours.
func Kind(id string) string {
	i := strings.IndexByte(id, '_')
	if i <= 0 {
		return ""
	}
	return id[:i]
}

func suffix() string {
	b := make([]byte, suffixLen)
	if _, err := rand.Read(b); err != nil {
		// Identifier generation has no recoverable failure mode: if the
		// system entropy source is broken nothing else will work either.
		panic(fmt.Sprintf("ids: reading entropy: %v", err))
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
