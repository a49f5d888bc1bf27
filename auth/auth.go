// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"strconv"
)

// UserHeader is the trusted identity header. The deployment fronts this
// service with a gateway that authenticates callers and stamps the
// header; the service itself holds no credentials or sessions.
const UserHeader = "X-User-ID"

// FramePrefix marks identities derived from a frame message fid.
const FramePrefix = "fc_"

// UserID returns the caller identity from the trusted header, or ""
// when the request is anonymous.
func UserID(r *http.Request) string {
	return r.Header.Get(UserHeader)
}

// FrameUserID maps a frame message fid to a caller identity.
func FrameUserID(fid int64) string {
	return FramePrefix + strconv.FormatInt(fid, 10)
}
