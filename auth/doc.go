// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves caller identity from the trusted request header.

Authentication proper happens upstream; this service trusts X-User-ID
as stamped by the gateway. Frame webhook callers carry no header and
are identified by their fid instead:

	userID := auth.FrameUserID(payload.UntrustedData.FID) // "fc_<fid>"
*/
package auth
