// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the in-memory content & revenue-share ledger.

A Store owns every entity collection (creators, content, remixes,
enhancements, transactions, engagements, polls, notifications) behind a
single mutex. Construct one per process or test fixture:

	st := store.New()

# Invariants

  - Identifiers are unique per entity kind for the store's lifetime.
  - remixCount and engagementCount on a content piece always equal the
    number of remix/engagement records referencing it, because the
    increment happens inside the same critical section as the creating
    write. Records referencing unknown content are still created; the
    dangling reference is tolerated and no counter moves.
  - A poll's vote ledger holds at most one entry per voter, ever. The
    end time is authoritative over the stored status flag and is
    checked lazily at vote time.
  - Completed transactions advance currentRevenue on the content and
    totalRevenue on its owning creator; pending/failed ones do not.

# Failure Semantics

Lookups return (zero, false) for unknown identifiers; policy rejections
(duplicate vote, ended poll) are boolean false. The store never returns
errors for expected negative outcomes. Range and enum validation is the
HTTP boundary's job; documented expectations are revenue shares in
[0, 100] for content and [0, 50] for remix proposals, non-negative
costs and amounts.

# Concurrency

All operations are synchronous, never block on I/O, and take no
context. The single mutex is the mutual-exclusion discipline that keeps
counter read-modify-writes atomic under a multi-threaded runtime.
*/
package store
