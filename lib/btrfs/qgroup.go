// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

// QgroupInherit specifies the quota groups a newly created subvolume
// or snapshot should inherit. The sync control surface only needs to
// construct one and hand it through to the subvolume-creation APIs
// that consume it; nothing in this package interprets the contents.
type QgroupInherit struct {
	groups []uint64
}

// NewQgroupInherit returns an empty inheritance specification.
func NewQgroupInherit() *QgroupInherit {
	return &QgroupInherit{}
}

// AddGroup adds a quota group, by qgroup id, to the set a new
// subvolume will inherit.
func (q *QgroupInherit) AddGroup(qgroupID uint64) {
	q.groups = append(q.groups, qgroupID)
}

// Groups returns the qgroup ids added so far. The returned slice is a
// copy; mutating it does not affect the specification.
func (q *QgroupInherit) Groups() []uint64 {
	return append([]uint64(nil), q.groups...)
}
