package models

// PoolKind identifies the identifier class a pool hands out
type PoolKind string

const (
	PoolMAC  PoolKind = "mac"
	PoolUUID PoolKind = "uuid"
	PoolWWNN PoolKind = "wwnn"
	PoolWWPN PoolKind = "wwpn"
)

// PoolKinds lists every valid pool kind
var PoolKinds = []string{string(PoolMAC), string(PoolUUID), string(PoolWWNN), string(PoolWWPN)}

// AssignmentOrder controls how identifiers are handed out of a pool
type AssignmentOrder string

const (
	OrderSequential AssignmentOrder = "sequential"
	OrderDefault    AssignmentOrder = "default"
)

// Pool represents a named range of unique identifiers
type Pool struct {
	Kind  PoolKind
	Name  string
	From  string
	To    string
	Order AssignmentOrder
	Org   string
}
