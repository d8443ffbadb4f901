package types

import (
	"time"
)

// NetworkID identifies a Lattice network (16 lowercase hex characters)
type NetworkID string

// Network is the central API's network resource. The DNS synchronizer
// round-trips this whole object on update, so every field central serves
// must survive a decode/encode cycle.
type Network struct {
	ID                    NetworkID      `json:"id"`
	Description           string         `json:"description,omitempty"`
	Config                *NetworkConfig `json:"config,omitempty"`
	RulesSource           string         `json:"rulesSource,omitempty"`
	OwnerID               string         `json:"ownerId,omitempty"`
	CreationTime          int64          `json:"creationTime,omitempty"`
	TotalMemberCount      int            `json:"totalMemberCount,omitempty"`
	AuthorizedMemberCount int            `json:"authorizedMemberCount,omitempty"`
}

// NetworkConfig is the mutable configuration sub-object owned by the
// network resource. Updates replace the dns field and nothing else.
type NetworkConfig struct {
	Name              string        `json:"name,omitempty"`
	Private           bool          `json:"private"`
	EnableBroadcast   bool          `json:"enableBroadcast"`
	MTU               int           `json:"mtu,omitempty"`
	MulticastLimit    int           `json:"multicastLimit,omitempty"`
	DNS               *DNS          `json:"dns,omitempty"`
	Routes            []Route       `json:"routes,omitempty"`
	IPAssignmentPools []IPRange     `json:"ipAssignmentPools,omitempty"`
	V4AssignMode      *V4AssignMode `json:"v4AssignMode,omitempty"`
	V6AssignMode      *V6AssignMode `json:"v6AssignMode,omitempty"`
	CreationTime      int64         `json:"creationTime,omitempty"`
	LastModified      int64         `json:"lastModified,omitempty"`
}

// DNS is the published DNS settings of a network. Domain is stored in
// relative form (no trailing dot) on the wire.
type DNS struct {
	Domain  string   `json:"domain"`
	Servers []string `json:"servers"`
}

// Route is a managed route entry
type Route struct {
	Target string `json:"target"`
	Via    string `json:"via,omitempty"`
}

// IPRange is one address-assignment pool
type IPRange struct {
	Start string `json:"ipRangeStart"`
	End   string `json:"ipRangeEnd"`
}

// V4AssignMode controls automatic IPv4 assignment
type V4AssignMode struct {
	Auto bool `json:"auto"`
}

// V6AssignMode controls automatic IPv6 assignment
type V6AssignMode struct {
	Auto bool `json:"auto"`
}

// Member is a network member as served by the central API
type Member struct {
	ID          string        `json:"id"`
	NetworkID   NetworkID     `json:"networkId"`
	NodeID      string        `json:"nodeId"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Hidden      bool          `json:"hidden,omitempty"`
	LastSeen    int64         `json:"lastSeen,omitempty"`
	Config      *MemberConfig `json:"config,omitempty"`
}

// MemberConfig is the member's per-network configuration
type MemberConfig struct {
	Authorized    bool     `json:"authorized"`
	IPAssignments []string `json:"ipAssignments,omitempty"`
}

// NodeNetwork is a joined network as reported by the local node agent
type NodeNetwork struct {
	ID                NetworkID         `json:"id"`
	Name              string            `json:"name,omitempty"`
	Status            NodeNetworkStatus `json:"status"`
	Type              string            `json:"type,omitempty"` // "PRIVATE" or "PUBLIC"
	MAC               string            `json:"mac,omitempty"`
	AssignedAddresses []string          `json:"assignedAddresses"` // CIDR notation
}

// NodeNetworkStatus represents the agent-side state of a joined network
type NodeNetworkStatus string

const (
	NodeNetworkOK           NodeNetworkStatus = "OK"
	NodeNetworkRequesting   NodeNetworkStatus = "REQUESTING_CONFIGURATION"
	NodeNetworkAccessDenied NodeNetworkStatus = "ACCESS_DENIED"
	NodeNetworkNotFound     NodeNetworkStatus = "NOT_FOUND"
)

// PublishRecord is one audit entry for a DNS publish attempt
type PublishRecord struct {
	ID        string         `json:"id"`
	NetworkID NetworkID      `json:"networkId"`
	Domain    string         `json:"domain"` // relative form
	Server    string         `json:"server"`
	Outcome   PublishOutcome `json:"outcome"`
	Detail    string         `json:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// PublishOutcome represents the result of a publish attempt
type PublishOutcome string

const (
	OutcomePublished PublishOutcome = "published"
	OutcomeSkipped   PublishOutcome = "skipped"
	OutcomeFailed    PublishOutcome = "failed"
)
