package ingest

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	"github.com/rs/zerolog"

	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/types"
)

// Catalog receives validated names and their addresses. The record
// store itself lives outside latticedns; the embedding DNS authority
// registers an implementation.
type Catalog interface {
	Add(fqdn names.Fqdn, addrs []netip.Addr) error
}

// MemberLister lists a network's members. *central.Client satisfies it.
type MemberLister interface {
	Members(ctx context.Context, id types.NetworkID) ([]types.Member, error)
}

// Report summarizes one ingestion pass.
type Report struct {
	// Entered counts catalog entries registered.
	Entered int
	// Skipped counts member names rejected by sanitization. A skip is
	// a per-record data quality diagnostic, never a batch failure.
	Skipped int
	// Unaddressed counts members with no usable IP assignment.
	Unaddressed int
}

// Ingestor turns a network's member list into catalog entries.
type Ingestor struct {
	members MemberLister
	logger  zerolog.Logger
}

// NewIngestor creates an Ingestor over a member source.
func NewIngestor(members MemberLister, logger zerolog.Logger) *Ingestor {
	return &Ingestor{
		members: members,
		logger:  log.Component(logger, "ingest"),
	}
}

// Run lists the network's members and registers entries under the
// effective domain. Every member with at least one parseable address
// gets an entry under its node ID; members with a display name get a
// second entry under the sanitized name.
//
// A display name that fails sanitization is logged and skipped; the
// rest of the batch continues. Fetching the member list or a catalog
// write failing are hard errors.
func (i *Ingestor) Run(ctx context.Context, networkID types.NetworkID, domain names.Domain, catalog Catalog) (Report, error) {
	var report Report

	members, err := i.members.Members(ctx, networkID)
	if err != nil {
		return report, fmt.Errorf("list members: %w", err)
	}

	for _, member := range members {
		addrs := i.memberAddrs(member)
		if len(addrs) == 0 {
			report.Unaddressed++
			i.logger.Debug().
				Str("member_id", member.ID).
				Msg("Member has no usable address, nothing to register")
			continue
		}

		// Canonical entry under the node ID.
		if added, err := i.add(catalog, member.NodeID, domain, addrs, member.ID, &report); err != nil {
			return report, err
		} else if added {
			report.Entered++
		}

		// Friendly entry under the display name, when one is set.
		if strings.TrimSpace(member.Name) == "" {
			continue
		}
		if added, err := i.add(catalog, member.Name, domain, addrs, member.ID, &report); err != nil {
			return report, err
		} else if added {
			report.Entered++
		}
	}

	i.logger.Info().
		Str("network_id", string(networkID)).
		Int("entered", report.Entered).
		Int("skipped", report.Skipped).
		Int("unaddressed", report.Unaddressed).
		Msg("Members ingested")
	return report, nil
}

// add sanitizes one label and registers it. A validation failure is
// counted and logged, not returned; catalog errors propagate.
func (i *Ingestor) add(catalog Catalog, label string, domain names.Domain, addrs []netip.Addr, memberID string, report *Report) (bool, error) {
	hostname, err := names.Sanitize(label)
	if err != nil {
		report.Skipped++
		i.logger.Warn().
			Err(err).
			Str("member_id", memberID).
			Msg("Member name not entered into catalog")
		return false, nil
	}

	fqdn := hostname.FQDN(domain)
	if err := catalog.Add(fqdn, addrs); err != nil {
		return false, fmt.Errorf("register %s: %w", fqdn, err)
	}
	return true, nil
}

func (i *Ingestor) memberAddrs(member types.Member) []netip.Addr {
	if member.Config == nil {
		return nil
	}

	addrs := make([]netip.Addr, 0, len(member.Config.IPAssignments))
	for _, assignment := range member.Config.IPAssignments {
		addr, err := netip.ParseAddr(assignment)
		if err != nil {
			i.logger.Warn().
				Str("member_id", member.ID).
				Str("assignment", assignment).
				Msg("Unparseable IP assignment dropped")
			continue
		}
		addrs = append(addrs, addr)
	}
	return addrs
}
