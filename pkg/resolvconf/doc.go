// Package resolvconf renders resolver configuration for hosts that
// should use the published nameservers.
//
// # Overview
//
// Publishing DNS to the control plane covers clients that honor
// network-pushed settings. Hosts that manage /etc/resolv.conf by hand
// (servers, containers, minimal images) need the equivalent file on
// disk; this package writes it.
//
// The generated file names every published server, sets the network
// domain as the search suffix so bare member names resolve, and tunes
// options for an authority that is one hop away:
//
//	# managed by latticedns
//	# Generated automatically - do not edit manually
//
//	nameserver 10.147.17.10
//	search domain
//	options ndots:1 timeout:2 attempts:2
//
// # Atomicity
//
// The resolver library reads resolv.conf without locking, so the file
// must never be observable half-written. Generate stages content in a
// temp file inside the target directory and renames it into place;
// rename within one filesystem is atomic, and the temp file is removed
// on any failure.
//
// # Usage
//
//	err := resolvconf.Generate("/etc/resolv.conf.lattice", domain, servers)
//
// Writing over the live /etc/resolv.conf is the operator's call; the
// sync command only does it when --resolvconf-out names it explicitly.
//
// # See Also
//
//   - pkg/names for the Domain type and its Relative form
//   - cmd/latticedns sync --resolvconf-out
package resolvconf
