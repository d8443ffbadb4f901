package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"

	"github.com/latticelabs/latticedns/pkg/names"
)

// DNSChecker verifies that a nameserver answers authoritatively for a
// published domain by performing a real exchange against it.
type DNSChecker struct {
	// Server is the nameserver IP or hostname to query
	Server string

	// Port is the nameserver port (default: 53)
	Port int

	// Question is the fully qualified name to ask for
	Question string

	// Qtype is the record type to request (default: SOA, which an
	// authority always holds for its zone root)
	Qtype uint16

	// Net is the transport to exchange over, "udp" or "tcp" (default: udp)
	Net string

	// Timeout is the exchange timeout (default: 5 seconds)
	Timeout time.Duration
}

// NewDNSChecker creates a checker that asks server for the SOA of domain.
func NewDNSChecker(server string, domain names.Domain) *DNSChecker {
	return &DNSChecker{
		Server:   server,
		Port:     53,
		Question: string(domain),
		Qtype:    dns.TypeSOA,
		Net:      "udp",
		Timeout:  5 * time.Second,
	}
}

// Check performs the DNS verification
func (d *DNSChecker) Check(ctx context.Context) Result {
	start := time.Now()

	msg := new(dns.Msg)
	msg.SetQuestion(d.Question, d.Qtype)

	client := &dns.Client{
		Net:     d.Net,
		Timeout: d.Timeout,
	}
	addr := net.JoinHostPort(d.Server, strconv.Itoa(d.Port))

	resp, rtt, err := client.ExchangeContext(ctx, msg, addr)
	if err != nil {
		return Result{
			Healthy:   false,
			Message:   fmt.Sprintf("exchange with %s failed: %v", addr, err),
			CheckedAt: start,
			Duration:  time.Since(start),
		}
	}

	if resp.Rcode != dns.RcodeSuccess {
		return Result{
			Healthy:   false,
			Message:   fmt.Sprintf("%s answered %s for %s", addr, dns.RcodeToString[resp.Rcode], d.Question),
			CheckedAt: start,
			Duration:  time.Since(start),
		}
	}

	return Result{
		Healthy:   true,
		Message:   fmt.Sprintf("%s answered %s for %s in %s", addr, dns.RcodeToString[resp.Rcode], d.Question, rtt),
		CheckedAt: start,
		Duration:  time.Since(start),
	}
}

// Type returns the verification check type
func (d *DNSChecker) Type() CheckType {
	return CheckTypeDNS
}

// WithPort sets the nameserver port
func (d *DNSChecker) WithPort(port int) *DNSChecker {
	d.Port = port
	return d
}

// WithNet sets the exchange transport ("udp" or "tcp")
func (d *DNSChecker) WithNet(network string) *DNSChecker {
	d.Net = network
	return d
}

// WithQtype sets the record type to request
func (d *DNSChecker) WithQtype(qtype uint16) *DNSChecker {
	d.Qtype = qtype
	return d
}

// WithTimeout sets the exchange timeout
func (d *DNSChecker) WithTimeout(timeout time.Duration) *DNSChecker {
	d.Timeout = timeout
	return d
}
