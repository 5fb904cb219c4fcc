package ethernet_test

import (
	"strings"
	"testing"

	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/ethernet"
	"github.com/markrepedersen/netparser/parse"
)

// mdnsQuery builds an Ethernet/IPv4/UDP multicast mDNS query with a
// 33-byte filler payload (the question/answer section isn't asserted on,
// only the header fields).
func mdnsQuery() []byte {
	buf := []byte{
		// Ethernet: dst, src, ethertype=IPv4
		0x01, 0x00, 0x5E, 0x00, 0x00, 0xFB,
		0x58, 0x00, 0xE3, 0x1D, 0x1E, 0x6B,
		0x08, 0x00,
		// IPv4 header
		0x45, 0x00, 0x00, 0x3D, 0x62, 0xB8, 0x00, 0x00,
		0x01, 0x11, 0xB4, 0x11,
		0xC0, 0xA8, 0x01, 0x43, // src 192.168.1.67
		0xE0, 0x00, 0x00, 0xFB, // dst 224.0.0.251
		// UDP header
		0x14, 0xE9, 0x14, 0xE9, 0x00, 0x29, 0xAE, 0x6D,
	}
	payload := make([]byte, 33)
	for i := range payload {
		payload[i] = byte(i)
	}
	return append(buf, payload...)
}

func TestDecodeMDNSQuery(t *testing.T) {
	c := parse.NewCursor(mdnsQuery())
	f, err := ethernet.Decode(c)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := f.Destination.String(); got != "01:00:5E:00:00:FB" {
		t.Fatalf("Destination = %s", got)
	}
	if got := f.Source.String(); got != "58:00:E3:1D:1E:6B" {
		t.Fatalf("Source = %s", got)
	}
	if !f.EtherTypeOk || f.EtherType != common.EtherTypeIPv4 {
		t.Fatalf("EtherType = %v, ok=%v", f.EtherType, f.EtherTypeOk)
	}
	if f.Payload.Kind != ethernet.L2IPv4 {
		t.Fatalf("Payload.Kind = %v", f.Payload.Kind)
	}
	ip := f.Payload.IPv4
	if got := ip.Source.String(); got != "192.168.1.67" {
		t.Fatalf("IPv4 source = %s", got)
	}
	if got := ip.Destination.String(); got != "224.0.0.251" {
		t.Fatalf("IPv4 destination = %s", got)
	}
	if ip.Protocol != common.IPProtoUDP {
		t.Fatalf("IPv4 protocol = %v", ip.Protocol)
	}
	if ip.Payload.UDP == nil {
		t.Fatalf("expected UDP payload")
	}
	udpPkt := ip.Payload.UDP
	if udpPkt.SourcePort != 5353 || udpPkt.DestinationPort != 5353 {
		t.Fatalf("UDP ports = %d/%d", udpPkt.SourcePort, udpPkt.DestinationPort)
	}
	if udpPkt.Length != 41 {
		t.Fatalf("UDP length = %d", udpPkt.Length)
	}

	if rem := c.Remaining(); len(rem) != 0 {
		t.Fatalf("expected no remaining bytes, got %d", len(rem))
	}
}

// Feeding only the last 3 bytes of the mDNS buffer must fail with a chain
// that names "Ethernet frame" as context and bottoms out on a NeedMore
// failure.
func TestDecodeTruncatedEthernet(t *testing.T) {
	full := mdnsQuery()
	truncated := full[len(full)-3:]
	c := parse.NewCursor(truncated)
	_, err := ethernet.Decode(c)
	if err == nil {
		t.Fatal("expected decode failure on truncated input")
	}
	pe, ok := err.(*parse.Error)
	if !ok {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
	chain := pe.Chain()
	if len(chain) == 0 {
		t.Fatal("expected non-empty error chain")
	}
	joined := strings.Join(chain, " | ")
	if !strings.Contains(joined, "Ethernet frame") {
		t.Fatalf("chain missing 'Ethernet frame' context: %v", chain)
	}
	if !strings.Contains(chain[0], "need more input") {
		t.Fatalf("innermost chain entry should be NeedMore: %v", chain)
	}
}

func TestDecodeUnknownEtherType(t *testing.T) {
	buf := []byte{
		0, 0, 0, 0, 0, 1,
		0, 0, 0, 0, 0, 2,
		0x12, 0x34, // unrecognised ethertype
		0xDE, 0xAD, 0xBE, 0xEF,
	}
	f, err := ethernet.Decode(parse.NewCursor(buf))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.EtherTypeOk {
		t.Fatal("expected EtherTypeOk = false for unrecognised value")
	}
	if f.Payload.Kind != ethernet.L2Unknown {
		t.Fatalf("Payload.Kind = %v, want L2Unknown", f.Payload.Kind)
	}
	if f.Payload.Unknown.Len() != 4 {
		t.Fatalf("Unknown payload length = %d", f.Payload.Unknown.Len())
	}
}
