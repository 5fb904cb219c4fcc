package ipv4_test

import (
	"testing"

	"github.com/markrepedersen/netparser/ipv4"
	"github.com/markrepedersen/netparser/parse"
)

func udpPacket(t *testing.T) []byte {
	t.Helper()
	header := []byte{
		0x45, 0x00, // version=4 ihl=5, DSCP/ECN=0
		0x00, 28, // total length = 20 + 8
		0x00, 0x00, // id
		0x00, 0x00, // flags/frag
		64,         // ttl
		17,         // protocol = UDP
		0x00, 0x00, // checksum
		192, 168, 1, 1, // src
		192, 168, 1, 2, // dst
	}
	udp := []byte{
		0x00, 0x35, // src port 53
		0xC3, 0x50, // dst port 50000
		0x00, 0x08, // length = 8 (header only, no payload)
		0x00, 0x00, // checksum
	}
	return append(header, udp...)
}

func TestDecodeIPv4WithUDPPayload(t *testing.T) {
	buf := udpPacket(t)
	c := parse.NewCursor(buf)
	p, err := ipv4.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Version.Uint8() != 4 || p.IHL.Uint8() != 5 {
		t.Fatalf("version/ihl = %v/%v", p.Version, p.IHL)
	}
	if p.Source.String() != "192.168.1.1" || p.Destination.String() != "192.168.1.2" {
		t.Fatalf("addrs = %s -> %s", p.Source, p.Destination)
	}
	if p.Payload.Kind != ipv4.L4UDP {
		t.Fatalf("expected UDP payload, got kind %v", p.Payload.Kind)
	}
	if p.Payload.UDP.SourcePort != 53 {
		t.Fatalf("udp src port = %d", p.Payload.UDP.SourcePort)
	}
}

func TestDecodeIPv4WithOptions(t *testing.T) {
	header := []byte{
		0x46, 0x00, // version=4 ihl=6 (one extra 32-bit option word)
		0x00, 32, // total length = 24-byte header + 8-byte UDP datagram
		0x00, 0x00,
		0x00, 0x00,
		64,
		17, // UDP
		0x00, 0x00,
		10, 0, 0, 1,
		10, 0, 0, 2,
		1, 2, 3, 4, // 4 bytes of IPv4 options
		0x00, 0x35, 0xC3, 0x50, 0x00, 0x08, 0x00, 0x00, // UDP header
	}
	c := parse.NewCursor(header)
	p, err := ipv4.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.IHL.Uint8() != 6 {
		t.Fatalf("ihl = %v", p.IHL)
	}
	// The option word must not shift the layer-4 decode: the UDP header
	// after the options still parses cleanly.
	if p.Payload.Kind != ipv4.L4UDP || p.Payload.UDP.SourcePort != 53 {
		t.Fatalf("payload = %+v", p.Payload)
	}
}

func TestDecodeUnknownProtocolYieldsUnknown(t *testing.T) {
	header := []byte{
		0x45, 0x00,
		0x00, 21, // 20-byte header + 1 byte payload
		0x00, 0x00,
		0x00, 0x00,
		64,
		253, // unassigned/experimental protocol number
		0x00, 0x00,
		10, 0, 0, 1,
		10, 0, 0, 2,
		0xAB,
	}
	c := parse.NewCursor(header)
	p, err := ipv4.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Payload.Kind != ipv4.L4Unknown {
		t.Fatalf("expected Unknown payload, got %v", p.Payload.Kind)
	}
	if p.Payload.Unknown.Len() != 1 {
		t.Fatalf("unknown payload len = %d", p.Payload.Unknown.Len())
	}
}

func TestDecodeTruncatedHeaderFails(t *testing.T) {
	c := parse.NewCursor([]byte{0x45, 0x00, 0x00})
	_, err := ipv4.Decode(c)
	if err == nil {
		t.Fatal("expected error")
	}
}
