package common_test

import (
	"testing"

	"github.com/markrepedersen/netparser/common"
)

func TestMacAddrString(t *testing.T) {
	m := common.MacAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if got := m.String(); got != "AA:BB:CC:DD:EE:FF" {
		t.Fatalf("MacAddr.String() = %q", got)
	}
}

func TestIPv4AddrString(t *testing.T) {
	a := common.IPv4Addr{192, 168, 1, 1}
	if got := a.String(); got != "192.168.1.1" {
		t.Fatalf("IPv4Addr.String() = %q", got)
	}
}

func TestIPv6AddrStringCompressed(t *testing.T) {
	a := common.IPv6Addr{0x20, 0x01, 0x0d, 0xb8}
	got := a.String()
	if got != "2001:db8::" {
		t.Fatalf("IPv6Addr.String() = %q, want %q", got, "2001:db8::")
	}
}

func TestBlobShortPreview(t *testing.T) {
	b := common.NewBlob([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if got := b.String(); got != "de ad be ef" {
		t.Fatalf("Blob.String() = %q", got)
	}
	if b.Len() != 4 {
		t.Fatalf("Blob.Len() = %d", b.Len())
	}
}

func TestBlobTruncatesLongPreview(t *testing.T) {
	data := make([]byte, 25)
	for i := range data {
		data[i] = byte(i)
	}
	b := common.NewBlob(data)
	got := b.String()
	if got[len(got)-len(" + 5 bytes"):] != " + 5 bytes" {
		t.Fatalf("Blob.String() = %q, want suffix ' + 5 bytes'", got)
	}
}

func TestBlobCopiesInput(t *testing.T) {
	data := []byte{1, 2, 3}
	b := common.NewBlob(data)
	data[0] = 0xFF
	if b.Bytes()[0] != 1 {
		t.Fatalf("Blob retained a reference to caller's slice")
	}
}

func TestEtherTypeKnownValues(t *testing.T) {
	cases := []struct {
		v    uint16
		want common.EtherType
	}{
		{0x0800, common.EtherTypeIPv4},
		{0x86DD, common.EtherTypeIPv6},
		{0x0806, common.EtherTypeARP},
	}
	for _, c := range cases {
		got, ok := common.LookupEtherType(c.v)
		if !ok || got != c.want {
			t.Fatalf("LookupEtherType(0x%04x) = %v, %v", c.v, got, ok)
		}
	}
}

func TestEtherTypeUnknownValue(t *testing.T) {
	_, ok := common.LookupEtherType(0xFFFF)
	if ok {
		t.Fatal("expected LookupEtherType(0xFFFF) to be unrecognised")
	}
}

func TestIPProtoString(t *testing.T) {
	if got := common.IPProtoTCP.String(); got != "Transmission Control [RFC793]" {
		t.Fatalf("IPProtoTCP.String() = %q", got)
	}
	unknown := common.IPProto(200)
	if got := unknown.String(); got != "IPProto(200)" {
		t.Fatalf("unknown IPProto.String() = %q", got)
	}
}

func TestARPOpString(t *testing.T) {
	if common.ARPRequest.String() != "request" {
		t.Fatalf("ARPRequest.String() = %q", common.ARPRequest.String())
	}
	if common.ARPReply.String() != "reply" {
		t.Fatalf("ARPReply.String() = %q", common.ARPReply.String())
	}
}
