package ipv6_test

import (
	"testing"

	"github.com/markrepedersen/netparser/ipv6"
	"github.com/markrepedersen/netparser/parse"
)

func TestDecodeVersionTrafficClassFlow(t *testing.T) {
	buf := []byte{0x60, 0x00, 0x00, 0x01} // version=6, tc=0, flow=1
	buf = append(buf, 0x00, 0x08)         // payload length = 8
	buf = append(buf, 17)                 // next header = UDP
	buf = append(buf, 64)                 // hop limit
	src := make([]byte, 16)
	src[0] = 0x20
	src[1] = 0x01
	dst := make([]byte, 16)
	dst[0] = 0x20
	dst[1] = 0x02
	buf = append(buf, src...)
	buf = append(buf, dst...)
	buf = append(buf, 0x00, 0x35, 0xC3, 0x50, 0x00, 0x08, 0x00, 0x00) // 8-byte UDP header

	c := parse.NewCursor(buf)
	p, err := ipv6.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Version.Uint8() != 6 {
		t.Fatalf("version = %v", p.Version)
	}
	if p.FlowLabel.Uint32() != 1 {
		t.Fatalf("flow label = %v", p.FlowLabel)
	}
	if p.Payload.UDP == nil || p.Payload.UDP.SourcePort != 53 {
		t.Fatalf("payload = %+v", p.Payload)
	}
}

func TestDecodeTruncatedFixedHeaderFails(t *testing.T) {
	c := parse.NewCursor([]byte{0x60, 0x00})
	_, err := ipv6.Decode(c)
	if err == nil {
		t.Fatal("expected error")
	}
}
