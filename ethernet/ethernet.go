// Package ethernet decodes IEEE 802.3 Ethernet II frames: a 14-byte
// header (destination, source, EtherType) followed by a payload dispatched
// on the EtherType field. VLAN tags are not handled.
package ethernet

import (
	"github.com/markrepedersen/netparser/arp"
	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/ipv4"
	"github.com/markrepedersen/netparser/ipv6"
	"github.com/markrepedersen/netparser/parse"
)

const headerSize = 14

// L2Kind tags which variant L2Payload carries.
type L2Kind uint8

const (
	L2IPv4 L2Kind = iota
	L2IPv6
	L2ARP
	L2Unknown
	// L2Protected marks an 802.11-style encrypted payload. Ethernet frames
	// never produce this variant (there's no Ethernet-layer encryption in
	// this decoder), and dot11 does not use L2Payload: it reports encrypted
	// bodies through its own FrameBody as BodyEncrypted.
	L2Protected
)

// L2Payload is the layer-3 payload an Ethernet frame carries, tagged by
// EtherType.
type L2Payload struct {
	Kind L2Kind
	IPv4 *ipv4.Packet
	IPv6 *ipv6.Packet
	ARP  *arp.Packet
	// Unknown holds the raw, unparsed bytes when Kind == L2Unknown.
	Unknown common.Blob
}

func decodeL2(c *parse.Cursor, et common.EtherType, known bool) (L2Payload, error) {
	var out L2Payload
	if !known {
		rest := c.Remaining()
		if _, err := c.Take(len(rest)); err != nil {
			return out, err
		}
		out.Kind = L2Unknown
		out.Unknown = common.NewBlob(rest)
		return out, nil
	}
	switch et {
	case common.EtherTypeIPv4:
		p, err := ipv4.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = L2IPv4
		out.IPv4 = &p
	case common.EtherTypeIPv6:
		p, err := ipv6.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = L2IPv6
		out.IPv6 = &p
	case common.EtherTypeARP:
		p, err := arp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = L2ARP
		out.ARP = &p
	default:
		rest := c.Remaining()
		if _, err := c.Take(len(rest)); err != nil {
			return out, err
		}
		out.Kind = L2Unknown
		out.Unknown = common.NewBlob(rest)
	}
	return out, nil
}

// Frame is a fully-decoded Ethernet II frame.
type Frame struct {
	Destination common.MacAddr
	Source      common.MacAddr
	EtherType   common.EtherType
	// EtherTypeOk reports whether EtherType is a recognised value. An
	// unknown value is valid wire data, not a parse failure.
	EtherTypeOk bool
	Payload     L2Payload
}

// Decode reads an Ethernet II frame from c: 6-byte destination, 6-byte
// source, 2-byte EtherType, then a payload dispatched on EtherType.
func Decode(c *parse.Cursor) (Frame, error) {
	return parse.Context(c, "Ethernet frame", func(c *parse.Cursor) (Frame, error) {
		var f Frame
		dst, err := c.Take(6)
		if err != nil {
			return f, err
		}
		copy(f.Destination[:], dst)
		src, err := c.Take(6)
		if err != nil {
			return f, err
		}
		copy(f.Source[:], src)
		etRaw, err := c.BEU16()
		if err != nil {
			return f, err
		}
		f.EtherType, f.EtherTypeOk = common.LookupEtherType(etRaw)
		if !f.EtherTypeOk {
			f.EtherType = common.EtherType(etRaw)
		}
		f.Payload, err = decodeL2(c, f.EtherType, f.EtherTypeOk)
		if err != nil {
			return f, err
		}
		return f, nil
	})
}
