// Package arp decodes ARP packets (RFC 826): a fixed 8-byte header
// followed by two (hardware-address, protocol-address) pairs whose widths
// are named by the header's own hlen/plen fields. Unknown htype/ptype/
// operation values are not errors — they decode to an unrecognised raw
// value rather than failing the parse.
package arp

import (
	"fmt"

	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
)

const headerSize = 8

// HType is the ARP hardware-type field (the link layer the protocol
// address pairs with).
type HType uint16

const (
	HTypeEthernet HType = 1 // Ethernet
)

func (h HType) String() string {
	switch h {
	case HTypeEthernet:
		return "Ethernet"
	default:
		return fmt.Sprintf("HType(%d)", uint16(h))
	}
}

// LookupHType reports whether v is a recognised hardware-type value.
func LookupHType(v uint16) (HType, bool) {
	switch HType(v) {
	case HTypeEthernet:
		return HType(v), true
	default:
		return 0, false
	}
}

// Packet is a fully-decoded ARP packet. HType/PType/Operation are reported
// as `(value, ok)` pairs: an unrecognised numeric value is valid wire data,
// not a parse failure, so Ok reports whether the matching lookup succeeded
// and the raw fields underneath still hold the actual wire bytes.
type Packet struct {
	HType       HType
	HTypeOk     bool
	PType       common.EtherType
	PTypeOk     bool
	HLen        uint8
	PLen        uint8
	Operation   common.ARPOp
	OperationOk bool
	SenderHW    common.MacAddr
	SenderIP    common.IPv4Addr
	TargetHW    common.MacAddr
	TargetIP    common.IPv4Addr
}

// Decode reads an ARP packet from c. Only the common Ethernet/IPv4 address
// shape (6-byte hardware address, 4-byte protocol address) is interpreted
// into typed MacAddr/IPv4Addr fields; HLen/PLen are still reported from the
// wire so a caller can detect a non-Ethernet/IPv4 ARP packet.
func Decode(c *parse.Cursor) (Packet, error) {
	return parse.Context(c, "ARP packet", func(c *parse.Cursor) (Packet, error) {
		var p Packet
		htype, err := c.BEU16()
		if err != nil {
			return p, err
		}
		p.HType, p.HTypeOk = LookupHType(htype)
		if !p.HTypeOk {
			p.HType = HType(htype)
		}
		ptype, err := c.BEU16()
		if err != nil {
			return p, err
		}
		p.PType, p.PTypeOk = common.LookupEtherType(ptype)
		if !p.PTypeOk {
			p.PType = common.EtherType(ptype)
		}
		if p.HLen, err = c.U8(); err != nil {
			return p, err
		}
		if p.PLen, err = c.U8(); err != nil {
			return p, err
		}
		opByte, err := c.BEU16()
		if err != nil {
			return p, err
		}
		switch common.ARPOp(opByte) {
		case common.ARPRequest, common.ARPReply:
			p.Operation = common.ARPOp(opByte)
			p.OperationOk = true
		default:
			p.Operation = common.ARPOp(opByte)
		}
		senderHW, err := c.Take(int(p.HLen))
		if err != nil {
			return p, err
		}
		senderIP, err := c.Take(int(p.PLen))
		if err != nil {
			return p, err
		}
		targetHW, err := c.Take(int(p.HLen))
		if err != nil {
			return p, err
		}
		targetIP, err := c.Take(int(p.PLen))
		if err != nil {
			return p, err
		}
		copyIntoAddrs(&p, senderHW, senderIP, targetHW, targetIP)
		return p, nil
	})
}

// copyIntoAddrs populates the typed MacAddr/IPv4Addr fields when the
// address widths match the Ethernet/IPv4 case (6 and 4 bytes); wider or
// narrower widths (e.g. IPv6-over-Ethernet InARP) leave the typed fields
// zeroed.
func copyIntoAddrs(p *Packet, senderHW, senderIP, targetHW, targetIP []byte) {
	if len(senderHW) == 6 {
		copy(p.SenderHW[:], senderHW)
	}
	if len(senderIP) == 4 {
		copy(p.SenderIP[:], senderIP)
	}
	if len(targetHW) == 6 {
		copy(p.TargetHW[:], targetHW)
	}
	if len(targetIP) == 4 {
		copy(p.TargetIP[:], targetIP)
	}
}
