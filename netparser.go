// Package netparser is the top-level entry point of this decoder: a
// single dispatcher, keyed by pcap/DLT link-type, that picks the right
// link-layer decoder and returns its result wrapped in a LinkFrame.
package netparser

import (
	"fmt"

	"github.com/markrepedersen/netparser/dot11"
	"github.com/markrepedersen/netparser/ethernet"
	"github.com/markrepedersen/netparser/parse"
	"github.com/markrepedersen/netparser/radiotap"
)

// Link-type constants this dispatcher recognises.
//
// Linktype 163 (DLT_IEEE802_11_RADIO_AVS) is deliberately absent: AVS
// framing is a distinct TLV preamble, not RadioTap with a different magic
// number, so aliasing it to RadioTap would silently misparse AVS
// captures. It falls through to UnsupportedLinkTypeError.
const (
	LinkTypeEthernet  = 1
	LinkTypeIEEE80211 = 105
	LinkTypeRadioTap  = 127
)

// LinkKind tags which variant a LinkFrame carries.
type LinkKind uint8

const (
	LinkEthernet LinkKind = iota
	LinkDot11
	LinkRadioTap
)

// LinkFrame is the top-level decoded value: an Ethernet frame, a bare
// 802.11 frame, or a RadioTap header followed by an 802.11 frame.
type LinkFrame struct {
	Kind     LinkKind
	Ethernet *ethernet.Frame
	Dot11    *dot11.Frame
	RadioTap *radiotap.Header // populated only when Kind == LinkRadioTap
}

// UnsupportedLinkTypeError reports a link_type this dispatcher has no
// decoder for. It carries no cursor position — dispatch happens before
// any byte is read — so it is returned directly rather than threaded
// through a parse.Error chain.
type UnsupportedLinkTypeError struct {
	LinkType uint16
}

func (e *UnsupportedLinkTypeError) Error() string {
	return fmt.Sprintf("unsupported link type %d", e.LinkType)
}

// DecodeLinkFrame dispatches buf to the decoder matching linkType:
// 1 -> Ethernet, 105 -> 802.11, 127 -> RadioTap then 802.11. Any other
// linkType, including 163 (AVS), fails with *UnsupportedLinkTypeError.
func DecodeLinkFrame(linkType uint16, buf []byte) (LinkFrame, error) {
	var out LinkFrame
	switch linkType {
	case LinkTypeEthernet:
		f, err := ethernet.Decode(parse.NewCursor(buf))
		if err != nil {
			return out, err
		}
		out.Kind = LinkEthernet
		out.Ethernet = &f
		return out, nil

	case LinkTypeIEEE80211:
		f, err := dot11.Decode(parse.NewCursor(buf))
		if err != nil {
			return out, err
		}
		out.Kind = LinkDot11
		out.Dot11 = &f
		return out, nil

	case LinkTypeRadioTap:
		c := parse.NewCursor(buf)
		rt, err := radiotap.Decode(c)
		if err != nil {
			return out, err
		}
		f, err := dot11.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = LinkRadioTap
		out.RadioTap = &rt
		out.Dot11 = &f
		return out, nil

	default:
		return out, &UnsupportedLinkTypeError{LinkType: linkType}
	}
}
