package dot11

import (
	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
)

// CapabilityInfo is the 16-bit capability field common to Beacon,
// (Re)AssociationRequest/Response, and ProbeResponse bodies, decoded from
// the little-endian wire field. Bit assignment follows the conventional
// 802.11 numbering (bit 0 = ESS).
type CapabilityInfo uint16

func (c CapabilityInfo) ESS() bool               { return c&(1<<0) != 0 }
func (c CapabilityInfo) IBSS() bool              { return c&(1<<1) != 0 }
func (c CapabilityInfo) CFPollable() bool        { return c&(1<<2) != 0 }
func (c CapabilityInfo) CFPollRequest() bool     { return c&(1<<3) != 0 }
func (c CapabilityInfo) Privacy() bool           { return c&(1<<4) != 0 }
func (c CapabilityInfo) ShortPreamble() bool     { return c&(1<<5) != 0 }
func (c CapabilityInfo) PBCC() bool              { return c&(1<<6) != 0 }
func (c CapabilityInfo) ChannelAgility() bool    { return c&(1<<7) != 0 }
func (c CapabilityInfo) SpectrumMgmt() bool      { return c&(1<<8) != 0 }
func (c CapabilityInfo) QoS() bool               { return c&(1<<9) != 0 }
func (c CapabilityInfo) ShortSlotTime() bool     { return c&(1<<10) != 0 }
func (c CapabilityInfo) APSD() bool              { return c&(1<<11) != 0 }
func (c CapabilityInfo) RadioMeasurement() bool  { return c&(1<<12) != 0 }
func (c CapabilityInfo) DSSSOFDM() bool          { return c&(1<<13) != 0 }
func (c CapabilityInfo) DelayedBlockAck() bool   { return c&(1<<14) != 0 }
func (c CapabilityInfo) ImmediateBlockAck() bool { return c&(1<<15) != 0 }

func decodeCapabilityInfo(c *parse.Cursor) (CapabilityInfo, error) {
	raw, err := c.LEU16()
	return CapabilityInfo(raw), err
}

// BeaconBody is the decoded body shared by Beacon and ProbeResponse
// frames: timestamp, beacon interval, capability info, then a sequence of
// information elements running to the end of the body region.
type BeaconBody struct {
	Timestamp      uint64
	BeaconInterval uint16
	Capability     CapabilityInfo
	IEs            []InformationElement
}

func decodeBeaconBody(c *parse.Cursor) (BeaconBody, error) {
	var b BeaconBody
	var err error
	if b.Timestamp, err = c.LEU64(); err != nil {
		return b, err
	}
	if b.BeaconInterval, err = c.LEU16(); err != nil {
		return b, err
	}
	if b.Capability, err = decodeCapabilityInfo(c); err != nil {
		return b, err
	}
	b.IEs = parse.Many0(c, DecodeIE)
	return b, nil
}

// ProbeRequestBody holds the three required IEs a Probe Request carries
// in order: SSID, SupportedRates, ExtendedSupportedRates.
// ExtendedSupportedRates has no dedicated shape in this decoder's IE
// catalogue, so it decodes via the generic Unknown{id,len} arm like any
// other unlisted id.
type ProbeRequestBody struct {
	SSID                   InformationElement
	SupportedRates         InformationElement
	ExtendedSupportedRates InformationElement
}

func decodeProbeRequestBody(c *parse.Cursor) (ProbeRequestBody, error) {
	var b ProbeRequestBody
	var err error
	if b.SSID, err = DecodeIE(c); err != nil {
		return b, err
	}
	if b.SupportedRates, err = DecodeIE(c); err != nil {
		return b, err
	}
	if b.ExtendedSupportedRates, err = DecodeIE(c); err != nil {
		return b, err
	}
	return b, nil
}

// AssociationRequestBody is an Association Request body.
type AssociationRequestBody struct {
	Capability     CapabilityInfo
	ListenInterval uint16
	SSID           InformationElement
	SupportedRates InformationElement
}

func decodeAssociationRequestBody(c *parse.Cursor) (AssociationRequestBody, error) {
	var b AssociationRequestBody
	var err error
	if b.Capability, err = decodeCapabilityInfo(c); err != nil {
		return b, err
	}
	if b.ListenInterval, err = c.LEU16(); err != nil {
		return b, err
	}
	if b.SSID, err = DecodeIE(c); err != nil {
		return b, err
	}
	if b.SupportedRates, err = DecodeIE(c); err != nil {
		return b, err
	}
	return b, nil
}

// ReassociationRequestBody is a Reassociation Request body: identical to
// AssociationRequestBody plus a 6-byte current-AP address before the SSID
// IE.
type ReassociationRequestBody struct {
	Capability     CapabilityInfo
	ListenInterval uint16
	CurrentAP      common.MacAddr
	SSID           InformationElement
	SupportedRates InformationElement
}

func decodeReassociationRequestBody(c *parse.Cursor) (ReassociationRequestBody, error) {
	var b ReassociationRequestBody
	var err error
	if b.Capability, err = decodeCapabilityInfo(c); err != nil {
		return b, err
	}
	if b.ListenInterval, err = c.LEU16(); err != nil {
		return b, err
	}
	if b.CurrentAP, err = readMac(c); err != nil {
		return b, err
	}
	if b.SSID, err = DecodeIE(c); err != nil {
		return b, err
	}
	if b.SupportedRates, err = DecodeIE(c); err != nil {
		return b, err
	}
	return b, nil
}

// AssociationResponseBody is the body shared by Association Response and
// Reassociation Response frames: capability info, status code,
// association id, SupportedRates IE.
type AssociationResponseBody struct {
	Capability     CapabilityInfo
	Status         StatusCode
	AssociationID  uint16
	SupportedRates InformationElement
}

func decodeAssociationResponseBody(c *parse.Cursor) (AssociationResponseBody, error) {
	var b AssociationResponseBody
	var err error
	if b.Capability, err = decodeCapabilityInfo(c); err != nil {
		return b, err
	}
	statusRaw, err := c.LEU16()
	if err != nil {
		return b, err
	}
	b.Status = StatusCode(statusRaw)
	if b.AssociationID, err = c.LEU16(); err != nil {
		return b, err
	}
	if b.SupportedRates, err = DecodeIE(c); err != nil {
		return b, err
	}
	return b, nil
}

// AuthenticationBody is an Authentication frame body: algorithm,
// authentication sequence number, status code, ChallengeText IE.
type AuthenticationBody struct {
	Algorithm     uint16
	AuthSeq       uint16
	Status        StatusCode
	ChallengeText InformationElement
}

func decodeAuthenticationBody(c *parse.Cursor) (AuthenticationBody, error) {
	var b AuthenticationBody
	var err error
	if b.Algorithm, err = c.LEU16(); err != nil {
		return b, err
	}
	if b.AuthSeq, err = c.LEU16(); err != nil {
		return b, err
	}
	statusRaw, err := c.LEU16()
	if err != nil {
		return b, err
	}
	b.Status = StatusCode(statusRaw)
	if b.ChallengeText, err = DecodeIE(c); err != nil {
		return b, err
	}
	return b, nil
}

// ReasonCode is the 16-bit reason field carried by Deauthentication and
// Disassociation bodies. Both share this bare reason-code interpretation;
// the two bodies are identical in shape.
type ReasonCode uint16

func decodeReasonCode(c *parse.Cursor) (ReasonCode, error) {
	raw, err := c.LEU16()
	return ReasonCode(raw), err
}
