package dot11

import (
	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
)

// BodyKind tags which variant FrameBody carries.
type BodyKind uint8

const (
	BodyData BodyKind = iota
	BodyBeacon
	BodyProbeRequest
	BodyProbeResponse
	BodyDeauthentication
	BodyDisassociation
	BodyAuthentication
	BodyAssociationRequest
	BodyReassociationRequest
	BodyAssociationResponse
	BodyReassociationResponse
	BodyEncrypted
	BodyEmpty
	// BodyMalformed covers management subtypes this decoder doesn't
	// interpret (Action, ATIM, Timing Advertisement, reserved values) —
	// the frame itself is well-formed 802.11, but this decoder has no
	// typed shape for its body.
	BodyMalformed
)

// DataBody is an 802.11 Data-type frame body. LLC/SNAP is not
// interpreted; the whole body is kept as an opaque payload.
type DataBody struct {
	Payload common.Blob
}

// FrameBody is the decoded 802.11 frame body, tagged by Kind. Each Kind
// populates exactly one of the typed fields, except BodyEmpty and
// BodyMalformed, which populate none.
type FrameBody struct {
	Kind                  BodyKind
	Data                  *DataBody
	Beacon                *BeaconBody
	ProbeRequest          *ProbeRequestBody
	ProbeResponse         *BeaconBody
	Deauthentication      *ReasonCode
	Disassociation        *ReasonCode
	Authentication        *AuthenticationBody
	AssociationRequest    *AssociationRequestBody
	ReassociationRequest  *ReassociationRequestBody
	AssociationResponse   *AssociationResponseBody
	ReassociationResponse *AssociationResponseBody
	Encrypted             common.Blob
}

func decodeBody(fc FrameControl, body []byte) (FrameBody, error) {
	var out FrameBody
	if fc.Flags.Protected {
		if len(body) == 0 {
			out.Kind = BodyEmpty
			return out, nil
		}
		out.Kind = BodyEncrypted
		out.Encrypted = common.NewBlob(body)
		return out, nil
	}

	switch fc.Typ {
	case TypeData:
		out.Kind = BodyData
		out.Data = &DataBody{Payload: common.NewBlob(body)}
		return out, nil
	case TypeControl, TypeExtension:
		out.Kind = BodyEmpty
		return out, nil
	}

	// TypeManagement.
	c := parse.NewCursor(body)
	switch fc.Subtype {
	case SubtypeBeacon:
		b, err := parse.Context(c, "802.11 Management Frame: Beacon body", decodeBeaconBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyBeacon
		out.Beacon = &b
	case SubtypeProbeResp:
		b, err := parse.Context(c, "802.11 Management Frame: ProbeResponse body", decodeBeaconBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyProbeResponse
		out.ProbeResponse = &b
	case SubtypeProbeReq:
		b, err := parse.Context(c, "802.11 Management Frame: ProbeRequest body", decodeProbeRequestBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyProbeRequest
		out.ProbeRequest = &b
	case SubtypeDeauth:
		reason, err := parse.Context(c, "802.11 Management Frame: Deauthentication body", decodeReasonCode)
		if err != nil {
			return out, err
		}
		out.Kind = BodyDeauthentication
		out.Deauthentication = &reason
	case SubtypeDisassoc:
		reason, err := parse.Context(c, "802.11 Management Frame: Disassociation body", decodeReasonCode)
		if err != nil {
			return out, err
		}
		out.Kind = BodyDisassociation
		out.Disassociation = &reason
	case SubtypeAuth:
		b, err := parse.Context(c, "802.11 Management Frame: Authentication body", decodeAuthenticationBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyAuthentication
		out.Authentication = &b
	case SubtypeAssocReq:
		b, err := parse.Context(c, "802.11 Management Frame: AssociationRequest body", decodeAssociationRequestBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyAssociationRequest
		out.AssociationRequest = &b
	case SubtypeReassocReq:
		b, err := parse.Context(c, "802.11 Management Frame: ReassociationRequest body", decodeReassociationRequestBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyReassociationRequest
		out.ReassociationRequest = &b
	case SubtypeAssocResp:
		b, err := parse.Context(c, "802.11 Management Frame: AssociationResponse body", decodeAssociationResponseBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyAssociationResponse
		out.AssociationResponse = &b
	case SubtypeReassocResp:
		b, err := parse.Context(c, "802.11 Management Frame: ReassociationResponse body", decodeAssociationResponseBody)
		if err != nil {
			return out, err
		}
		out.Kind = BodyReassociationResponse
		out.ReassociationResponse = &b
	default:
		if len(body) == 0 {
			out.Kind = BodyEmpty
		} else {
			out.Kind = BodyMalformed
		}
	}
	return out, nil
}
