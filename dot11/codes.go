package dot11

import "fmt"

// StatusCode is the 16-bit status field carried by Authentication and
// (Re)Association Response bodies.
type StatusCode uint16

const (
	StatusSuccess              StatusCode = 0
	StatusUnspecifiedFailure   StatusCode = 1
	StatusCapsUnsupported      StatusCode = 10
	StatusReassocNoAssoc       StatusCode = 11
	StatusAssocDenied          StatusCode = 12
	StatusAuthAlgUnsupported   StatusCode = 13
	StatusAuthSeqOutOfSequence StatusCode = 14
	StatusAuthChallengeFailure StatusCode = 15
	StatusAuthTimeout          StatusCode = 16
	StatusAssocDeniedNoRoom    StatusCode = 17
	StatusAssocDeniedRates     StatusCode = 18
)

// String renders a StatusCode as a human-readable label, falling back to
// the bare numeric value for codes this decoder doesn't name.
func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusUnspecifiedFailure:
		return "UnspecifiedFailure"
	case StatusCapsUnsupported:
		return "CapabilitiesUnsupported"
	case StatusReassocNoAssoc:
		return "ReassociationNoCurrentAssociation"
	case StatusAssocDenied:
		return "AssociationDenied"
	case StatusAuthAlgUnsupported:
		return "AuthenticationAlgorithmUnsupported"
	case StatusAuthSeqOutOfSequence:
		return "AuthenticationSequenceOutOfSequence"
	case StatusAuthChallengeFailure:
		return "AuthenticationChallengeFailure"
	case StatusAuthTimeout:
		return "AuthenticationTimeout"
	case StatusAssocDeniedNoRoom:
		return "AssociationDeniedNoRoom"
	case StatusAssocDeniedRates:
		return "AssociationDeniedRatesUnsupported"
	default:
		return fmt.Sprintf("Status(%d)", uint16(s))
	}
}

const (
	ReasonUnspecified           ReasonCode = 1
	ReasonPrevAuthNotValid      ReasonCode = 2
	ReasonDeauthLeaving         ReasonCode = 3
	ReasonInactivity            ReasonCode = 4
	ReasonAPFull                ReasonCode = 5
	ReasonClass2FromNonAuth     ReasonCode = 6
	ReasonClass3FromNonAssoc    ReasonCode = 7
	ReasonDisassocLeaving       ReasonCode = 8
	ReasonAssocNotAuthenticated ReasonCode = 9
)

// String renders a ReasonCode as a human-readable label, falling back to
// the bare numeric value for codes this decoder doesn't name.
func (r ReasonCode) String() string {
	switch r {
	case ReasonUnspecified:
		return "Unspecified"
	case ReasonPrevAuthNotValid:
		return "PreviousAuthenticationNotValid"
	case ReasonDeauthLeaving:
		return "DeauthenticatingStationLeaving"
	case ReasonInactivity:
		return "DisassociatedDueToInactivity"
	case ReasonAPFull:
		return "DisassociatedAPUnableToHandleAllStations"
	case ReasonClass2FromNonAuth:
		return "Class2FrameFromNonAuthenticatedStation"
	case ReasonClass3FromNonAssoc:
		return "Class3FrameFromNonAssociatedStation"
	case ReasonDisassocLeaving:
		return "DisassociatedStationLeaving"
	case ReasonAssocNotAuthenticated:
		return "StationRequestingAssociationNotAuthenticated"
	default:
		return fmt.Sprintf("Reason(%d)", uint16(r))
	}
}
