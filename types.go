package accesslog

// MessageType identifies the kind of event an access log record describes.
type MessageType int

const (
	// MessageTypeConnect records a new client connection.
	MessageTypeConnect MessageType = iota
	// MessageTypeDisconnect records a closed client connection.
	MessageTypeDisconnect
	// MessageTypeSecurityNegotiation records a TLS or SASL security layer
	// negotiation on an existing connection.
	MessageTypeSecurityNegotiation
	// MessageTypeClientCertificate records a certificate chain presented
	// by a client during TLS negotiation.
	MessageTypeClientCertificate
	// MessageTypeEntryRebalancingRequest records the start of an
	// administrative entry rebalancing operation.
	MessageTypeEntryRebalancingRequest
	// MessageTypeEntryRebalancingResult records the outcome of an
	// administrative entry rebalancing operation.
	MessageTypeEntryRebalancingResult
	// MessageTypeRequest records an operation request received from a client.
	MessageTypeRequest
	// MessageTypeForward records an operation forwarded to a backend server.
	MessageTypeForward
	// MessageTypeForwardFailed records a failed attempt to forward an
	// operation to a backend server.
	MessageTypeForwardFailed
	// MessageTypeResult records the final result of an operation.
	MessageTypeResult
	// MessageTypeAssuranceComplete records the completion of replication
	// assurance processing for a mutating operation.
	MessageTypeAssuranceComplete
	// MessageTypeEntry records an entry returned for a search operation.
	MessageTypeEntry
	// MessageTypeReference records a referral returned for a search operation.
	MessageTypeReference
	// MessageTypeIntermediateResponse records an intermediate response
	// returned while an operation is in progress.
	MessageTypeIntermediateResponse
)

// String returns the log token for the message type.
func (t MessageType) String() string {
	switch t {
	case MessageTypeConnect:
		return "CONNECT"
	case MessageTypeDisconnect:
		return "DISCONNECT"
	case MessageTypeSecurityNegotiation:
		return "SECURITY_NEGOTIATION"
	case MessageTypeClientCertificate:
		return "CLIENT_CERTIFICATE"
	case MessageTypeEntryRebalancingRequest:
		return "ENTRY_REBALANCING_REQUEST"
	case MessageTypeEntryRebalancingResult:
		return "ENTRY_REBALANCING_RESULT"
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeForward:
		return "FORWARD"
	case MessageTypeForwardFailed:
		return "FORWARD_FAILED"
	case MessageTypeResult:
		return "RESULT"
	case MessageTypeAssuranceComplete:
		return "ASSURANCE_COMPLETE"
	case MessageTypeEntry:
		return "ENTRY"
	case MessageTypeReference:
		return "REFERENCE"
	case MessageTypeIntermediateResponse:
		return "INTERMEDIATE_RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// ParseMessageType parses a log token into a MessageType.
// The second return value reports whether the token was recognized.
func ParseMessageType(s string) (MessageType, bool) {
	switch s {
	case "CONNECT":
		return MessageTypeConnect, true
	case "DISCONNECT":
		return MessageTypeDisconnect, true
	case "SECURITY_NEGOTIATION":
		return MessageTypeSecurityNegotiation, true
	case "CLIENT_CERTIFICATE":
		return MessageTypeClientCertificate, true
	case "ENTRY_REBALANCING_REQUEST":
		return MessageTypeEntryRebalancingRequest, true
	case "ENTRY_REBALANCING_RESULT":
		return MessageTypeEntryRebalancingResult, true
	case "REQUEST":
		return MessageTypeRequest, true
	case "FORWARD":
		return MessageTypeForward, true
	case "FORWARD_FAILED":
		return MessageTypeForwardFailed, true
	case "RESULT":
		return MessageTypeResult, true
	case "ASSURANCE_COMPLETE":
		return MessageTypeAssuranceComplete, true
	case "ENTRY":
		return MessageTypeEntry, true
	case "REFERENCE":
		return MessageTypeReference, true
	case "INTERMEDIATE_RESPONSE":
		return MessageTypeIntermediateResponse, true
	default:
		return 0, false
	}
}

// operationScoped reports whether records of this message type carry an
// operation-type field.
func (t MessageType) operationScoped() bool {
	switch t {
	case MessageTypeConnect, MessageTypeDisconnect,
		MessageTypeSecurityNegotiation, MessageTypeClientCertificate,
		MessageTypeEntryRebalancingRequest, MessageTypeEntryRebalancingResult:
		return false
	default:
		return true
	}
}

// OperationType identifies the LDAP operation an operation-scoped access
// log record describes.
type OperationType int

const (
	// OperationTypeAbandon is an abandon operation.
	OperationTypeAbandon OperationType = iota
	// OperationTypeAdd is an add operation.
	OperationTypeAdd
	// OperationTypeBind is a bind operation.
	OperationTypeBind
	// OperationTypeCompare is a compare operation.
	OperationTypeCompare
	// OperationTypeDelete is a delete operation.
	OperationTypeDelete
	// OperationTypeExtended is an extended operation.
	OperationTypeExtended
	// OperationTypeModify is a modify operation.
	OperationTypeModify
	// OperationTypeModifyDN is a modify DN operation.
	OperationTypeModifyDN
	// OperationTypeSearch is a search operation.
	OperationTypeSearch
	// OperationTypeUnbind is an unbind operation.
	OperationTypeUnbind
)

// String returns the log token for the operation type.
func (t OperationType) String() string {
	switch t {
	case OperationTypeAbandon:
		return "ABANDON"
	case OperationTypeAdd:
		return "ADD"
	case OperationTypeBind:
		return "BIND"
	case OperationTypeCompare:
		return "COMPARE"
	case OperationTypeDelete:
		return "DELETE"
	case OperationTypeExtended:
		return "EXTENDED"
	case OperationTypeModify:
		return "MODIFY"
	case OperationTypeModifyDN:
		return "MODDN"
	case OperationTypeSearch:
		return "SEARCH"
	case OperationTypeUnbind:
		return "UNBIND"
	default:
		return "UNKNOWN"
	}
}

// ParseOperationType parses a log token into an OperationType.
// The second return value reports whether the token was recognized.
func ParseOperationType(s string) (OperationType, bool) {
	switch s {
	case "ABANDON":
		return OperationTypeAbandon, true
	case "ADD":
		return OperationTypeAdd, true
	case "BIND":
		return OperationTypeBind, true
	case "COMPARE":
		return OperationTypeCompare, true
	case "DELETE":
		return OperationTypeDelete, true
	case "EXTENDED":
		return OperationTypeExtended, true
	case "MODIFY":
		return OperationTypeModify, true
	case "MODDN":
		return OperationTypeModifyDN, true
	case "SEARCH":
		return OperationTypeSearch, true
	case "UNBIND":
		return OperationTypeUnbind, true
	default:
		return 0, false
	}
}

// operationLegal reports whether the given operation type may appear with
// the given message type. The pairing rules:
//
//   - REQUEST and INTERMEDIATE_RESPONSE accept every operation type
//   - FORWARD, FORWARD_FAILED and RESULT accept everything except UNBIND,
//     which is a one-way notification with no response stage
//   - ASSURANCE_COMPLETE accepts only the mutating, replicated operations
//     (ADD, DELETE, MODIFY, MODDN)
//   - ENTRY and REFERENCE accept only SEARCH
func operationLegal(mt MessageType, ot OperationType) bool {
	switch mt {
	case MessageTypeRequest, MessageTypeIntermediateResponse:
		return true
	case MessageTypeForward, MessageTypeForwardFailed, MessageTypeResult:
		return ot != OperationTypeUnbind
	case MessageTypeAssuranceComplete:
		switch ot {
		case OperationTypeAdd, OperationTypeDelete,
			OperationTypeModify, OperationTypeModifyDN:
			return true
		}
		return false
	case MessageTypeEntry, MessageTypeReference:
		return ot == OperationTypeSearch
	default:
		return false
	}
}

// SearchScope represents the scope of a logged search operation.
// The numeric values match the LDAP protocol encoding.
type SearchScope int

const (
	// ScopeBaseObject searches only the base entry.
	ScopeBaseObject SearchScope = 0
	// ScopeSingleLevel searches one level below the base entry.
	ScopeSingleLevel SearchScope = 1
	// ScopeWholeSubtree searches the base entry and its entire subtree.
	ScopeWholeSubtree SearchScope = 2
	// ScopeSubordinateSubtree searches the subtree without the base entry.
	ScopeSubordinateSubtree SearchScope = 3
)

// String returns the string representation of the search scope.
func (s SearchScope) String() string {
	switch s {
	case ScopeBaseObject:
		return "BaseObject"
	case ScopeSingleLevel:
		return "SingleLevel"
	case ScopeWholeSubtree:
		return "WholeSubtree"
	case ScopeSubordinateSubtree:
		return "SubordinateSubtree"
	default:
		return "Unknown"
	}
}

// DerefPolicy represents how aliases were dereferenced during a logged
// search operation. The numeric values match the LDAP protocol encoding.
type DerefPolicy int

const (
	// DerefNever never dereferences aliases.
	DerefNever DerefPolicy = 0
	// DerefInSearching dereferences aliases when searching subordinates.
	DerefInSearching DerefPolicy = 1
	// DerefFindingBaseObj dereferences aliases when finding the base entry.
	DerefFindingBaseObj DerefPolicy = 2
	// DerefAlways always dereferences aliases.
	DerefAlways DerefPolicy = 3
)

// String returns the string representation of the deref policy.
func (d DerefPolicy) String() string {
	switch d {
	case DerefNever:
		return "NeverDerefAliases"
	case DerefInSearching:
		return "DerefInSearching"
	case DerefFindingBaseObj:
		return "DerefFindingBaseObj"
	case DerefAlways:
		return "DerefAlways"
	default:
		return "Unknown"
	}
}
