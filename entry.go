package accesslog

// SearchEntryMessage records an entry returned for a search operation.
type SearchEntryMessage struct {
	OperationHeader

	// DN is the DN of the returned entry.
	DN *string
	// AttributesReturned lists the names of the returned attributes, in
	// order.
	AttributesReturned []string
	// ResponseControlOIDs holds the OIDs of controls attached to the
	// entry, unordered.
	ResponseControlOIDs map[string]struct{}
}

// MessageType returns MessageTypeEntry.
func (*SearchEntryMessage) MessageType() MessageType { return MessageTypeEntry }

// OperationType returns OperationTypeSearch.
func (SearchEntryMessage) OperationType() OperationType { return OperationTypeSearch }

// SearchReferenceMessage records a referral returned for a search
// operation.
type SearchReferenceMessage struct {
	OperationHeader

	// ReferralURLs lists the referral URLs, in order.
	ReferralURLs []string
	// ResponseControlOIDs holds the OIDs of controls attached to the
	// reference, unordered.
	ResponseControlOIDs map[string]struct{}
}

// MessageType returns MessageTypeReference.
func (*SearchReferenceMessage) MessageType() MessageType { return MessageTypeReference }

// OperationType returns OperationTypeSearch.
func (SearchReferenceMessage) OperationType() OperationType { return OperationTypeSearch }

// IntermediateResponseMessage records an intermediate response returned
// while an operation was in progress. It may appear for any operation
// type; the concrete operation is reported by OperationType.
type IntermediateResponseMessage struct {
	OperationHeader

	// OID is the OID of the intermediate response.
	OID *string
	// Name is the human-readable name of the intermediate response.
	Name *string
	// Value is the string representation of the response value.
	Value *string
	// ResponseControlOIDs holds the OIDs of controls attached to the
	// response, unordered.
	ResponseControlOIDs map[string]struct{}

	operationType OperationType
}

// MessageType returns MessageTypeIntermediateResponse.
func (*IntermediateResponseMessage) MessageType() MessageType {
	return MessageTypeIntermediateResponse
}

// OperationType returns the operation type the response belongs to.
func (m *IntermediateResponseMessage) OperationType() OperationType {
	return m.operationType
}

func decodeSearchEntry(r *Record, h OperationHeader) (*SearchEntryMessage, error) {
	m := &SearchEntryMessage{OperationHeader: h}
	var err error
	if m.DN, err = r.String(FieldDN); err != nil {
		return nil, err
	}
	if m.AttributesReturned, err = r.StringList(FieldAttributesReturned); err != nil {
		return nil, err
	}
	if m.ResponseControlOIDs, err = r.StringSet(FieldResponseControlOIDs); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSearchReference(r *Record, h OperationHeader) (*SearchReferenceMessage, error) {
	m := &SearchReferenceMessage{OperationHeader: h}
	var err error
	if m.ReferralURLs, err = r.StringList(FieldReferralURLs); err != nil {
		return nil, err
	}
	if m.ResponseControlOIDs, err = r.StringSet(FieldResponseControlOIDs); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeIntermediateResponse(r *Record, h OperationHeader, ot OperationType) (*IntermediateResponseMessage, error) {
	m := &IntermediateResponseMessage{OperationHeader: h, operationType: ot}
	var err error
	if m.OID, err = r.String(FieldOID); err != nil {
		return nil, err
	}
	if m.Name, err = r.String(FieldResponseName); err != nil {
		return nil, err
	}
	if m.Value, err = r.String(FieldValue); err != nil {
		return nil, err
	}
	if m.ResponseControlOIDs, err = r.StringSet(FieldResponseControlOIDs); err != nil {
		return nil, err
	}
	return m, nil
}
