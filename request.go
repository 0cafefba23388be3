package accesslog

// AbandonRequestMessage records an abandon request.
type AbandonRequestMessage struct {
	OperationHeader

	// IDToAbandon is the message ID of the operation to abandon.
	IDToAbandon *int64
}

// MessageType returns MessageTypeRequest.
func (*AbandonRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeAbandon.
func (AbandonRequestMessage) OperationType() OperationType { return OperationTypeAbandon }

// AddRequestMessage records an add request.
type AddRequestMessage struct {
	OperationHeader

	// DN is the DN of the entry to add.
	DN *string
	// AttributeNames lists the names of the attributes in the new entry,
	// in the order they appeared in the request.
	AttributeNames []string
}

// MessageType returns MessageTypeRequest.
func (*AddRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeAdd.
func (AddRequestMessage) OperationType() OperationType { return OperationTypeAdd }

// BindRequestMessage records a bind request.
type BindRequestMessage struct {
	OperationHeader

	// ProtocolVersion is the LDAP protocol version string.
	ProtocolVersion *string
	// AuthenticationType is the authentication type token
	// (e.g. "SIMPLE", "SASL", "INTERNAL").
	AuthenticationType *string
	// DN is the bind DN from the request.
	DN *string
	// SASLMechanism is the SASL mechanism name, for SASL binds.
	SASLMechanism *string
}

// MessageType returns MessageTypeRequest.
func (*BindRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeBind.
func (BindRequestMessage) OperationType() OperationType { return OperationTypeBind }

// CompareRequestMessage records a compare request.
type CompareRequestMessage struct {
	OperationHeader

	// DN is the DN of the entry to compare against.
	DN *string
	// AttributeType is the name of the attribute to compare.
	AttributeType *string
}

// MessageType returns MessageTypeRequest.
func (*CompareRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeCompare.
func (CompareRequestMessage) OperationType() OperationType { return OperationTypeCompare }

// DeleteRequestMessage records a delete request.
type DeleteRequestMessage struct {
	OperationHeader

	// DN is the DN of the entry to delete.
	DN *string
}

// MessageType returns MessageTypeRequest.
func (*DeleteRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeDelete.
func (DeleteRequestMessage) OperationType() OperationType { return OperationTypeDelete }

// ExtendedRequestMessage records an extended request.
type ExtendedRequestMessage struct {
	OperationHeader

	// RequestOID is the OID of the extended request.
	RequestOID *string
}

// MessageType returns MessageTypeRequest.
func (*ExtendedRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeExtended.
func (ExtendedRequestMessage) OperationType() OperationType { return OperationTypeExtended }

// ModifyRequestMessage records a modify request.
type ModifyRequestMessage struct {
	OperationHeader

	// DN is the DN of the entry to modify.
	DN *string
	// AttributeNames lists the names of the modified attributes, in the
	// order they appeared in the request.
	AttributeNames []string
}

// MessageType returns MessageTypeRequest.
func (*ModifyRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeModify.
func (ModifyRequestMessage) OperationType() OperationType { return OperationTypeModify }

// ModifyDNRequestMessage records a modify DN request.
type ModifyDNRequestMessage struct {
	OperationHeader

	// DN is the DN of the entry to rename.
	DN *string
	// NewRDN is the new relative DN.
	NewRDN *string
	// DeleteOldRDN indicates whether the old RDN values are removed.
	DeleteOldRDN *bool
	// NewSuperiorDN is the DN of the new parent entry, if the entry moves.
	NewSuperiorDN *string
}

// MessageType returns MessageTypeRequest.
func (*ModifyDNRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeModifyDN.
func (ModifyDNRequestMessage) OperationType() OperationType { return OperationTypeModifyDN }

// SearchRequestMessage records a search request.
type SearchRequestMessage struct {
	OperationHeader

	// BaseDN is the search base DN.
	BaseDN *string
	// Scope is the search scope.
	Scope *SearchScope
	// Filter is the string representation of the search filter.
	Filter *string
	// SizeLimit is the requested size limit (0 = no limit).
	SizeLimit *int64
	// TimeLimitSeconds is the requested time limit in seconds (0 = no limit).
	TimeLimitSeconds *int64
	// DerefPolicy is the requested alias dereferencing policy.
	DerefPolicy *DerefPolicy
	// TypesOnly indicates whether only attribute types were requested.
	TypesOnly *bool
	// RequestedAttributes lists the requested attributes in order
	// (empty = all user attributes).
	RequestedAttributes []string
}

// MessageType returns MessageTypeRequest.
func (*SearchRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeSearch.
func (SearchRequestMessage) OperationType() OperationType { return OperationTypeSearch }

// UnbindRequestMessage records an unbind request. Unbind is a one-way
// notification, so no forward, result, or assurance message ever follows.
type UnbindRequestMessage struct {
	OperationHeader
}

// MessageType returns MessageTypeRequest.
func (*UnbindRequestMessage) MessageType() MessageType { return MessageTypeRequest }

// OperationType returns OperationTypeUnbind.
func (UnbindRequestMessage) OperationType() OperationType { return OperationTypeUnbind }

func newAbandonRequest(r *Record, h OperationHeader) (AbandonRequestMessage, error) {
	m := AbandonRequestMessage{OperationHeader: h}
	var err error
	if m.IDToAbandon, err = r.Int(FieldIDToAbandon); err != nil {
		return m, err
	}
	return m, nil
}

func newAddRequest(r *Record, h OperationHeader) (AddRequestMessage, error) {
	m := AddRequestMessage{OperationHeader: h}
	var err error
	if m.DN, err = r.String(FieldDN); err != nil {
		return m, err
	}
	if m.AttributeNames, err = r.StringList(FieldAttributes); err != nil {
		return m, err
	}
	return m, nil
}

func newBindRequest(r *Record, h OperationHeader) (BindRequestMessage, error) {
	m := BindRequestMessage{OperationHeader: h}
	var err error
	if m.ProtocolVersion, err = r.String(FieldProtocolVersion); err != nil {
		return m, err
	}
	if m.AuthenticationType, err = r.String(FieldAuthenticationType); err != nil {
		return m, err
	}
	if m.DN, err = r.String(FieldDN); err != nil {
		return m, err
	}
	if m.SASLMechanism, err = r.String(FieldSASLMechanism); err != nil {
		return m, err
	}
	return m, nil
}

func newCompareRequest(r *Record, h OperationHeader) (CompareRequestMessage, error) {
	m := CompareRequestMessage{OperationHeader: h}
	var err error
	if m.DN, err = r.String(FieldDN); err != nil {
		return m, err
	}
	if m.AttributeType, err = r.String(FieldAttributeType); err != nil {
		return m, err
	}
	return m, nil
}

func newDeleteRequest(r *Record, h OperationHeader) (DeleteRequestMessage, error) {
	m := DeleteRequestMessage{OperationHeader: h}
	var err error
	if m.DN, err = r.String(FieldDN); err != nil {
		return m, err
	}
	return m, nil
}

func newExtendedRequest(r *Record, h OperationHeader) (ExtendedRequestMessage, error) {
	m := ExtendedRequestMessage{OperationHeader: h}
	var err error
	if m.RequestOID, err = r.String(FieldRequestOID); err != nil {
		return m, err
	}
	return m, nil
}

func newModifyRequest(r *Record, h OperationHeader) (ModifyRequestMessage, error) {
	m := ModifyRequestMessage{OperationHeader: h}
	var err error
	if m.DN, err = r.String(FieldDN); err != nil {
		return m, err
	}
	if m.AttributeNames, err = r.StringList(FieldAttributes); err != nil {
		return m, err
	}
	return m, nil
}

func newModifyDNRequest(r *Record, h OperationHeader) (ModifyDNRequestMessage, error) {
	m := ModifyDNRequestMessage{OperationHeader: h}
	var err error
	if m.DN, err = r.String(FieldDN); err != nil {
		return m, err
	}
	if m.NewRDN, err = r.String(FieldNewRDN); err != nil {
		return m, err
	}
	if m.DeleteOldRDN, err = r.Bool(FieldDeleteOldRDN); err != nil {
		return m, err
	}
	if m.NewSuperiorDN, err = r.String(FieldNewSuperiorDN); err != nil {
		return m, err
	}
	return m, nil
}

func newSearchRequest(r *Record, h OperationHeader) (SearchRequestMessage, error) {
	m := SearchRequestMessage{OperationHeader: h}
	var err error
	if m.BaseDN, err = r.String(FieldBaseDN); err != nil {
		return m, err
	}
	scope, err := r.Int(FieldScope)
	if err != nil {
		return m, err
	}
	if scope != nil {
		s := SearchScope(*scope)
		m.Scope = &s
	}
	if m.Filter, err = r.String(FieldFilter); err != nil {
		return m, err
	}
	if m.SizeLimit, err = r.Int(FieldSizeLimit); err != nil {
		return m, err
	}
	if m.TimeLimitSeconds, err = r.Int(FieldTimeLimitSeconds); err != nil {
		return m, err
	}
	deref, err := r.Int(FieldDerefPolicy)
	if err != nil {
		return m, err
	}
	if deref != nil {
		d := DerefPolicy(*deref)
		m.DerefPolicy = &d
	}
	if m.TypesOnly, err = r.Bool(FieldTypesOnly); err != nil {
		return m, err
	}
	if m.RequestedAttributes, err = r.StringList(FieldRequestedAttributes); err != nil {
		return m, err
	}
	return m, nil
}

func newUnbindRequest(_ *Record, h OperationHeader) (UnbindRequestMessage, error) {
	return UnbindRequestMessage{OperationHeader: h}, nil
}
