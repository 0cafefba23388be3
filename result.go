package accesslog

// OperationResult holds the result fields shared by every RESULT and
// ASSURANCE_COMPLETE message.
type OperationResult struct {
	// ResultCode is the operation's result code.
	ResultCode *ResultCode
	// DiagnosticMessage is the diagnostic message from the result.
	DiagnosticMessage *string
	// MatchedDN is the matched DN from the result.
	MatchedDN *string
	// ReferralURLs lists referral URLs from the result, in order.
	ReferralURLs []string
	// ServersAccessed lists the backend servers accessed while
	// processing the operation, in order.
	ServersAccessed []string
	// UncachedDataAccessed indicates whether the operation needed data
	// not held in a memory-resident cache.
	UncachedDataAccessed *bool
	// WorkQueueWaitTimeMillis is the time the operation spent waiting in
	// the work queue, in milliseconds.
	WorkQueueWaitTimeMillis *float64
	// ProcessingTimeMillis is the time spent processing the operation,
	// in milliseconds.
	ProcessingTimeMillis *float64
	// IntermediateResponsesReturned is the number of intermediate
	// responses returned for the operation.
	IntermediateResponsesReturned *int64
	// ResponseControlOIDs holds the OIDs of the response controls,
	// unordered.
	ResponseControlOIDs map[string]struct{}
	// UsedPrivileges holds the privileges used while processing the
	// operation.
	UsedPrivileges map[string]struct{}
	// PreAuthorizationUsedPrivileges holds the privileges used before
	// alternate authorization took effect.
	PreAuthorizationUsedPrivileges map[string]struct{}
	// MissingPrivileges holds the privileges the requester lacked.
	MissingPrivileges map[string]struct{}
	// AlternateAuthorizationDN is the authorization DN if it differed
	// from the authentication DN.
	AlternateAuthorizationDN *string
	// LocalAssuranceLevel is the requested local replication assurance
	// level.
	LocalAssuranceLevel *string
	// RemoteAssuranceLevel is the requested remote replication assurance
	// level.
	RemoteAssuranceLevel *string
	// AssuranceTimeoutMillis is the replication assurance timeout, in
	// milliseconds.
	AssuranceTimeoutMillis *int64
	// ResponseDelayedByAssurance indicates whether the response was held
	// until assurance processing completed.
	ResponseDelayedByAssurance *bool
	// IndexesNearEntryLimit holds the names of indexes accessed with a
	// key near its entry limit.
	IndexesNearEntryLimit map[string]struct{}
	// IndexesExceedingEntryLimit holds the names of indexes accessed
	// with a key over its entry limit.
	IndexesExceedingEntryLimit map[string]struct{}
	// ReplicationChangeID is the replication change identifier assigned
	// to a mutating operation.
	ReplicationChangeID *string
	// IntermediateClientResponse is the decoded intermediate client
	// response control, if the result included one.
	IntermediateClientResponse *IntermediateClientResponse
}

// decodeOperationResult extracts the shared result field set.
func decodeOperationResult(r *Record) (OperationResult, error) {
	var res OperationResult
	var err error
	if res.ResultCode, err = decodeResultCode(r); err != nil {
		return res, err
	}
	if res.DiagnosticMessage, err = r.String(FieldDiagnosticMessage); err != nil {
		return res, err
	}
	if res.MatchedDN, err = r.String(FieldMatchedDN); err != nil {
		return res, err
	}
	if res.ReferralURLs, err = r.StringList(FieldReferralURLs); err != nil {
		return res, err
	}
	if res.ServersAccessed, err = r.StringList(FieldServersAccessed); err != nil {
		return res, err
	}
	if res.UncachedDataAccessed, err = r.Bool(FieldUncachedDataAccessed); err != nil {
		return res, err
	}
	if res.WorkQueueWaitTimeMillis, err = r.Float(FieldWorkQueueWaitTimeMillis); err != nil {
		return res, err
	}
	if res.ProcessingTimeMillis, err = r.Float(FieldProcessingTimeMillis); err != nil {
		return res, err
	}
	if res.IntermediateResponsesReturned, err = r.Int(FieldIntermediateResponsesReturned); err != nil {
		return res, err
	}
	if res.ResponseControlOIDs, err = r.StringSet(FieldResponseControlOIDs); err != nil {
		return res, err
	}
	if res.UsedPrivileges, err = r.StringSet(FieldUsedPrivileges); err != nil {
		return res, err
	}
	if res.PreAuthorizationUsedPrivileges, err = r.StringSet(FieldPreAuthorizationUsedPrivileges); err != nil {
		return res, err
	}
	if res.MissingPrivileges, err = r.StringSet(FieldMissingPrivileges); err != nil {
		return res, err
	}
	if res.AlternateAuthorizationDN, err = r.String(FieldAlternateAuthorizationDN); err != nil {
		return res, err
	}
	if res.LocalAssuranceLevel, err = r.String(FieldLocalAssuranceLevel); err != nil {
		return res, err
	}
	if res.RemoteAssuranceLevel, err = r.String(FieldRemoteAssuranceLevel); err != nil {
		return res, err
	}
	if res.AssuranceTimeoutMillis, err = r.Int(FieldAssuranceTimeoutMillis); err != nil {
		return res, err
	}
	if res.ResponseDelayedByAssurance, err = r.Bool(FieldResponseDelayedByAssurance); err != nil {
		return res, err
	}
	if res.IndexesNearEntryLimit, err = r.StringSet(FieldIndexesNearEntryLimit); err != nil {
		return res, err
	}
	if res.IndexesExceedingEntryLimit, err = r.StringSet(FieldIndexesExceedingEntryLimit); err != nil {
		return res, err
	}
	if res.ReplicationChangeID, err = r.String(FieldReplicationChangeID); err != nil {
		return res, err
	}
	if res.IntermediateClientResponse, err = decodeIntermediateClientResponse(r, FieldIntermediateClientResponse); err != nil {
		return res, err
	}
	return res, nil
}

// AbandonResultMessage records the result of an abandon operation.
type AbandonResultMessage struct {
	AbandonRequestMessage
	OperationResult
	ForwardTarget
}

// MessageType returns MessageTypeResult.
func (*AbandonResultMessage) MessageType() MessageType { return MessageTypeResult }

// AddResultMessage records the result of an add operation.
type AddResultMessage struct {
	AddRequestMessage
	OperationResult
	ForwardTarget
}

// MessageType returns MessageTypeResult.
func (*AddResultMessage) MessageType() MessageType { return MessageTypeResult }

// BindResultMessage records the result of a bind operation.
type BindResultMessage struct {
	BindRequestMessage
	OperationResult
	ForwardTarget

	// AuthenticationDN is the DN of the authenticated user.
	AuthenticationDN *string
	// AuthorizationDN is the DN of the authorization identity.
	AuthorizationDN *string
	// AuthenticationFailureID is the numeric identifier of the
	// authentication failure reason, for failed binds.
	AuthenticationFailureID *int64
	// AuthenticationFailureName is the symbolic name of the
	// authentication failure reason, for failed binds.
	AuthenticationFailureName *string
	// AuthenticationFailureMessage describes the authentication failure,
	// for failed binds.
	AuthenticationFailureMessage *string
	// RetiredPasswordUsed indicates whether the bind used a retired
	// password.
	RetiredPasswordUsed *bool
	// ClientConnectionPolicy is the client connection policy assigned
	// after the bind.
	ClientConnectionPolicy *string
}

// MessageType returns MessageTypeResult.
func (*BindResultMessage) MessageType() MessageType { return MessageTypeResult }

// CompareResultMessage records the result of a compare operation.
type CompareResultMessage struct {
	CompareRequestMessage
	OperationResult
	ForwardTarget
}

// MessageType returns MessageTypeResult.
func (*CompareResultMessage) MessageType() MessageType { return MessageTypeResult }

// DeleteResultMessage records the result of a delete operation.
type DeleteResultMessage struct {
	DeleteRequestMessage
	OperationResult
	ForwardTarget
}

// MessageType returns MessageTypeResult.
func (*DeleteResultMessage) MessageType() MessageType { return MessageTypeResult }

// ExtendedResultMessage records the result of an extended operation.
type ExtendedResultMessage struct {
	ExtendedRequestMessage
	OperationResult
	ForwardTarget

	// ResponseOID is the OID of the extended response.
	ResponseOID *string
}

// MessageType returns MessageTypeResult.
func (*ExtendedResultMessage) MessageType() MessageType { return MessageTypeResult }

// ModifyResultMessage records the result of a modify operation.
type ModifyResultMessage struct {
	ModifyRequestMessage
	OperationResult
	ForwardTarget
}

// MessageType returns MessageTypeResult.
func (*ModifyResultMessage) MessageType() MessageType { return MessageTypeResult }

// ModifyDNResultMessage records the result of a modify DN operation.
type ModifyDNResultMessage struct {
	ModifyDNRequestMessage
	OperationResult
	ForwardTarget
}

// MessageType returns MessageTypeResult.
func (*ModifyDNResultMessage) MessageType() MessageType { return MessageTypeResult }

// SearchResultMessage records the final result of a search operation.
type SearchResultMessage struct {
	SearchRequestMessage
	OperationResult
	ForwardTarget

	// EntriesReturned is the number of entries returned for the search.
	EntriesReturned *int64
	// Unindexed indicates whether the search was unindexed.
	Unindexed *bool
}

// MessageType returns MessageTypeResult.
func (*SearchResultMessage) MessageType() MessageType { return MessageTypeResult }

func newAbandonResult(r *Record, h OperationHeader) (AbandonResultMessage, error) {
	req, err := newAbandonRequest(r, h)
	if err != nil {
		return AbandonResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return AbandonResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return AbandonResultMessage{}, err
	}
	return AbandonResultMessage{AbandonRequestMessage: req, OperationResult: res, ForwardTarget: target}, nil
}

func newAddResult(r *Record, h OperationHeader) (AddResultMessage, error) {
	req, err := newAddRequest(r, h)
	if err != nil {
		return AddResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return AddResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return AddResultMessage{}, err
	}
	return AddResultMessage{AddRequestMessage: req, OperationResult: res, ForwardTarget: target}, nil
}

func newBindResult(r *Record, h OperationHeader) (BindResultMessage, error) {
	req, err := newBindRequest(r, h)
	if err != nil {
		return BindResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return BindResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return BindResultMessage{}, err
	}

	m := BindResultMessage{BindRequestMessage: req, OperationResult: res, ForwardTarget: target}
	if m.AuthenticationDN, err = r.String(FieldAuthenticationDN); err != nil {
		return m, err
	}
	if m.AuthorizationDN, err = r.String(FieldAuthorizationDN); err != nil {
		return m, err
	}
	if m.AuthenticationFailureID, err = r.Int(FieldAuthenticationFailureID); err != nil {
		return m, err
	}
	if m.AuthenticationFailureName, err = r.String(FieldAuthenticationFailureName); err != nil {
		return m, err
	}
	if m.AuthenticationFailureMessage, err = r.String(FieldAuthenticationFailureMessage); err != nil {
		return m, err
	}
	if m.RetiredPasswordUsed, err = r.Bool(FieldRetiredPasswordUsed); err != nil {
		return m, err
	}
	if m.ClientConnectionPolicy, err = r.String(FieldClientConnectionPolicy); err != nil {
		return m, err
	}
	return m, nil
}

func newCompareResult(r *Record, h OperationHeader) (CompareResultMessage, error) {
	req, err := newCompareRequest(r, h)
	if err != nil {
		return CompareResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return CompareResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return CompareResultMessage{}, err
	}
	return CompareResultMessage{CompareRequestMessage: req, OperationResult: res, ForwardTarget: target}, nil
}

func newDeleteResult(r *Record, h OperationHeader) (DeleteResultMessage, error) {
	req, err := newDeleteRequest(r, h)
	if err != nil {
		return DeleteResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return DeleteResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return DeleteResultMessage{}, err
	}
	return DeleteResultMessage{DeleteRequestMessage: req, OperationResult: res, ForwardTarget: target}, nil
}

func newExtendedResult(r *Record, h OperationHeader) (ExtendedResultMessage, error) {
	req, err := newExtendedRequest(r, h)
	if err != nil {
		return ExtendedResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return ExtendedResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return ExtendedResultMessage{}, err
	}

	m := ExtendedResultMessage{ExtendedRequestMessage: req, OperationResult: res, ForwardTarget: target}
	if m.ResponseOID, err = r.String(FieldResponseOID); err != nil {
		return m, err
	}
	return m, nil
}

func newModifyResult(r *Record, h OperationHeader) (ModifyResultMessage, error) {
	req, err := newModifyRequest(r, h)
	if err != nil {
		return ModifyResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return ModifyResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return ModifyResultMessage{}, err
	}
	return ModifyResultMessage{ModifyRequestMessage: req, OperationResult: res, ForwardTarget: target}, nil
}

func newModifyDNResult(r *Record, h OperationHeader) (ModifyDNResultMessage, error) {
	req, err := newModifyDNRequest(r, h)
	if err != nil {
		return ModifyDNResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return ModifyDNResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return ModifyDNResultMessage{}, err
	}
	return ModifyDNResultMessage{ModifyDNRequestMessage: req, OperationResult: res, ForwardTarget: target}, nil
}

func newSearchResult(r *Record, h OperationHeader) (SearchResultMessage, error) {
	req, err := newSearchRequest(r, h)
	if err != nil {
		return SearchResultMessage{}, err
	}
	res, err := decodeOperationResult(r)
	if err != nil {
		return SearchResultMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return SearchResultMessage{}, err
	}

	m := SearchResultMessage{SearchRequestMessage: req, OperationResult: res, ForwardTarget: target}
	if m.EntriesReturned, err = r.Int(FieldEntriesReturned); err != nil {
		return m, err
	}
	if m.Unindexed, err = r.Bool(FieldUnindexed); err != nil {
		return m, err
	}
	return m, nil
}
