package accesslog

import (
	"fmt"
)

// RebalancingEndpoint identifies one server involved in an entry
// rebalancing operation.
type RebalancingEndpoint struct {
	// Address is the server address.
	Address *string
	// Port is the server port.
	Port *int64
}

// String renders the endpoint as "host:port" when both parts are
// present, just the address when the port is missing, and the empty
// string when neither is known.
func (e RebalancingEndpoint) String() string {
	switch {
	case e.Address != nil && e.Port != nil:
		return fmt.Sprintf("%s:%d", *e.Address, *e.Port)
	case e.Address != nil:
		return *e.Address
	default:
		return ""
	}
}

// EntryRebalancingRequestMessage records the start of an administrative
// entry rebalancing operation, which migrates a subtree between backend
// sets.
type EntryRebalancingRequestMessage struct {
	MessageHeader

	// RebalancingOperationID identifies the rebalancing operation.
	RebalancingOperationID *int64
	// TriggeredByConnectionID identifies the connection that triggered
	// the rebalancing, if any.
	TriggeredByConnectionID *int64
	// TriggeredByOperationID identifies the operation that triggered the
	// rebalancing, if any.
	TriggeredByOperationID *int64
	// SubtreeBaseDN is the base DN of the migrated subtree.
	SubtreeBaseDN *string
	// SizeLimit is the maximum number of entries to migrate.
	SizeLimit *int64
	// SourceBackendSetID identifies the backend set entries are moved from.
	SourceBackendSetID *string
	// TargetBackendSetID identifies the backend set entries are moved to.
	TargetBackendSetID *string
	// SourceServer is the server entries are moved from.
	SourceServer *RebalancingEndpoint
	// TargetServer is the server entries are moved to.
	TargetServer *RebalancingEndpoint
}

// MessageType returns MessageTypeEntryRebalancingRequest.
func (*EntryRebalancingRequestMessage) MessageType() MessageType {
	return MessageTypeEntryRebalancingRequest
}

// EntryRebalancingResultMessage records the outcome of an administrative
// entry rebalancing operation.
type EntryRebalancingResultMessage struct {
	EntryRebalancingRequestMessage

	// ResultCode is the result of the rebalancing operation.
	ResultCode *ResultCode
	// ErrorMessage describes the failure, if the operation failed.
	ErrorMessage *string
	// AdminActionRequired indicates whether an administrator must
	// intervene to complete or undo the operation.
	AdminActionRequired *bool
	// AdminActionMessage describes the required administrative action.
	AdminActionMessage *string
}

// MessageType returns MessageTypeEntryRebalancingResult.
func (*EntryRebalancingResultMessage) MessageType() MessageType {
	return MessageTypeEntryRebalancingResult
}

// decodeRebalancingEndpoint decodes the named endpoint object field, or
// returns nil if it is absent.
func decodeRebalancingEndpoint(r *Record, field string) (*RebalancingEndpoint, error) {
	obj, err := r.Object(field)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	e := &RebalancingEndpoint{}
	if e.Address, err = obj.String(FieldEndpointAddress); err != nil {
		return nil, err
	}
	if e.Port, err = obj.Int(FieldEndpointPort); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeEntryRebalancingRequest(r *Record, h MessageHeader) (*EntryRebalancingRequestMessage, error) {
	m, err := newEntryRebalancingRequest(r, h)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func newEntryRebalancingRequest(r *Record, h MessageHeader) (EntryRebalancingRequestMessage, error) {
	m := EntryRebalancingRequestMessage{MessageHeader: h}
	var err error
	if m.RebalancingOperationID, err = r.Int(FieldRebalancingOperationID); err != nil {
		return m, err
	}
	if m.TriggeredByConnectionID, err = r.Int(FieldTriggeredByConnectionID); err != nil {
		return m, err
	}
	if m.TriggeredByOperationID, err = r.Int(FieldTriggeredByOperationID); err != nil {
		return m, err
	}
	if m.SubtreeBaseDN, err = r.String(FieldSubtreeBaseDN); err != nil {
		return m, err
	}
	if m.SizeLimit, err = r.Int(FieldSizeLimit); err != nil {
		return m, err
	}
	if m.SourceBackendSetID, err = r.String(FieldSourceBackendSet); err != nil {
		return m, err
	}
	if m.TargetBackendSetID, err = r.String(FieldTargetBackendSet); err != nil {
		return m, err
	}
	if m.SourceServer, err = decodeRebalancingEndpoint(r, FieldSourceServer); err != nil {
		return m, err
	}
	if m.TargetServer, err = decodeRebalancingEndpoint(r, FieldTargetServer); err != nil {
		return m, err
	}
	return m, nil
}

func decodeEntryRebalancingResult(r *Record, h MessageHeader) (*EntryRebalancingResultMessage, error) {
	req, err := newEntryRebalancingRequest(r, h)
	if err != nil {
		return nil, err
	}

	m := &EntryRebalancingResultMessage{EntryRebalancingRequestMessage: req}
	if m.ResultCode, err = decodeResultCode(r); err != nil {
		return nil, err
	}
	if m.ErrorMessage, err = r.String(FieldErrorMessage); err != nil {
		return nil, err
	}
	if m.AdminActionRequired, err = r.Bool(FieldAdminActionRequired); err != nil {
		return nil, err
	}
	if m.AdminActionMessage, err = r.String(FieldAdminActionMessage); err != nil {
		return nil, err
	}
	return m, nil
}
