package accesslog

// AssuredReplicationServerResult holds the assurance outcome reported by
// one replication server.
type AssuredReplicationServerResult struct {
	// ResultCode is the assurance result reported by the server.
	ResultCode *ResultCode
	// ReplicationServerID identifies the replication server.
	ReplicationServerID *int64
	// ReplicaID identifies the replica the result applies to.
	ReplicaID *int64
}

// AssuranceFields holds the fields specific to ASSURANCE_COMPLETE
// messages.
type AssuranceFields struct {
	// LocalAssuranceSatisfied indicates whether the requested local
	// assurance level was met.
	LocalAssuranceSatisfied *bool
	// RemoteAssuranceSatisfied indicates whether the requested remote
	// assurance level was met.
	RemoteAssuranceSatisfied *bool
	// ServerResults lists the per-server assurance outcomes, in order.
	ServerResults []AssuredReplicationServerResult
}

// AddAssuranceCompletedMessage records the completion of replication
// assurance processing for an add operation.
type AddAssuranceCompletedMessage struct {
	AddResultMessage
	AssuranceFields
}

// MessageType returns MessageTypeAssuranceComplete.
func (*AddAssuranceCompletedMessage) MessageType() MessageType {
	return MessageTypeAssuranceComplete
}

// DeleteAssuranceCompletedMessage records the completion of replication
// assurance processing for a delete operation.
type DeleteAssuranceCompletedMessage struct {
	DeleteResultMessage
	AssuranceFields
}

// MessageType returns MessageTypeAssuranceComplete.
func (*DeleteAssuranceCompletedMessage) MessageType() MessageType {
	return MessageTypeAssuranceComplete
}

// ModifyAssuranceCompletedMessage records the completion of replication
// assurance processing for a modify operation.
type ModifyAssuranceCompletedMessage struct {
	ModifyResultMessage
	AssuranceFields
}

// MessageType returns MessageTypeAssuranceComplete.
func (*ModifyAssuranceCompletedMessage) MessageType() MessageType {
	return MessageTypeAssuranceComplete
}

// ModifyDNAssuranceCompletedMessage records the completion of replication
// assurance processing for a modify DN operation.
type ModifyDNAssuranceCompletedMessage struct {
	ModifyDNResultMessage
	AssuranceFields
}

// MessageType returns MessageTypeAssuranceComplete.
func (*ModifyDNAssuranceCompletedMessage) MessageType() MessageType {
	return MessageTypeAssuranceComplete
}

// decodeAssuranceFields extracts the assurance completion field set.
func decodeAssuranceFields(r *Record) (AssuranceFields, error) {
	var f AssuranceFields
	var err error
	if f.LocalAssuranceSatisfied, err = r.Bool(FieldLocalAssuranceSatisfied); err != nil {
		return f, err
	}
	if f.RemoteAssuranceSatisfied, err = r.Bool(FieldRemoteAssuranceSatisfied); err != nil {
		return f, err
	}

	objs, err := r.ObjectList(FieldServerResults)
	if err != nil {
		return f, err
	}
	if objs != nil {
		f.ServerResults = make([]AssuredReplicationServerResult, 0, len(objs))
		for _, obj := range objs {
			var sr AssuredReplicationServerResult
			if sr.ResultCode, err = decodeResultCode(obj); err != nil {
				return f, err
			}
			if sr.ReplicationServerID, err = obj.Int(FieldReplicationServerID); err != nil {
				return f, err
			}
			if sr.ReplicaID, err = obj.Int(FieldReplicaID); err != nil {
				return f, err
			}
			f.ServerResults = append(f.ServerResults, sr)
		}
	}
	return f, nil
}
