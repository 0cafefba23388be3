package accesslog

// ForwardTarget holds the backend server an operation was forwarded to.
type ForwardTarget struct {
	// TargetHost is the address of the backend server.
	TargetHost *string
	// TargetPort is the port of the backend server.
	TargetPort *int64
	// TargetProtocol is the protocol used to communicate with the
	// backend server.
	TargetProtocol *string
}

// ForwardFailure holds the outcome of a failed forward attempt.
type ForwardFailure struct {
	// ResultCode is the result code for the failed attempt.
	ResultCode *ResultCode
	// DiagnosticMessage describes the failure.
	DiagnosticMessage *string
}

func decodeForwardTarget(r *Record) (ForwardTarget, error) {
	var t ForwardTarget
	var err error
	if t.TargetHost, err = r.String(FieldTargetHost); err != nil {
		return t, err
	}
	if t.TargetPort, err = r.Int(FieldTargetPort); err != nil {
		return t, err
	}
	if t.TargetProtocol, err = r.String(FieldTargetProtocol); err != nil {
		return t, err
	}
	return t, nil
}

func decodeForwardFailure(r *Record) (ForwardFailure, error) {
	var f ForwardFailure
	var err error
	if f.ResultCode, err = decodeResultCode(r); err != nil {
		return f, err
	}
	if f.DiagnosticMessage, err = r.String(FieldDiagnosticMessage); err != nil {
		return f, err
	}
	return f, nil
}

// AbandonForwardMessage records an abandon request forwarded to a
// backend server.
type AbandonForwardMessage struct {
	AbandonRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*AbandonForwardMessage) MessageType() MessageType { return MessageTypeForward }

// AbandonForwardFailedMessage records a failed attempt to forward an
// abandon request.
type AbandonForwardFailedMessage struct {
	AbandonForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*AbandonForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// AddForwardMessage records an add request forwarded to a backend server.
type AddForwardMessage struct {
	AddRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*AddForwardMessage) MessageType() MessageType { return MessageTypeForward }

// AddForwardFailedMessage records a failed attempt to forward an add
// request.
type AddForwardFailedMessage struct {
	AddForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*AddForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// BindForwardMessage records a bind request forwarded to a backend server.
type BindForwardMessage struct {
	BindRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*BindForwardMessage) MessageType() MessageType { return MessageTypeForward }

// BindForwardFailedMessage records a failed attempt to forward a bind
// request.
type BindForwardFailedMessage struct {
	BindForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*BindForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// CompareForwardMessage records a compare request forwarded to a backend
// server.
type CompareForwardMessage struct {
	CompareRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*CompareForwardMessage) MessageType() MessageType { return MessageTypeForward }

// CompareForwardFailedMessage records a failed attempt to forward a
// compare request.
type CompareForwardFailedMessage struct {
	CompareForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*CompareForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// DeleteForwardMessage records a delete request forwarded to a backend
// server.
type DeleteForwardMessage struct {
	DeleteRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*DeleteForwardMessage) MessageType() MessageType { return MessageTypeForward }

// DeleteForwardFailedMessage records a failed attempt to forward a
// delete request.
type DeleteForwardFailedMessage struct {
	DeleteForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*DeleteForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// ExtendedForwardMessage records an extended request forwarded to a
// backend server.
type ExtendedForwardMessage struct {
	ExtendedRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*ExtendedForwardMessage) MessageType() MessageType { return MessageTypeForward }

// ExtendedForwardFailedMessage records a failed attempt to forward an
// extended request.
type ExtendedForwardFailedMessage struct {
	ExtendedForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*ExtendedForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// ModifyForwardMessage records a modify request forwarded to a backend
// server.
type ModifyForwardMessage struct {
	ModifyRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*ModifyForwardMessage) MessageType() MessageType { return MessageTypeForward }

// ModifyForwardFailedMessage records a failed attempt to forward a
// modify request.
type ModifyForwardFailedMessage struct {
	ModifyForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*ModifyForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// ModifyDNForwardMessage records a modify DN request forwarded to a
// backend server.
type ModifyDNForwardMessage struct {
	ModifyDNRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*ModifyDNForwardMessage) MessageType() MessageType { return MessageTypeForward }

// ModifyDNForwardFailedMessage records a failed attempt to forward a
// modify DN request.
type ModifyDNForwardFailedMessage struct {
	ModifyDNForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*ModifyDNForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

// SearchForwardMessage records a search request forwarded to a backend
// server.
type SearchForwardMessage struct {
	SearchRequestMessage
	ForwardTarget
}

// MessageType returns MessageTypeForward.
func (*SearchForwardMessage) MessageType() MessageType { return MessageTypeForward }

// SearchForwardFailedMessage records a failed attempt to forward a
// search request.
type SearchForwardFailedMessage struct {
	SearchForwardMessage
	ForwardFailure
}

// MessageType returns MessageTypeForwardFailed.
func (*SearchForwardFailedMessage) MessageType() MessageType { return MessageTypeForwardFailed }

func newAbandonForward(r *Record, h OperationHeader) (AbandonForwardMessage, error) {
	req, err := newAbandonRequest(r, h)
	if err != nil {
		return AbandonForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return AbandonForwardMessage{}, err
	}
	return AbandonForwardMessage{AbandonRequestMessage: req, ForwardTarget: target}, nil
}

func newAddForward(r *Record, h OperationHeader) (AddForwardMessage, error) {
	req, err := newAddRequest(r, h)
	if err != nil {
		return AddForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return AddForwardMessage{}, err
	}
	return AddForwardMessage{AddRequestMessage: req, ForwardTarget: target}, nil
}

func newBindForward(r *Record, h OperationHeader) (BindForwardMessage, error) {
	req, err := newBindRequest(r, h)
	if err != nil {
		return BindForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return BindForwardMessage{}, err
	}
	return BindForwardMessage{BindRequestMessage: req, ForwardTarget: target}, nil
}

func newCompareForward(r *Record, h OperationHeader) (CompareForwardMessage, error) {
	req, err := newCompareRequest(r, h)
	if err != nil {
		return CompareForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return CompareForwardMessage{}, err
	}
	return CompareForwardMessage{CompareRequestMessage: req, ForwardTarget: target}, nil
}

func newDeleteForward(r *Record, h OperationHeader) (DeleteForwardMessage, error) {
	req, err := newDeleteRequest(r, h)
	if err != nil {
		return DeleteForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return DeleteForwardMessage{}, err
	}
	return DeleteForwardMessage{DeleteRequestMessage: req, ForwardTarget: target}, nil
}

func newExtendedForward(r *Record, h OperationHeader) (ExtendedForwardMessage, error) {
	req, err := newExtendedRequest(r, h)
	if err != nil {
		return ExtendedForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return ExtendedForwardMessage{}, err
	}
	return ExtendedForwardMessage{ExtendedRequestMessage: req, ForwardTarget: target}, nil
}

func newModifyForward(r *Record, h OperationHeader) (ModifyForwardMessage, error) {
	req, err := newModifyRequest(r, h)
	if err != nil {
		return ModifyForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return ModifyForwardMessage{}, err
	}
	return ModifyForwardMessage{ModifyRequestMessage: req, ForwardTarget: target}, nil
}

func newModifyDNForward(r *Record, h OperationHeader) (ModifyDNForwardMessage, error) {
	req, err := newModifyDNRequest(r, h)
	if err != nil {
		return ModifyDNForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return ModifyDNForwardMessage{}, err
	}
	return ModifyDNForwardMessage{ModifyDNRequestMessage: req, ForwardTarget: target}, nil
}

func newSearchForward(r *Record, h OperationHeader) (SearchForwardMessage, error) {
	req, err := newSearchRequest(r, h)
	if err != nil {
		return SearchForwardMessage{}, err
	}
	target, err := decodeForwardTarget(r)
	if err != nil {
		return SearchForwardMessage{}, err
	}
	return SearchForwardMessage{SearchRequestMessage: req, ForwardTarget: target}, nil
}
